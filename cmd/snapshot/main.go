package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"merojob-scraper/internal/browser"
	"merojob-scraper/internal/config"
	"merojob-scraper/internal/scraper/merojob"
)

// Saves the rendered job listing page so the scraper can be replayed with -html.
func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the YAML config")
	output := flag.String("out", filepath.Join("logs", fmt.Sprintf("merojob-%s.html", time.Now().Format("2006-01-02"))), "Where to write the HTML")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := snapshot(cfg, *output); err != nil {
		log.Fatalf("❌ Snapshot failed: %v", err)
	}
	log.Printf("📁 Page saved to %s", *output)
}

func snapshot(cfg *config.Config, output string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+time.Minute)
	defer cancel()

	pm, err := browser.NewPlaywright(ctx, browser.Options{Headless: cfg.IsHeadless()})
	if err != nil {
		return err
	}
	defer pm.Close()

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		return err
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}

	html, err := merojob.NewMeroJobScraper(cfg, page).HTML(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(output, []byte(html), 0644)
}
