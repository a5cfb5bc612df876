package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"merojob-scraper/internal/browser"
	"merojob-scraper/internal/config"
	"merojob-scraper/internal/pipeline"
	"merojob-scraper/internal/scraper"
	"merojob-scraper/internal/scraper/htmlfile"
	"merojob-scraper/internal/scraper/merojob"
	"merojob-scraper/internal/store"
	"merojob-scraper/internal/telegram"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the YAML config")
	htmlPath := flag.String("html", "", "Read job cards from a saved HTML page instead of a browser")
	dryRun := flag.Bool("dry-run", false, "Extract and deduplicate without writing the jobs file")
	flag.Parse()

	//load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("🔧 Config loaded. URL: %s, jobs file: %s", cfg.URL, cfg.CSVFile)

	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
			bot = nil
		} else {
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	out, err := run(cfg, *htmlPath, *dryRun)
	if err != nil {
		if bot != nil {
			if sendErr := bot.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
		log.Fatalf("❌ Run failed: %v", err)
	}

	if bot != nil && len(out.Fresh) > 0 {
		notify(bot, out)
	}

	log.Println(out.String())
	log.Println("🏁 Execution finished.")
}

// run owns the browser session; every resource it opens is released before
// it returns, whatever the outcome.
func run(cfg *config.Config, htmlPath string, dryRun bool) (pipeline.Outcome, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+time.Minute)
	defer cancel()

	log.Println("🚀 Starting MeroJob scraper...")
	st := store.NewCSVStore(cfg.CSVFile)
	opts := pipeline.Options{DryRun: dryRun}

	if htmlPath != "" {
		return pipeline.Run(ctx, htmlfile.NewSnapshot(htmlPath, cfg.CardSelector), st, opts)
	}

	//init playwright manager
	pwManager, err := browser.NewPlaywright(ctx, browser.Options{Headless: cfg.IsHeadless()})
	if err != nil {
		return pipeline.Outcome{}, fmt.Errorf("init playwright: %w", err)
	}
	//close playwright manager when the run stops
	defer func() {
		if err := pwManager.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
	}()

	var cookies []playwright.OptionalCookie
	if cfg.CookiesFile != "" {
		cookies, err = browser.LoadCookies(cfg.CookiesFile)
		if err != nil {
			log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
		} else {
			log.Printf("🍪 Loaded %d cookies", len(cookies))
		}
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return pipeline.Outcome{}, fmt.Errorf("create page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	var src scraper.Source = merojob.NewMeroJobScraper(cfg, page)
	return pipeline.Run(ctx, src, st, opts)
}

func notify(bot *telegram.Bot, out pipeline.Outcome) {
	log.Printf("📊 Sending %d new jobs to Telegram", len(out.Fresh))
	for _, job := range out.Fresh {
		if err := bot.SendJob(job); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	if err := bot.SendStatus(out.String()); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}
