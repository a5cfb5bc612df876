// Package pipeline runs one scrape: collect card texts, extract records,
// then merge them into the jobs file.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"merojob-scraper/internal/dedup"
	"merojob-scraper/internal/extract"
	"merojob-scraper/internal/models"
	"merojob-scraper/internal/scraper"
	"merojob-scraper/internal/store"
)

// Outcome summarises a run for the operator.
type Outcome struct {
	Blocks   int
	Skipped  int
	Fresh    []models.JobRecord
	Combined []models.JobRecord
	Path     string
}

func (o Outcome) String() string {
	return fmt.Sprintf("%d new jobs added to the top of '%s'", len(o.Fresh), o.Path)
}

// Options tweak a run. DryRun skips the final write.
type Options struct {
	DryRun bool
}

// Run extracts every block from src before touching the store, then loads,
// reconciles and rewrites the jobs file while holding its lock.
func Run(ctx context.Context, src scraper.Source, st *store.CSVStore, opts Options) (Outcome, error) {
	out := Outcome{Path: st.Path()}

	log.Printf("▶️ Collecting job cards from %s", src.Name())
	blocks, err := src.Blocks(ctx)
	if err != nil {
		return out, fmt.Errorf("collect from %s: %w", src.Name(), err)
	}
	out.Blocks = len(blocks)

	results := extract.All(blocks)
	extracted := extract.Records(results)
	out.Skipped = len(results) - len(extracted)
	log.Printf("📦 Extracted %d/%d job cards", len(extracted), len(blocks))

	unlock, err := st.Lock()
	if err != nil {
		return out, err
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Printf("⚠️ Failed to release lock: %v", err)
		}
	}()

	persisted, err := st.Load()
	if err != nil {
		return out, err
	}

	out.Fresh, out.Combined = dedup.Reconcile(extracted, persisted)
	log.Printf("🔍 Deduplication: %d extracted -> %d new", len(extracted), len(out.Fresh))

	if opts.DryRun {
		log.Println("ℹ️ Dry run, jobs file left untouched.")
		return out, nil
	}
	if err := st.Save(out.Combined); err != nil {
		return out, err
	}
	return out, nil
}
