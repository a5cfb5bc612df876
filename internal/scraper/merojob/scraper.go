package merojob

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"merojob-scraper/internal/config"
	"merojob-scraper/internal/scraper"
	"merojob-scraper/utils"
)

// settleDelay gives the listing view time to render after the click.
var settleDelay = 2 * time.Second

type MeroJobScraper struct {
	cfg         *config.Config
	page        playwright.Page
	screenshots *utils.ScreenShotDebugger
}

func NewMeroJobScraper(cfg *config.Config, page playwright.Page) *MeroJobScraper {
	return &MeroJobScraper{
		cfg:         cfg,
		page:        page,
		screenshots: utils.NewScreenShotDebugger(cfg.ScreenshotDir),
	}
}

func (s *MeroJobScraper) Name() string {
	return "MeroJob"
}

// Open navigates to the jobs page, reveals the listing view and waits until
// at least one job card is attached.
func (s *MeroJobScraper) Open(ctx context.Context) error {
	log.Printf("📋 Opening %s...", s.cfg.URL)

	if _, err := s.page.Goto(s.cfg.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   millis(s.cfg.Timeout),
	}); err != nil {
		s.screenshots.CaptureAndLog(s.page, "merojob-goto", "🚨 MeroJob: navigation failed")
		return fmt.Errorf("navigate to %s: %w", s.cfg.URL, err)
	}

	if err := s.openListings(); err != nil {
		s.screenshots.CaptureAndLog(s.page, "merojob-listing-button", "🚨 MeroJob: could not open the job listing view")
		return err
	}

	if err := utils.Sleep(ctx, settleDelay); err != nil {
		return err
	}
	if err := utils.SmoothScroll(s.page); err != nil {
		log.Printf("⚠️ Scroll failed: %v", err)
	}

	if err := s.cards().First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: millis(s.cfg.WaitTimeout),
	}); err != nil {
		s.screenshots.CaptureAndLog(s.page, "merojob-no-cards", "🚨 MeroJob: no job cards rendered")
		return fmt.Errorf("%w: %v", scraper.ErrNoListings, err)
	}
	return nil
}

func (s *MeroJobScraper) Blocks(ctx context.Context) ([]string, error) {
	if err := s.Open(ctx); err != nil {
		return nil, err
	}

	all, err := s.cards().All()
	if err != nil {
		return nil, fmt.Errorf("list job cards: %w", err)
	}
	log.Printf("    📦 Found %d job cards", len(all))

	blocks := make([]string, 0, len(all))
	for i, card := range all {
		if ctx.Err() != nil {
			return blocks, ctx.Err()
		}
		text, err := card.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: millis(s.cfg.WaitTimeout),
		})
		if err != nil {
			log.Printf("⚠️ Could not read job card #%d: %v", i, err)
			continue
		}
		blocks = append(blocks, strings.TrimRight(text, "\n"))
	}
	return blocks, nil
}

// HTML opens the listing view and returns the rendered document, for
// replaying a run offline.
func (s *MeroJobScraper) HTML(ctx context.Context) (string, error) {
	if err := s.Open(ctx); err != nil {
		return "", err
	}
	return s.page.Content()
}

func (s *MeroJobScraper) cards() playwright.Locator {
	return s.page.Locator(s.cfg.CardSelector)
}

// openListings clicks the primary listing button, falling back to the
// secondary one when the primary never becomes clickable.
func (s *MeroJobScraper) openListings() error {
	err := s.click(s.cfg.PrimaryButton)
	if err == nil {
		return nil
	}
	log.Printf("⚠️ Could not find %s. Trying alternative...", s.cfg.PrimaryButton)

	if fallbackErr := s.click(s.cfg.FallbackButton); fallbackErr != nil {
		return fmt.Errorf("open job listings: %w", errors.Join(err, fallbackErr))
	}
	return nil
}

func (s *MeroJobScraper) click(selector string) error {
	return s.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: millis(s.cfg.WaitTimeout),
	})
}

func millis(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}
