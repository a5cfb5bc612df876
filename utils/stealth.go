package utils

import (
	"context"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses execution for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SmoothScroll scrolls down and back a little, then to the bottom so lazily
// rendered cards get mounted.
func SmoothScroll(page playwright.Page) error {
	if err := page.Mouse().Wheel(0, 500); err != nil {
		return err
	}
	RandomDelay(300, 600)

	if err := page.Mouse().Wheel(0, -200); err != nil {
		return err
	}
	RandomDelay(300, 600)

	_, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}
