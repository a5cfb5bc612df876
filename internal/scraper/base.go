// Define the interface for anything that yields job card text
// The core only ever sees plain text blocks

package scraper

import (
	"context"
	"errors"
)

// ErrNoListings means the page was reached but no job cards showed up.
var ErrNoListings = errors.New("no job listings found")

// Source yields the visible text of every job card, one block per card,
// lines separated by "\n".
type Source interface {
	//Blocks returns the card texts in page order
	Blocks(ctx context.Context) ([]string, error)

	//Name is the source name (merojob, html snapshot, ...)
	Name() string
}
