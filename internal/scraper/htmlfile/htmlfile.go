// Package htmlfile reads job cards out of a saved copy of the rendered page,
// so a run can be replayed without a browser.
package htmlfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"merojob-scraper/internal/scraper"
)

type Snapshot struct {
	path     string
	selector string
}

func NewSnapshot(path, selector string) *Snapshot {
	return &Snapshot{path: path, selector: selector}
}

func (s *Snapshot) Name() string {
	return "HTML snapshot"
}

func (s *Snapshot) Blocks(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return CardTexts(f, s.selector)
}

// CardTexts renders the visible text of every element matching selector,
// one line per block-level break.
func CardTexts(r io.Reader, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	cards := doc.Find(selector)
	if cards.Length() == 0 {
		return nil, scraper.ErrNoListings
	}

	blocks := make([]string, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		var tb textBuilder
		for _, n := range card.Nodes {
			tb.walk(n)
		}
		blocks = append(blocks, strings.Join(tb.finish(), "\n"))
	})
	return blocks, nil
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "footer": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true, "section": true,
	"table": true, "tr": true, "ul": true,
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "svg": true,
}

type textBuilder struct {
	lines []string
	cur   []string
}

func (tb *textBuilder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		tb.cur = append(tb.cur, strings.Fields(n.Data)...)
		return
	case html.ElementNode:
		if skipTags[n.Data] || hidden(n) {
			return
		}
	}

	isBlock := n.Type == html.ElementNode && blockTags[n.Data]
	if isBlock {
		tb.flush()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		tb.walk(c)
	}
	if isBlock {
		tb.flush()
	}
}

func (tb *textBuilder) flush() {
	if len(tb.cur) == 0 {
		return
	}
	tb.lines = append(tb.lines, strings.Join(tb.cur, " "))
	tb.cur = tb.cur[:0]
}

func (tb *textBuilder) finish() []string {
	tb.flush()
	return tb.lines
}

func hidden(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden":
			return true
		case "aria-hidden":
			if a.Val == "true" {
				return true
			}
		case "style":
			style := strings.ReplaceAll(strings.ToLower(a.Val), " ", "")
			if strings.Contains(style, "display:none") {
				return true
			}
		}
	}
	return false
}
