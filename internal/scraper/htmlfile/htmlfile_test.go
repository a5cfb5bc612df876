package htmlfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merojob-scraper/internal/config"
	"merojob-scraper/internal/extract"
	"merojob-scraper/internal/scraper"
)

const snapshot = `<html><body>
<div class="rounded-lg border bg-card text-card-foreground shadow-sm hover:shadow-xl">
  <a href="/job/1"><h3 class="font-semibold">Backend   Engineer</h3></a>
  <div><span>Acme</span> <span>Corp</span></div>
  <div>2-4 years</div>
  <div><span>Level:</span> <span>Mid</span></div>
  <div>Rs. 50,000/month</div>
  <div>Apply Before: 2025-01-01</div>
  <script>var tracking = "Level: ignored";</script>
  <div style="display: none">Hidden Salary negotiable</div>
</div>
<div class="rounded-lg border bg-card text-card-foreground shadow-sm hover:shadow-xl">
  <h3>Accountant</h3><p>Himal Traders</p>
</div>
<div class="rounded-lg border bg-card">not a job card</div>
</body></html>`

func TestCardTexts(t *testing.T) {
	blocks, err := CardTexts(strings.NewReader(snapshot), config.DefaultCardSelector)

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t,
		"Backend Engineer\nAcme Corp\n2-4 years\nLevel: Mid\nRs. 50,000/month\nApply Before: 2025-01-01",
		blocks[0])
	assert.Equal(t, "Accountant\nHimal Traders", blocks[1])
}

func TestCardTexts_FeedsExtractor(t *testing.T) {
	blocks, err := CardTexts(strings.NewReader(snapshot), config.DefaultCardSelector)
	require.NoError(t, err)

	job := extract.Parse(blocks[0])

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "Mid", job.Level)
	assert.Equal(t, "Rs. 50,000/month", job.Salary)
	assert.Equal(t, "2025-01-01", job.ApplyBefore)
}

func TestCardTexts_NoCards(t *testing.T) {
	_, err := CardTexts(strings.NewReader("<html><body></body></html>"), config.DefaultCardSelector)
	assert.ErrorIs(t, err, scraper.ErrNoListings)
}

func TestSnapshot_Blocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merojob.html")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0644))

	s := NewSnapshot(path, config.DefaultCardSelector)
	blocks, err := s.Blocks(context.Background())

	require.NoError(t, err)
	assert.Len(t, blocks, 2)

	_, err = NewSnapshot(filepath.Join(t.TempDir(), "missing.html"), config.DefaultCardSelector).Blocks(context.Background())
	assert.Error(t, err)
}
