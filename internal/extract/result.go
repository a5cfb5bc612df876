package extract

import (
	"fmt"
	"log"

	"merojob-scraper/internal/models"
)

// Result is the outcome of parsing one block: either a record or the reason
// the block was skipped.
type Result struct {
	Index   int
	Record  models.JobRecord
	Skipped bool
	Reason  string
}

func (r Result) OK() bool { return !r.Skipped }

// All parses every block in order. A fault while parsing one block is
// recorded as a skipped result and does not stop the remaining blocks.
func All(blocks []string) []Result {
	results := make([]Result, 0, len(blocks))
	for i, block := range blocks {
		results = append(results, parseOne(i, block, Parse))
	}
	return results
}

func parseOne(i int, block string, parse func(string) models.JobRecord) (res Result) {
	res.Index = i
	defer func() {
		if r := recover(); r != nil {
			res.Record = models.JobRecord{}
			res.Skipped = true
			res.Reason = fmt.Sprintf("%v", r)
		}
	}()
	res.Record = parse(block)
	return res
}

// Records keeps the parsed records in block order and logs every skipped block.
func Records(results []Result) []models.JobRecord {
	records := make([]models.JobRecord, 0, len(results))
	for _, r := range results {
		if !r.OK() {
			log.Printf("⚠️ Error processing job #%d: %s", r.Index, r.Reason)
			continue
		}
		records = append(records, r.Record)
	}
	return records
}
