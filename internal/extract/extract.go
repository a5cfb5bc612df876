// Package extract turns the visible text of one job card into a JobRecord.
package extract

import (
	"strings"

	"golang.org/x/text/cases"

	"merojob-scraper/internal/models"
)

var (
	levelKeyword       = "level"
	applyBeforeKeyword = "apply before"
	salaryIndicators   = []string{"rs.", "lakh", "negotiable", "month", "year"}
)

// Lines splits a card's text into lines. An empty block has no lines.
func Lines(block string) []string {
	if block == "" {
		return nil
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Parse maps a block onto a JobRecord. The first three lines are title,
// company and experience. Every line is then checked for level, apply-before
// and salary markers, in that order; a line counts toward the first category
// it matches and later matches of a category overwrite earlier ones.
func Parse(block string) models.JobRecord {
	lines := Lines(block)

	job := models.JobRecord{
		Title:       lineAt(lines, 0),
		Company:     lineAt(lines, 1),
		Experience:  lineAt(lines, 2),
		Level:       models.NotAvailable,
		Salary:      models.NotAvailable,
		ApplyBefore: models.NotAvailable,
	}

	fold := cases.Fold()
	for _, line := range lines {
		folded := fold.String(line)

		switch {
		case strings.Contains(folded, levelKeyword):
			job.Level = afterLastColon(line)
		case strings.Contains(folded, applyBeforeKeyword):
			job.ApplyBefore = afterLastColon(line)
		case containsAny(folded, salaryIndicators):
			job.Salary = strings.TrimSpace(line)
		}
	}

	return job
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return models.NotAvailable
}

// afterLastColon returns the trimmed text after the final ':' or the whole
// trimmed line when there is none.
func afterLastColon(line string) string {
	if i := strings.LastIndex(line, ":"); i >= 0 {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
