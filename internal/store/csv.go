// Package store persists scraped jobs in a flat CSV file.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"merojob-scraper/internal/models"
)

var (
	ErrBadHeader = errors.New("jobs file header is missing a key column")
	ErrLocked    = errors.New("jobs file is locked by another run")
)

type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Path() string { return s.path }

// Lock takes an exclusive advisory lock next to the jobs file so two runs
// never interleave their load and save. The returned func releases it.
func (s *CSVStore) Lock() (func() error, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	fl := flock.New(s.path + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, fl.Path())
	}
	return fl.Unlock, nil
}

// Load reads every stored record in file order. A missing or empty file is
// an empty store, not an error.
func (s *CSVStore) Load() ([]models.JobRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("📋 No jobs file at %s yet, starting fresh", s.path)
			return []models.JobRecord{}, nil
		}
		return nil, fmt.Errorf("open jobs file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []models.JobRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read jobs header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range []string{models.ColTitle, models.ColCompany} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadHeader, col)
		}
	}

	records := []models.JobRecord{}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read jobs file: %w", err)
		}
		records = append(records, models.FromRow(row, index))
	}

	log.Printf("📋 Loaded %d previously scraped jobs", len(records))
	return records, nil
}

// Save replaces the whole file with the header followed by records in order.
// The data goes to a temp file first and is renamed into place.
func (s *CSVStore) Save(records []models.JobRecord) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create jobs file: %w", err)
	}

	if err := writeRecords(f, records); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close jobs file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace jobs file: %w", err)
	}
	log.Printf("💾 Saved %d jobs to %s", len(records), s.path)
	return nil
}

func writeRecords(w io.Writer, records []models.JobRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Header); err != nil {
		return fmt.Errorf("write jobs header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("write job %q: %w", r.Title, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush jobs file: %w", err)
	}
	return nil
}

func (s *CSVStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
