package dedup

import (
	"merojob-scraper/internal/models"
)

// KeySet tracks which (title, company) pairs have already been seen.
type KeySet struct {
	seen map[models.Key]struct{}
}

// NewKeySet seeds the set with the keys of the given records.
func NewKeySet(records []models.JobRecord) *KeySet {
	ks := &KeySet{seen: make(map[models.Key]struct{}, len(records))}
	for _, r := range records {
		ks.seen[r.Key()] = struct{}{}
	}
	return ks
}

// IsSeen reports whether the key is already in the set.
func (ks *KeySet) IsSeen(key models.Key) bool {
	_, exists := ks.seen[key]
	return exists
}

// Add inserts key and reports whether it was new.
func (ks *KeySet) Add(key models.Key) bool {
	if ks.IsSeen(key) {
		return false
	}
	ks.seen[key] = struct{}{}
	return true
}

func (ks *KeySet) Len() int { return len(ks.seen) }

// Reconcile picks the extracted records whose key is not yet persisted and
// not already picked earlier in the same batch. combined is fresh followed by
// persisted, each in its original order; persisted records are never dropped.
func Reconcile(extracted, persisted []models.JobRecord) (fresh, combined []models.JobRecord) {
	seen := NewKeySet(persisted)

	fresh = make([]models.JobRecord, 0, len(extracted))
	for _, job := range extracted {
		if seen.Add(job.Key()) {
			fresh = append(fresh, job)
		}
	}

	combined = make([]models.JobRecord, 0, len(fresh)+len(persisted))
	combined = append(combined, fresh...)
	combined = append(combined, persisted...)
	return fresh, combined
}
