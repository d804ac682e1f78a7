package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/palmcrest/showcase/internal/listing"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Listings            []listing.Listing
	Source              string // "feed", "file" or "sample"
	Version             uint64 // bumped on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed loads
}

// IsStale returns true when the source has failed repeatedly and the
// listings on screen may be out of date.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// HasData reports whether at least one successful load happened.
func (s Snapshot) HasData() bool {
	return s.Version > 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored listings. When err is non-nil the previous data
// is kept but the error is recorded for visibility. Version only moves when
// the listings or their source actually change.
func (s *Store) Update(listings []listing.Listing, source string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	// An identical reload keeps the version so the carousel is not disturbed.
	unchanged := s.snapshot.Version > 0 && s.snapshot.Source == source &&
		listing.Equal(s.snapshot.Listings, listings)
	if !unchanged {
		s.snapshot.Listings = cloneListings(listings)
		s.snapshot.Source = source
		s.snapshot.Version++
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Listings = cloneListings(s.snapshot.Listings)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneListings(items []listing.Listing) []listing.Listing {
	if len(items) == 0 {
		return nil
	}
	dup := make([]listing.Listing, len(items))
	copy(dup, items)
	return dup
}
