// Package memory holds the fetched record set. There is no persistence:
// the store is a snapshot of the remote API, replaced wholesale on each
// refresh.
package memory

import (
	"sync"
	"time"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// RecordStore keeps the latest fetched event list. Replacements carry a
// sequence number so that a slow response from a superseded refresh can
// never overwrite newer data (last-write-wins per issue order).
type RecordStore struct {
	mu        sync.RWMutex
	issued    uint64
	applied   uint64
	loaded    bool
	events    []record.Event
	updatedAt time.Time
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// NextSeq issues the sequence number for a refresh about to start.
func (s *RecordStore) NextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Replace installs a fetched event list. It reports false, leaving the
// store untouched, when a refresh with a higher sequence number has
// already been applied.
func (s *RecordStore) Replace(seq uint64, events []record.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.loaded = true
	s.events = make([]record.Event, len(events))
	copy(s.events, events)
	s.updatedAt = time.Now()
	return true
}

// Snapshot returns a copy of the current event list.
func (s *RecordStore) Snapshot() []record.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]record.Event, len(s.events))
	copy(events, s.events)
	return events
}

// Loaded reports whether any refresh has been applied, including one
// that brought back an empty record set.
func (s *RecordStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// UpdatedAt returns when the current snapshot was applied; the zero time
// before the first refresh.
func (s *RecordStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
