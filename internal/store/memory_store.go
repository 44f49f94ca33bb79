package store

import (
	"sync"

	"github.com/preston-bernstein/roster-service/internal/domain/roster"
)

// MemoryStore keeps a thread-safe snapshot of roster records in load order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []roster.Record
	byID    map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// ListRecords returns a copy of the records in load order.
func (s *MemoryStore) ListRecords() []roster.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]roster.Record, len(s.records))
	copy(result, s.records)
	return result
}

// GetRecord retrieves a record by ID.
func (s *MemoryStore) GetRecord(id string) (roster.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return roster.Record{}, false
	}
	return s.records[idx], true
}

// SetRecords replaces the existing records with a new snapshot.
func (s *MemoryStore) SetRecords(records []roster.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]roster.Record, len(records))
	copy(s.records, records)
	s.byID = make(map[string]int, len(records))
	for i, r := range s.records {
		if r.ID == "" {
			continue
		}
		if _, dup := s.byID[r.ID]; !dup {
			s.byID[r.ID] = i
		}
	}
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
