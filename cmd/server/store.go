package main

import (
	"sort"
	"sync"

	"github.com/campusdesk/timetable-engine/pkg/model"
)

// datasetStore keeps uploaded allocation sets in memory, keyed by the id
// handed back to the client. The engine itself persists nothing; this is
// server plumbing so a dashboard can upload once and query many times.
type datasetStore struct {
	mu   sync.RWMutex
	sets map[string][]model.AllocationRecord
}

func newDatasetStore() *datasetStore {
	return &datasetStore{sets: make(map[string][]model.AllocationRecord)}
}

func (s *datasetStore) put(id string, records []model.AllocationRecord) {
	s.mu.Lock()
	s.sets[id] = records
	s.mu.Unlock()
}

func (s *datasetStore) get(id string) ([]model.AllocationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.sets[id]
	return records, ok
}

func (s *datasetStore) ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sets))
	for id := range s.sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
