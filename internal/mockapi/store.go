package mockapi

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"
)

// Record is a schemaless resource row.
type Record map[string]any

// Store is the in-memory dataset behind the mock backend. Collections
// are keyed by resource name and ids are assigned sequentially per
// collection, the way a development fixture server behaves.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
	nextID      map[string]int64
}

func NewStore() *Store {
	return &Store{
		collections: make(map[string][]Record),
		nextID:      make(map[string]int64),
	}
}

// RecordID coerces the id field of a record, which may round-trip
// through JSON as a float64 or a numeric string.
func RecordID(rec Record) (int64, bool) {
	switch v := rec["id"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

func fieldMatches(rec Record, field, want string) bool {
	v, ok := rec[field]
	if !ok {
		return false
	}
	return fmt.Sprintf("%v", v) == want
}

// List returns the records of a collection, filtered by exact match on
// every query parameter.
func (s *Store) List(collection string, filters url.Values) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0)
	for _, rec := range s.collections[collection] {
		match := true
		for field, values := range filters {
			if len(values) == 0 {
				continue
			}
			if !fieldMatches(rec, field, values[0]) {
				match = false
				break
			}
		}
		if match {
			out = append(out, rec.clone())
		}
	}
	return out
}

func (s *Store) Get(collection string, id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.collections[collection] {
		if recID, ok := RecordID(rec); ok && recID == id {
			return rec.clone(), true
		}
	}
	return nil, false
}

// Insert assigns the next id and stores the record.
func (s *Store) Insert(collection string, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID[collection]++
	stored := rec.clone()
	stored["id"] = s.nextID[collection]
	s.collections[collection] = append(s.collections[collection], stored)
	return stored.clone()
}

// Patch merges the given fields into an existing record. The id field
// is never overwritten.
func (s *Store) Patch(collection string, id int64, patch Record) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.collections[collection] {
		if recID, ok := RecordID(rec); ok && recID == id {
			for k, v := range patch {
				if k == "id" {
					continue
				}
				rec[k] = v
			}
			return rec.clone(), true
		}
	}
	return nil, false
}

func (s *Store) Delete(collection string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.collections[collection]
	for idx, rec := range records {
		if recID, ok := RecordID(rec); ok && recID == id {
			s.collections[collection] = append(records[:idx], records[idx+1:]...)
			return true
		}
	}
	return false
}

// Seed loads a fixture dataset, advancing each collection's id counter
// past the highest seeded id.
func (s *Store) Seed(data map[string][]Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for collection, records := range data {
		for _, rec := range records {
			stored := rec.clone()
			if id, ok := RecordID(stored); ok {
				if id > s.nextID[collection] {
					s.nextID[collection] = id
				}
			} else {
				s.nextID[collection]++
				stored["id"] = s.nextID[collection]
			}
			s.collections[collection] = append(s.collections[collection], stored)
		}
	}
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
