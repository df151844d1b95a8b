package clicks

import (
	"encoding/json"
	"log"
	"os"
)

// Store tracks outbound affiliate clicks in a single JSON file mapping
// product ID to count. The file is read-modify-written whole on every
// increment without locking: concurrent writers can lose updates, which is
// acceptable for low-traffic click analytics and keeps the store free of any
// database dependency.
type Store struct {
	path string
}

// NewStore creates a click store backed by the given file path. The file is
// created on first increment.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ReadAll returns the persisted click counts. A missing or unreadable file
// yields an empty map; corruption is logged, not surfaced.
func (s *Store) ReadAll() map[string]int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[clicks] read failed: %v", err)
		}
		return map[string]int{}
	}

	counts := map[string]int{}
	if err := json.Unmarshal(data, &counts); err != nil {
		log.Printf("[clicks] malformed click file, starting fresh: %v", err)
		return map[string]int{}
	}
	return counts
}

// Increment adds one click for the given product ID and returns the new
// count. A write failure loses the increment; the error is returned so the
// caller can log it, but callers are expected to keep serving.
func (s *Store) Increment(id string) (int, error) {
	counts := s.ReadAll()
	counts[id]++

	data, err := json.Marshal(counts)
	if err != nil {
		return counts[id], err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return counts[id], err
	}
	return counts[id], nil
}
