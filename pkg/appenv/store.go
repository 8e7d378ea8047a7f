package appenv

import (
	"slices"
	"sync"
)

// Store is an in-memory configuration store holding resolved values grouped
// by application identifier. It is safe for concurrent use: every operation
// is atomic with respect to a single (app, key) pair, with last-writer-wins
// semantics on concurrent overwrites. There are no cross-key transactions.
type Store struct {
	mu   sync.RWMutex
	apps map[string]map[string]any
}

// New creates an empty store.
func New() *Store {
	return &Store{apps: make(map[string]map[string]any)}
}

// Set stores value under (app, key), overwriting any previous value.
func (s *Store) Set(app, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.apps[app]
	if !ok {
		values = make(map[string]any)
		s.apps[app] = values
	}
	values[key] = value
}

// Get returns the value stored under (app, key) and whether it was present.
func (s *Store) Get(app, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.apps[app][key]
	return value, ok
}

// GetOr returns the value stored under (app, key), or fallback when the key
// is not set.
func (s *Store) GetOr(app, key string, fallback any) any {
	if value, ok := s.Get(app, key); ok {
		return value
	}
	return fallback
}

// Delete removes the value stored under (app, key). Deleting a missing key
// is a no-op.
func (s *Store) Delete(app, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.apps[app], key)
}

// Keys returns the configuration keys set for app, sorted alphabetically.
func (s *Store) Keys(app string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := s.apps[app]
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot returns a copy of all values set for app. Mutating the returned
// map does not affect the store.
func (s *Store) Snapshot(app string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := s.apps[app]
	if values == nil {
		return nil
	}

	snapshot := make(map[string]any, len(values))
	for k, v := range values {
		snapshot[k] = v
	}
	return snapshot
}

// Reset removes every value set for app. Other applications are untouched.
func (s *Store) Reset(app string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.apps, app)
}
