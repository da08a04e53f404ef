package lang

import (
	"maps"
	"sort"
)

// Store maps variable names to their last-assigned values. One Store is
// created per interpreter session, survives across input lines, and is
// never cleared implicitly. It is passed explicitly into evaluation so
// the pipeline stays testable per call; there is no hidden singleton.
//
// The interpreter is single-threaded, so Store performs no locking.
type Store struct {
	vars map[string]float64
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{vars: make(map[string]float64)}
}

// Get returns the current value of name and whether it has ever been
// assigned. There is no implicit default for absent names.
func (s *Store) Get(name string) (float64, bool) {
	v, ok := s.vars[name]

	return v, ok
}

// Set stores value under name, overwriting any prior value.
func (s *Store) Set(name string, value float64) {
	s.vars[name] = value
}

// Len returns the number of assigned variables.
func (s *Store) Len() int { return len(s.vars) }

// Names returns the assigned variable names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Snapshot returns a copy of the mapping for display. Mutating the
// returned map does not affect the store.
func (s *Store) Snapshot() map[string]float64 {
	return maps.Clone(s.vars)
}
