package trip

// Set is an insertion-ordered collection of distinct trips.
// Trips are compared by Key; adding a walk already present is a no-op.
type Set struct {
	index map[string]int
	trips []*Trip
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add stores a copy of t unless an identical walk is already present.
// It reports whether the trip was added.
func (s *Set) Add(t *Trip) bool {
	k := t.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.trips)
	s.trips = append(s.trips, t.Clone())

	return true
}

// Contains reports whether an identical walk is in the set.
func (s *Set) Contains(t *Trip) bool {
	_, ok := s.index[t.Key()]

	return ok
}

// Len returns the number of distinct trips.
func (s *Set) Len() int { return len(s.trips) }

// Trips returns the trips in insertion order. Each element is an
// independent copy owned by the caller.
func (s *Set) Trips() []*Trip {
	out := make([]*Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}

	return out
}

// Filter returns a new Set holding the trips for which keep returns true,
// preserving order.
func (s *Set) Filter(keep func(*Trip) bool) *Set {
	out := NewSet()
	for _, t := range s.trips {
		if keep(t) {
			out.Add(t)
		}
	}

	return out
}
