// File: methods_cities.go
// Role: City catalog lifecycle & queries.
//
// Determinism:
//   - Cities() and Names() return cities sorted lexicographically by name.
//
// Concurrency:
//   - Catalog protected by g.mu; queries take the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddCity creates a city with the given name and returns it.
// If a city with that name already exists it is replaced by a fresh one with
// no outgoing routes; routes of other cities pointing at the name still
// resolve, since they reference destinations by name.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyCityName).
//   - Stage 2: Under the write lock, allocate and register the City.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddCity(name string) (*City, error) {
	if name == "" {
		return nil, ErrEmptyCityName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	c := NewCity(name)
	g.cities[name] = c

	return c, nil
}

// City returns the city with the given name.
// A missing city is reported by ok == false, not by an error: callers decide
// whether absence is a failure.
// Complexity: O(1).
func (g *Graph) City(name string) (c *City, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok = g.cities[name]

	return c, ok
}

// HasCity reports whether the city exists (empty name ⇒ false).
func (g *Graph) HasCity(name string) bool {
	if name == "" {
		return false
	}
	_, ok := g.City(name)

	return ok
}

// Lookup resolves every name to its City, in order.
// It returns ErrUnknownCity wrapped with the first missing name.
//
// Complexity:
//   - Time O(len(names)), Space O(len(names)).
func (g *Graph) Lookup(names ...string) ([]*City, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*City, 0, len(names))
	for _, name := range names {
		c, ok := g.cities[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
		}
		out = append(out, c)
	}

	return out, nil
}

// Cities returns all cities sorted by name.
// The slice is freshly allocated; it is the working set handed to
// shortest-path computations.
// Complexity: O(V log V).
func (g *Graph) Cities() []*City {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*City, 0, len(g.cities))
	for _, c := range g.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Names returns all city names in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.cities))
	for name := range g.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// CityCount returns the number of cities.
// Complexity: O(1).
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cities)
}
