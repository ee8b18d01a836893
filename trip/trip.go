// Package trip defines Trip, an ordered walk through a rail network,
// and Set, a duplicate-free collection of trips.
//
// A Trip does not validate that consecutive cities are connected: the
// algorithm that produces it guarantees that. Asking for the Weight of a
// badly built Trip yields core.ErrNoRouteFound.
package trip

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/railway/core"
)

// Separator joins city names in the rendered form of a Trip.
const Separator = " -> "

// keySep separates names inside Key. City names never contain a NUL byte
// in practice, so the key is unambiguous.
const keySep = "\x00"

// Trip is an ordered sequence of cities, from the first to the last.
type Trip struct {
	cities []*core.City
}

// New returns a Trip visiting the given cities in order.
func New(cities ...*core.City) *Trip {
	t := &Trip{cities: make([]*core.City, len(cities))}
	copy(t.cities, cities)

	return t
}

// Append adds c at the end of the trip.
func (t *Trip) Append(c *core.City) { t.cities = append(t.cities, c) }

// RemoveLast drops the last city, keeping the underlying storage so that
// a depth-first search can backtrack without reallocating.
// It is a no-op on an empty trip.
func (t *Trip) RemoveLast() {
	if len(t.cities) == 0 {
		return
	}
	t.cities[len(t.cities)-1] = nil
	t.cities = t.cities[:len(t.cities)-1]
}

// First returns the departure city, or nil for an empty trip.
func (t *Trip) First() *core.City {
	if len(t.cities) == 0 {
		return nil
	}

	return t.cities[0]
}

// Last returns the current end of the trip, or nil for an empty trip.
func (t *Trip) Last() *core.City {
	if len(t.cities) == 0 {
		return nil
	}

	return t.cities[len(t.cities)-1]
}

// Len returns the number of cities (stops including both ends).
func (t *Trip) Len() int { return len(t.cities) }

// Hops returns the number of routes travelled, Len()-1.
func (t *Trip) Hops() int {
	if len(t.cities) == 0 {
		return 0
	}

	return len(t.cities) - 1
}

// Cities returns a copy of the visited cities.
func (t *Trip) Cities() []*core.City {
	out := make([]*core.City, len(t.cities))
	copy(out, t.cities)

	return out
}

// Names returns the visited city names in order.
func (t *Trip) Names() []string {
	out := make([]string, len(t.cities))
	for i, c := range t.cities {
		out[i] = c.Name()
	}

	return out
}

// Weight sums the distances of consecutive routes.
// It returns core.ErrNoRouteFound if two consecutive cities are not
// connected, which only happens for a trip built by hand, and
// core.ErrDistanceOverflow if the sum does not fit int64.
// Complexity: O(Len).
func (t *Trip) Weight() (int64, error) {
	var total int64
	for i := 1; i < len(t.cities); i++ {
		w, err := t.cities[i-1].WeightTo(t.cities[i].Name())
		if err != nil {
			return 0, err
		}
		if w > 0 && total > math.MaxInt64-w {
			return 0, fmt.Errorf("%w: %s", core.ErrDistanceOverflow, t)
		}
		total += w
	}

	return total, nil
}

// Slice returns the sub-trip of cities [from, to), sharing no storage with t.
func (t *Trip) Slice(from, to int) *Trip {
	return New(t.cities[from:to]...)
}

// Key identifies the trip by its full ordered name sequence.
// Two trips with the same key are the same walk.
func (t *Trip) Key() string {
	return strings.Join(t.Names(), keySep)
}

// Equal reports whether both trips visit the same cities in the same order.
func (t *Trip) Equal(other *Trip) bool {
	if other == nil || len(t.cities) != len(other.cities) {
		return false
	}
	for i := range t.cities {
		if t.cities[i].Name() != other.cities[i].Name() {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the trip.
func (t *Trip) Clone() *Trip { return New(t.cities...) }

// String renders the trip as "A -> B -> C".
func (t *Trip) String() string {
	return strings.Join(t.Names(), Separator)
}
