// File: city.go
// Role: City (node) primitives: identity, outgoing routes, neighbor order.
// Determinism:
//   - Neighbors() returns destinations in first-insertion order.
//   - Routes() follows the same order.

package core

import "fmt"

// NewCity returns a detached City with no routes.
// Most callers should use Graph.AddCity instead, which registers the city.
func NewCity(name string) *City {
	return &City{name: name, routes: make(map[string]int64)}
}

// Name returns the unique, case-sensitive identifier of the city.
func (c *City) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *City) String() string { return c.name }

// AddRoute records a one-way route from c to dest.
// A second route to the same destination overwrites the first (last write wins);
// the destination keeps its original position in neighbor order.
// Complexity: O(1) amortized.
func (c *City) AddRoute(dest string, distance int64) {
	if _, ok := c.routes[dest]; !ok {
		c.order = append(c.order, dest)
	}
	c.routes[dest] = distance
}

// WeightTo returns the distance of the direct route from c to dest.
// It returns ErrNoRouteFound if no such route exists.
func (c *City) WeightTo(dest string) (int64, error) {
	w, ok := c.routes[dest]
	if !ok {
		return 0, fmt.Errorf("%w: %s -> %s", ErrNoRouteFound, c.name, dest)
	}

	return w, nil
}

// HasRouteTo reports whether c has a direct route to dest.
func (c *City) HasRouteTo(dest string) bool {
	_, ok := c.routes[dest]

	return ok
}

// Neighbors returns the names of directly reachable cities in insertion order.
// The returned slice is a copy; callers may keep it.
func (c *City) Neighbors() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Degree returns the number of outgoing routes.
func (c *City) Degree() int { return len(c.order) }

// Routes returns the outgoing routes of c in neighbor order.
func (c *City) Routes() []Route {
	out := make([]Route, 0, len(c.order))
	for _, to := range c.order {
		out = append(out, Route{From: c.name, To: to, Distance: c.routes[to]})
	}

	return out
}
