// File: methods_routes.go
// Role: Route lifecycle & queries: AddRoute/HasRoute/Distance/Routes/RouteCount.
// Determinism:
//   - Routes() is sorted by (From asc, neighbor insertion order).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddRoute records a one-way route from → to with the given distance.
//
// Steps:
//  1. Validate names, distance sign and loop policy.
//  2. Lock the catalog; create endpoints that do not exist yet (existing
//     cities are kept, never replaced).
//  3. Delegate to City.AddRoute (last write wins for a repeated pair).
//
// Complexity: O(1) amortized.
func (g *Graph) AddRoute(from, to string, distance int64) error {
	if from == "" || to == "" {
		return ErrEmptyCityName
	}
	if distance < 0 {
		return fmt.Errorf("%w: %s -> %s = %d", ErrNegativeWeight, from, to, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	src := g.ensureCity(from)
	g.ensureCity(to)
	src.AddRoute(to, distance)

	return nil
}

// ensureCity returns the named city, registering it if missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureCity(name string) *City {
	c, ok := g.cities[name]
	if !ok {
		c = NewCity(name)
		g.cities[name] = c
	}

	return c
}

// HasRoute reports whether a direct route from → to exists.
// Complexity: O(1).
func (g *Graph) HasRoute(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.cities[from]

	return ok && c.HasRouteTo(to)
}

// Distance returns the distance of the direct route from → to.
// ErrUnknownCity is returned for a missing departure city,
// ErrNoRouteFound when the route does not exist.
func (g *Graph) Distance(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, ok := g.cities[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}

	return c.WeightTo(to)
}

// Routes returns every route of the graph, grouped by departure city
// (sorted by name) and, within a city, in insertion order.
// Complexity: O(V log V + E).
func (g *Graph) Routes() []Route {
	cities := g.Cities()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Route, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.Routes()...)
	}

	return out
}

// RouteCount returns the total number of routes.
// Complexity: O(V).
func (g *Graph) RouteCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, c := range g.cities {
		n += c.Degree()
	}

	return n
}
