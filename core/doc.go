// Package core provides the in-memory rail network: a Graph of uniquely named
// cities joined by one-way weighted routes.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Cities are kept in a flat catalog indexed by name (case-sensitive).
//   - Routes are one-way; at most one route exists for any ordered pair
//     (a repeated pair overwrites the distance: last write wins).
//   - Routes reference their destination by name and are resolved through the
//     owning Graph, so there are no pointer cycles between cities.
//   - Distances are non-negative int64 values.
//   - Self-loops are rejected unless the graph is built WithLoops().
//
// Lifecycle:
//
//	g := core.NewGraph()
//	_ = g.AddRoute("A", "B", 5) // creates A and B on first reference
//	_ = g.AddRoute("B", "C", 4)
//	// ... from here on the Graph is treated as read-only.
//
// Core Methods:
//
//	// Cities
//	AddCity(name string) (*City, error)     // O(1), create or replace
//	City(name string) (*City, bool)         // O(1), absence is not an error
//	HasCity(name string) bool               // O(1)
//	Lookup(names ...string) ([]*City, error)// O(k), ErrUnknownCity on first miss
//	Cities() []*City                        // O(V·log V), sorted by name
//	Names() []string                        // O(V·log V), sorted
//	CityCount() int                         // O(1)
//
//	// Routes
//	AddRoute(from, to string, d int64) error// O(1)
//	HasRoute(from, to string) bool          // O(1)
//	Distance(from, to string) (int64, error)// O(1)
//	Routes() []Route                        // O(V·log V + E)
//	RouteCount() int                        // O(V)
//
//	// City
//	WeightTo(dest string) (int64, error)    // ErrNoRouteFound if absent
//	Neighbors() []string                    // insertion order
//
// Concurrency:
//
// A single sync.RWMutex guards the catalog. Build the Graph first; afterwards
// any number of goroutines may run read-only queries concurrently.
//
// Errors:
//
//	ErrEmptyCityName  – zero-length city name
//	ErrUnknownCity    – referenced city absent from the graph
//	ErrNoRouteFound   – no route satisfies the query
//	ErrNegativeWeight – negative route distance
//	ErrLoopNotAllowed – self-loop when loops are disabled
package core
