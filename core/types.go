// Package core defines the central Graph and City types of a rail network,
// and provides thread-safe primitives for building and querying it.
//
// This file declares City, Route, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyCityName   - city name is the empty string.
//	ErrUnknownCity     - a referenced city is not in the graph.
//	ErrNoRouteFound    - no route (or no walk) satisfies the query.
//	ErrNegativeWeight  - a route distance is negative.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityName indicates that the provided city name is empty.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrUnknownCity indicates an operation referenced a city absent from the graph.
	ErrUnknownCity = errors.New("core: no such city")

	// ErrNoRouteFound indicates that no route satisfies the query.
	// It is a legitimate query outcome, not a program fault.
	ErrNoRouteFound = errors.New("core: no such route")

	// ErrNegativeWeight indicates a route was given a negative distance.
	ErrNegativeWeight = errors.New("core: negative route distance")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDistanceOverflow indicates a total distance that does not fit int64.
	ErrDistanceOverflow = errors.New("core: total distance overflows int64")
)

// City is a node of the rail network.
//
// A City owns its outgoing routes, keyed by destination name. Destinations are
// resolved through the owning Graph, so cities never point at each other.
// Cities are not synchronized on their own: mutate them only while building
// the Graph, before any query runs.
type City struct {
	name string

	// routes[destination] = distance
	routes map[string]int64

	// order keeps destinations in first-insertion order so that neighbor
	// iteration is reproducible across calls.
	order []string
}

// Route is a one-way weighted connection between two cities.
type Route struct {
	// From is the departure city name.
	From string

	// To is the arrival city name.
	To string

	// Distance is the non-negative weight of the route.
	Distance int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (routes from a city to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the city catalog.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.cities = make(map[string]*City, n)
		}
	}
}

// Graph is the in-memory rail network: a catalog of uniquely named cities.
//
// mu protects the cities map and every city's route table. Queries take read
// locks only, so any number of goroutines may query a fully built Graph.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops

	cities map[string]*City // city name → City
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		cities: make(map[string]*City),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
