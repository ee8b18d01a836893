// Package bfs provides tunable options and error definitions
// for breadth-first search over a rail network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/railway/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a city is dequeued, with its number of stops
	// from the start. Returning an error aborts the search.
	OnVisit func(city string, stops int) error

	// MaxStops, if > 0, stops exploring beyond this many stops.
	// A value of 0 disables the limit.
	MaxStops int

	// FilterRoute can close routes by returning false.
	FilterRoute func(r core.Route) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - context.Background()
//   - no stop limit (MaxStops == 0)
//   - every route open
//   - a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		OnVisit:     func(string, int) error { return nil },
		MaxStops:    0,
		FilterRoute: func(core.Route) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(city string, stops int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStops limits the search to cities at most d stops away.
//
//	d > 0: limit to d stops
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxStops(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxStops cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxStops = d
	}
}

// WithFilterRoute skips routes for which fn returns false.
func WithFilterRoute(fn func(r core.Route) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterRoute = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cities visited, in visit sequence.
//   - Stops: city name → fewest stops from the start.
//   - Parent: city name → predecessor in the BFS tree.
type BFSResult struct {
	Start  string
	Order  []string
	Stops  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-stops path from the start city to dest.
// Returns core.ErrNoRouteFound if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Stops[dest]; !ok {
		return nil, fmt.Errorf("%w: %s -> %s", core.ErrNoRouteFound, r.Start, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
