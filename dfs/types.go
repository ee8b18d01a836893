// Package dfs defines types and options for bounded depth-first enumeration
// of walks, including cancellation, an accepted-trip hook and diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/railway/trip"
)

// Limit selects what the search budget counts.
type Limit int

const (
	// LimitByStops spends one unit of budget per route followed.
	LimitByStops Limit = iota

	// LimitByDistance spends the distance of each route followed.
	LimitByDistance
)

// String implements fmt.Stringer.
func (l Limit) String() string {
	switch l {
	case LimitByStops:
		return "stops"
	case LimitByDistance:
		return "distance"
	default:
		return "unknown"
	}
}

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeBudget indicates a negative hop or distance bound.
	ErrNegativeBudget = errors.New("dfs: budget must be non-negative")

	// ErrBadHopWindow indicates minHops > maxHops or minHops < 0.
	ErrBadHopWindow = errors.New("dfs: invalid hop window")

	// ErrNonPositiveWeight indicates a route of distance 0 in a distance-bounded
	// search; such a route would not shrink the budget and the walk would never end.
	ErrNonPositiveWeight = errors.New("dfs: distance-bounded search needs positive route distances")
)

// Option configures optional behavior of a search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnTrip, if non-nil, is invoked once for every newly accepted walk.
	// The trip is a copy the hook may retain. Returning an error aborts the search.
	OnTrip func(t *trip.Trip) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnTrip: nil,
	}
}

// WithContext returns an Option that sets the Context of the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnTrip returns an Option that installs fn as the accepted-trip hook.
func WithOnTrip(fn func(t *trip.Trip) error) Option {
	return func(o *Options) {
		o.OnTrip = fn
	}
}

// Result captures the outcome of a bounded enumeration.
type Result struct {
	// Trips holds every distinct accepted walk, in discovery order.
	Trips *trip.Set

	// Expanded counts routes followed during the search. Useful for diagnostics.
	Expanded int

	// Pruned counts routes skipped because they would overdraw the budget.
	Pruned int
}
