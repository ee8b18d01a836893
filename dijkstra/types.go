// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a rail network.
//
// Options:
//
//	– Source:           name of the departure city (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; cities beyond this are left unreached.
//	– InfEdgeThreshold: routes with distance >= this threshold are treated as closed.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source name is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if a negative route distance is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// A source missing from the graph is reported as core.ErrUnknownCity and an
// unreachable destination as core.ErrNoRouteFound.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source city name is empty.
	ErrEmptySource = errors.New("dijkstra: source city name is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative route distance was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative route distance encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would close every route.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for cities not reached from the source.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – departure city name (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0.
//
//	Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat routes with distance ≥ this threshold as closed.
//
//	Must be > 0. Default is math.MaxInt64 (no closed routes).
type Options struct {
	Source           string // The departure city
	ReturnPath       bool   // Whether to return the predecessor map
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Distance threshold above which routes are closed
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the departure city. Must be called.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cities whose shortest distance would exceed this value stay unreached.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold closes every route whose distance is ≥ threshold.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source city.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no cap).
//   - InfEdgeThreshold: math.MaxInt64 (no closed routes).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
