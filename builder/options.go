// SPDX-License-Identifier: MIT
// Package: railway/builder
//
// options.go - functional options for Builder and the loaders.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Later options override earlier ones.

package builder

// BuilderOption customizes a Builder by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs of a Builder.
type builderConfig struct {
	// strict rejects a repeated from→to pair instead of overwriting it.
	strict bool
	// capacity pre-sizes the city catalog of built graphs; 0 means default.
	capacity int
}

// newBuilderConfig returns the defaults with opts applied in order.
// Defaults: lenient duplicates (last write wins), no pre-sizing.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{strict: false, capacity: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrict makes a repeated route for the same ordered pair an error
// (ErrDuplicateRoute) instead of overwriting the earlier distance.
func WithStrict() BuilderOption {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithCapacity pre-sizes the city catalog of every graph the Builder produces.
// Panics if n < 0.
func WithCapacity(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithCapacity(n<0)")
	}
	return func(c *builderConfig) {
		c.capacity = n
	}
}
