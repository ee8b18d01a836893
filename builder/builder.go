// SPDX-License-Identifier: MIT
// Package: railway/builder
//
// builder.go - Builder accumulates validated routes and produces core.Graph values.
//
// Determinism: cities gain neighbors in the order routes were first added, so
// two Builders fed the same routes produce graphs with identical neighbor order
// and therefore identical enumeration order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/railway/core"
)

// pair identifies a route by its ordered endpoints.
type pair struct{ from, to string }

// Builder collects routes and turns them into a rail network.
// A Builder is not safe for concurrent use.
type Builder struct {
	cfg    builderConfig
	routes []core.Route
	index  map[pair]int // pair → position in routes
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	return &Builder{
		cfg:   newBuilderConfig(opts...),
		index: make(map[pair]int),
	}
}

// Add parses text with ParseRoute and adds the resulting route.
func (b *Builder) Add(text string) error {
	r, err := ParseRoute(text)
	if err != nil {
		return err
	}

	return b.AddRoute(r.From, r.To, r.Distance)
}

// AddAll adds every token of a comma/whitespace separated list.
// Routes added before a bad token stay in the Builder.
func (b *Builder) AddAll(list string) error {
	routes, err := ParseRoutes(list)
	if err != nil {
		return err
	}
	for _, r := range routes {
		if err = b.AddRoute(r.From, r.To, r.Distance); err != nil {
			return err
		}
	}

	return nil
}

// AddRoute adds a one-way route. A repeated pair overwrites the earlier
// distance in place, or fails with ErrDuplicateRoute under WithStrict.
func (b *Builder) AddRoute(from, to string, distance int64) error {
	r := core.Route{From: from, To: to, Distance: distance}
	if err := validateRoute(MethodAddRoute, r); err != nil {
		return err
	}

	key := pair{from, to}
	if i, ok := b.index[key]; ok {
		if b.cfg.strict {
			return builderErrorf(MethodAddRoute, ErrDuplicateRoute, "%s -> %s", from, to)
		}
		b.routes[i].Distance = distance
		return nil
	}
	b.index[key] = len(b.routes)
	b.routes = append(b.routes, r)

	return nil
}

// Len returns the number of distinct routes collected so far.
func (b *Builder) Len() int { return len(b.routes) }

// Routes returns a copy of the collected routes in insertion order.
func (b *Builder) Routes() []core.Route {
	out := make([]core.Route, len(b.routes))
	copy(out, b.routes)

	return out
}

// Reset discards every collected route.
func (b *Builder) Reset() {
	b.routes = nil
	b.index = make(map[pair]int)
}

// Build creates a graph holding every collected route and resets the Builder,
// so the next Build starts from an empty network.
func (b *Builder) Build() (*core.Graph, error) {
	defer b.Reset()

	g := core.NewGraph(core.WithCapacity(b.cfg.capacity))
	for _, r := range b.routes {
		if err := g.AddRoute(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// FromStrings builds a graph from route tokens, each in short or long form.
func FromStrings(specs []string, opts ...BuilderOption) (*core.Graph, error) {
	b := NewBuilder(opts...)
	for _, s := range specs {
		if err := b.Add(s); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// FromRoutes builds a graph from already parsed routes.
func FromRoutes(routes []core.Route, opts ...BuilderOption) (*core.Graph, error) {
	b := NewBuilder(opts...)
	for _, r := range routes {
		if err := b.AddRoute(r.From, r.To, r.Distance); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Kiwiland returns the sample network built from KiwilandRoutes.
func Kiwiland() *core.Graph {
	g, err := FromStrings(KiwilandRoutes)
	if err != nil {
		panic(fmt.Sprintf("builder: sample network: %v", err))
	}

	return g
}
