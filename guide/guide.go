// SPDX-License-Identifier: MIT

// File: guide.go
// Role: name-based query facade over core, dfs and dijkstra.
package guide

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/railway/bfs"
	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/dfs"
	"github.com/katalvlaran/railway/dijkstra"
	"github.com/katalvlaran/railway/trip"
)

var (
	// ErrNilGraph is returned by every query of a Guide built over a nil graph.
	ErrNilGraph = errors.New("guide: graph is nil")

	// ErrNoCities indicates an exact path query with no city names.
	ErrNoCities = errors.New("guide: at least one city is required")
)

// Option configures a Guide.
type Option func(*Guide)

// WithContext bounds every walk enumeration of the Guide by ctx.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(gd *Guide) {
		if ctx != nil {
			gd.ctx = ctx
		}
	}
}

// Guide answers travel questions about a rail network, addressing cities by name.
// It holds no query state; one Guide may serve concurrent callers.
type Guide struct {
	g   *core.Graph
	ctx context.Context
}

// New returns a Guide over g.
func New(g *core.Graph, opts ...Option) *Guide {
	gd := &Guide{g: g, ctx: context.Background()}
	for _, opt := range opts {
		opt(gd)
	}

	return gd
}

// Graph returns the underlying network.
func (gd *Guide) Graph() *core.Graph { return gd.g }

// ExactPath returns the trip visiting names in the given order along direct routes.
// Every hop is checked: a missing direct route yields core.ErrNoRouteFound,
// an absent city core.ErrUnknownCity.
func (gd *Guide) ExactPath(names ...string) (*trip.Trip, error) {
	if gd.g == nil {
		return nil, ErrNilGraph
	}
	if len(names) == 0 {
		return nil, ErrNoCities
	}
	cities, err := gd.g.Lookup(names...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(cities); i++ {
		if _, err = cities[i-1].WeightTo(cities[i].Name()); err != nil {
			return nil, err
		}
	}

	return trip.New(cities...), nil
}

// Distance returns the total distance of the exact path through names.
func (gd *Guide) Distance(names ...string) (int64, error) {
	t, err := gd.ExactPath(names...)
	if err != nil {
		return 0, err
	}

	return t.Weight()
}

// TripsWithMaxStops returns every walk from src to dst with at most maxStops routes.
// opts reach the underlying dfs search, e.g. dfs.WithOnTrip to stream results.
func (gd *Guide) TripsWithMaxStops(src, dst string, maxStops int, opts ...dfs.Option) ([]*trip.Trip, error) {
	if gd.g == nil {
		return nil, ErrNilGraph
	}
	res, err := dfs.ByHops(gd.g, src, dst, maxStops, gd.walkOpts(opts)...)
	if err != nil {
		return nil, err
	}

	return res.Trips.Trips(), nil
}

// TripsWithStops returns every walk from src to dst whose number of routes
// lies in [minStops, maxStops]. Use minStops == maxStops for an exact count.
func (gd *Guide) TripsWithStops(src, dst string, minStops, maxStops int, opts ...dfs.Option) ([]*trip.Trip, error) {
	if gd.g == nil {
		return nil, ErrNilGraph
	}
	res, err := dfs.ExactHops(gd.g, src, dst, minStops, maxStops, gd.walkOpts(opts)...)
	if err != nil {
		return nil, err
	}

	return res.Trips.Trips(), nil
}

// TripsWithinDistance returns every walk from src to dst of total distance <= maxDistance.
func (gd *Guide) TripsWithinDistance(src, dst string, maxDistance int64, opts ...dfs.Option) ([]*trip.Trip, error) {
	if gd.g == nil {
		return nil, ErrNilGraph
	}
	res, err := dfs.ByDistance(gd.g, src, dst, maxDistance, gd.walkOpts(opts)...)
	if err != nil {
		return nil, err
	}

	return res.Trips.Trips(), nil
}

// TripsShorterThan returns every walk from src to dst of total distance strictly
// less than limit. A limit below 1 is reported as dfs.ErrNegativeBudget.
func (gd *Guide) TripsShorterThan(src, dst string, limit int64, opts ...dfs.Option) ([]*trip.Trip, error) {
	return gd.TripsWithinDistance(src, dst, limit-1, opts...)
}

// walkOpts puts the Guide context first so callers may still override it.
func (gd *Guide) walkOpts(opts []dfs.Option) []dfs.Option {
	return append([]dfs.Option{dfs.WithContext(gd.ctx)}, opts...)
}

// Shortest returns a minimum-distance trip from src to dst and its distance.
// dijkstra.WithMaxDistance and dijkstra.WithInfEdgeThreshold narrow the search.
func (gd *Guide) Shortest(src, dst string, opts ...dijkstra.Option) (*trip.Trip, int64, error) {
	if gd.g == nil {
		return nil, 0, ErrNilGraph
	}

	return dijkstra.ShortestPath(gd.g, src, dst, opts...)
}

// ShortestDistance returns only the distance of Shortest.
func (gd *Guide) ShortestDistance(src, dst string) (int64, error) {
	_, d, err := gd.Shortest(src, dst)

	return d, err
}

// FewestStops returns a trip from src to dst travelling the fewest routes,
// whatever their distance, and that number of stops. opts reach the bfs
// search: bfs.WithMaxStops and bfs.WithFilterRoute restrict it.
func (gd *Guide) FewestStops(src, dst string, opts ...bfs.Option) (*trip.Trip, int, error) {
	if gd.g == nil {
		return nil, 0, ErrNilGraph
	}
	if _, err := gd.g.Lookup(src, dst); err != nil {
		return nil, 0, err
	}
	res, err := bfs.BFS(gd.g, src, append([]bfs.Option{bfs.WithContext(gd.ctx)}, opts...)...)
	if err != nil {
		return nil, 0, err
	}
	names, err := res.PathTo(dst)
	if err != nil {
		return nil, 0, err
	}
	cities, err := gd.g.Lookup(names...)
	if err != nil {
		return nil, 0, err
	}

	return trip.New(cities...), res.Stops[dst], nil
}

// ShortestRoundTrip returns the shortest walk of at least one route that leaves
// name and comes back to it. Each outgoing route name -> n is combined with the
// shortest way back from n; the first minimum in route order wins. opts apply
// to the whole round trip.
func (gd *Guide) ShortestRoundTrip(name string, opts ...dijkstra.Option) (*trip.Trip, int64, error) {
	if gd.g == nil {
		return nil, 0, ErrNilGraph
	}
	cities, err := gd.g.Lookup(name)
	if err != nil {
		return nil, 0, err
	}
	home := cities[0]

	limits := dijkstra.DefaultOptions(name)
	for _, opt := range opts {
		opt(&limits)
	}

	var (
		best     *trip.Trip
		bestDist int64
		overflow error
	)
	for _, r := range home.Routes() {
		if r.Distance >= limits.InfEdgeThreshold {
			continue
		}
		var (
			back  *trip.Trip
			total int64
		)
		if r.To == name {
			back, total = trip.New(home), 0 // self-loop
		} else {
			back, total, err = dijkstra.ShortestPath(gd.g, r.To, name, opts...)
			switch {
			case errors.Is(err, core.ErrNoRouteFound):
				continue
			case errors.Is(err, core.ErrDistanceOverflow):
				overflow = err
				continue
			case err != nil:
				return nil, 0, err
			}
		}
		if total > math.MaxInt64-r.Distance {
			overflow = fmt.Errorf("%w: %s -> %s", core.ErrDistanceOverflow, name, name)
			continue
		}
		total += r.Distance
		if total > limits.MaxDistance {
			continue
		}
		if best != nil && total >= bestDist {
			continue
		}
		best = trip.New(home)
		for _, c := range back.Cities() {
			best.Append(c)
		}
		bestDist = total
	}
	if best == nil && overflow != nil {
		return nil, 0, overflow
	}
	if best == nil {
		return nil, 0, fmt.Errorf("%w: %s -> %s", core.ErrNoRouteFound, name, name)
	}

	return best, bestDist, nil
}
