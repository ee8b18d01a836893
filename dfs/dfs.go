// Package dfs enumerates walks between two cities with a depth-first search
// bounded by a number of stops or by a travelled distance.
//
// A walk may revisit cities and routes. Reaching the destination accepts the
// walk and the search keeps going past it, so longer walks that pass through
// the destination several times are found as well.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/trip"
)

// walker encapsulates state during one enumeration.
type walker struct {
	graph *core.Graph
	dest  string
	limit Limit
	opts  Options
	path  *trip.Trip
	res   *Result
}

// ByHops returns every walk from source to dest travelling at most maxHops routes.
// Errors: ErrGraphNil, ErrNegativeBudget, core.ErrUnknownCity, context errors,
// and any error returned by the OnTrip hook.
func ByHops(g *core.Graph, source, dest string, maxHops int, opts ...Option) (*Result, error) {
	return Walks(g, source, dest, int64(maxHops), LimitByStops, opts...)
}

// ExactHops returns every walk from source to dest whose number of routes lies
// in [minHops, maxHops]. It runs a single search to maxHops and filters it:
// that search already visits every shorter candidate.
func ExactHops(g *core.Graph, source, dest string, minHops, maxHops int, opts ...Option) (*Result, error) {
	if minHops < 0 || minHops > maxHops {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadHopWindow, minHops, maxHops)
	}

	// the hook only sees walks inside the window
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if hook := o.OnTrip; hook != nil {
		opts = append(opts, WithOnTrip(func(t *trip.Trip) error {
			if t.Hops() < minHops {
				return nil
			}
			return hook(t)
		}))
	}

	res, err := ByHops(g, source, dest, maxHops, opts...)
	if err != nil {
		return nil, err
	}
	res.Trips = res.Trips.Filter(func(t *trip.Trip) bool { return t.Hops() >= minHops })

	return res, nil
}

// ByDistance returns every walk from source to dest whose total distance is
// at most maxDistance. Every route of g must have a positive distance.
func ByDistance(g *core.Graph, source, dest string, maxDistance int64, opts ...Option) (*Result, error) {
	return Walks(g, source, dest, maxDistance, LimitByDistance, opts...)
}

// Walks is the shared bounded enumeration behind ByHops and ByDistance.
func Walks(g *core.Graph, source, dest string, budget int64, limit Limit, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d %s", ErrNegativeBudget, budget, limit)
	}
	ends, err := g.Lookup(source, dest)
	if err != nil {
		return nil, err
	}
	if limit == LimitByDistance {
		for _, r := range g.Routes() {
			if r.Distance <= 0 {
				return nil, fmt.Errorf("%w: %s -> %s = %d", ErrNonPositiveWeight, r.From, r.To, r.Distance)
			}
		}
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Search
	w := &walker{
		graph: g,
		dest:  ends[1].Name(),
		limit: limit,
		opts:  dopts,
		path:  trip.New(ends[0]),
		res:   &Result{Trips: trip.NewSet()},
	}
	if err = w.walk(budget); err != nil {
		return nil, err
	}

	return w.res, nil
}

// walk extends the current path with every neighbor of its last city whose
// cost fits the remaining budget, recording the path each time it arrives at
// the destination. A budget of zero or less stops the expansion.
func (w *walker) walk(budget int64) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Base case
	if budget <= 0 {
		return nil
	}

	last := w.path.Last()
	for _, name := range last.Neighbors() {
		cost, err := w.cost(last, name)
		if err != nil {
			return err
		}
		if cost > budget {
			w.res.Pruned++
			continue
		}

		next, ok := w.graph.City(name)
		if !ok {
			return fmt.Errorf("dfs: route %s -> %s: %w", last.Name(), name, core.ErrUnknownCity)
		}

		w.res.Expanded++
		w.path.Append(next)
		if name == w.dest {
			if err = w.accept(); err != nil {
				w.path.RemoveLast()
				return err
			}
		}
		err = w.walk(budget - cost)
		w.path.RemoveLast()
		if err != nil {
			return err
		}
	}

	return nil
}

// cost returns the budget spent by following from → to.
func (w *walker) cost(from *core.City, to string) (int64, error) {
	if w.limit == LimitByStops {
		return 1, nil
	}

	return from.WeightTo(to)
}

// accept records the current path and fires the OnTrip hook for new walks.
func (w *walker) accept() error {
	if !w.res.Trips.Add(w.path) {
		return nil
	}
	if w.opts.OnTrip != nil {
		if err := w.opts.OnTrip(w.path.Clone()); err != nil {
			return fmt.Errorf("dfs: OnTrip hook for %q: %w", w.path.String(), err)
		}
	}

	return nil
}
