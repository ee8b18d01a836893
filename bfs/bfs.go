// Package bfs provides breadth-first search over a rail network, returning
// the fewest number of stops to every reachable city, parent links, and the
// visit order. Route distances are ignored.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/railway/core"
)

// queueItem pairs a city with its BFS depth.
type queueItem struct {
	city  string
	stops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from the city named start.
// Neighbors are expanded in route insertion order, so Order is reproducible.
// Returns ErrGraphNil, core.ErrUnknownCity, ErrOptionViolation, context
// errors or any OnVisit error; the result is nil whenever err is not.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := g.Lookup(start); err != nil {
		return nil, err
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]string, 0, n),
			Stops:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks city visited at the given depth and records its parent.
func (w *walker) enqueue(city string, stops int, parent string) {
	w.visited[city] = true
	w.res.Stops[city] = stops
	if parent != "" {
		w.res.Parent[city] = parent
	}
	w.queue = append(w.queue, queueItem{city: city, stops: stops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.city)
		if err := w.opts.OnVisit(item.city, item.stops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.city, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies the route filter and MaxStops, then enqueues each
// unseen destination.
func (w *walker) enqueueNeighbors(item queueItem) error {
	c, ok := w.graph.City(item.city)
	if !ok {
		return fmt.Errorf("bfs: %w: %q", core.ErrUnknownCity, item.city)
	}
	next := item.stops + 1
	if w.opts.MaxStops > 0 && next > w.opts.MaxStops {
		return nil
	}
	for _, r := range c.Routes() {
		if !w.opts.FilterRoute(r) || w.visited[r.To] {
			continue
		}
		w.enqueue(r.To, next, item.city)
	}

	return nil
}
