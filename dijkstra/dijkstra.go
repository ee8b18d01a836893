// Package dijkstra implements Dijkstra's shortest-path algorithm on a rail network.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all routes (O(E)) to detect negative distances and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties between equal tentative distances are broken by city name (ascending), so the
//     city finalized next, and therefore the returned path, is deterministic.
//   - Every call recomputes from scratch; nothing is cached on the graph.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/trip"
)

// Dijkstra computes shortest distances from the source city (Options.Source)
// to every city of g.
//
// Returns:
//
//   - dist: city name → minimum distance (Unreachable if not reached).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     prev[v] == "" for the source and for unreached cities.
//   - err:  ErrEmptySource, ErrNilGraph, core.ErrUnknownCity, ErrNegativeWeight,
//     core.ErrDistanceOverflow when a city is reachable only through a path
//     whose distance does not fit int64 (and no MaxDistance cap is set).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	r, err := run(g, opts)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range g.Names() {
		if err = r.checkOverflow(name); err != nil {
			return nil, nil, err
		}
	}

	if !r.options.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// run validates the options and g, then executes the search.
func run(g *core.Graph, opts []Option) (*runner, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasCity(cfg.Source) {
		return nil, fmt.Errorf("dijkstra: %w: %q", core.ErrUnknownCity, cfg.Source)
	}
	for _, r := range g.Routes() {
		if r.Distance < 0 {
			return nil, fmt.Errorf("%w: route %s→%s distance=%d", ErrNegativeWeight, r.From, r.To, r.Distance)
		}
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.spreadOverflow()

	return r, nil
}

// ShortestPath returns a minimum-distance trip from source to dest and its distance.
// source == dest yields the single-city trip of distance 0.
// An unreachable dest is reported as core.ErrNoRouteFound, a dest whose
// every path overflows int64 as core.ErrDistanceOverflow.
func ShortestPath(g *core.Graph, source, dest string, opts ...Option) (*trip.Trip, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if _, err := g.Lookup(source, dest); err != nil {
		return nil, 0, err
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(source), WithReturnPath())
	r, err := run(g, all)
	if err != nil {
		return nil, 0, err
	}
	if err = r.checkOverflow(dest); err != nil {
		return nil, 0, err
	}
	if r.dist[dest] == Unreachable {
		return nil, 0, fmt.Errorf("%w: %s -> %s", core.ErrNoRouteFound, source, dest)
	}

	names := PathTo(r.prev, source, dest)
	cities, err := g.Lookup(names...)
	if err != nil {
		return nil, 0, err
	}

	return trip.New(cities...), r.dist[dest], nil
}

// PathTo walks predecessor links back from dest to source and returns the
// city names in travel order. It returns nil when dest was never reached.
func PathTo(prev map[string]string, source, dest string) []string {
	if dest == source {
		return []string{source}
	}
	if prev[dest] == "" {
		return nil
	}

	var rev []string
	for cur := dest; cur != ""; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
	}
	out := make([]string, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // city → current best distance from Source.
	prev    map[string]string // city → predecessor on the shortest path.
	visited map[string]bool   // finalized cities.
	pq      nodePQ            // Min-heap of *nodeItem.

	// overflow records cities whose relaxation was dropped because the
	// candidate distance did not fit int64.
	overflow map[string]bool
}

func newRunner(g *core.Graph, cfg Options) *runner {
	v := g.CityCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, v),
		prev:    make(map[string]string, v),
		visited: make(map[string]bool, v),
		pq:      make(nodePQ, 0, v),

		overflow: make(map[string]bool),
	}
}

// init sets every distance to Unreachable except the source (0) and seeds the heap.
func (r *runner) init() {
	for _, name := range r.g.Names() {
		r.dist[name] = Unreachable
		r.prev[name] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly finalizes the closest unfinalized city and relaxes its routes.
// It ends when the heap is empty (every remaining city is unreachable) or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each route leaving u and improves the tentative distance of
// unfinalized neighbors when the candidate is strictly smaller.
func (r *runner) relax(u string) error {
	city, ok := r.g.City(u)
	if !ok {
		return fmt.Errorf("dijkstra: %w: %q", core.ErrUnknownCity, u)
	}

	du := r.dist[u]
	for _, route := range city.Routes() {
		v, w := route.To, route.Distance
		if r.visited[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue // closed route
		}
		if w >= Unreachable-du {
			r.overflow[v] = true // the sum would reach the Unreachable sentinel
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// spreadOverflow marks every unreached city behind an overflowed one: it is
// reachable, just not at a distance int64 can hold.
func (r *runner) spreadOverflow() {
	if r.options.MaxDistance != Unreachable || len(r.overflow) == 0 {
		return
	}
	queue := make([]string, 0, len(r.overflow))
	for name := range r.overflow {
		queue = append(queue, name)
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		city, ok := r.g.City(name)
		if !ok {
			continue
		}
		for _, route := range city.Routes() {
			if route.Distance >= r.options.InfEdgeThreshold {
				continue
			}
			if r.dist[route.To] != Unreachable || r.overflow[route.To] {
				continue
			}
			r.overflow[route.To] = true
			queue = append(queue, route.To)
		}
	}
}

// checkOverflow fails when name was left Unreachable only because every
// path to it overflows. With a MaxDistance cap such a city is simply out of range.
func (r *runner) checkOverflow(name string) error {
	if r.options.MaxDistance != Unreachable {
		return nil
	}
	if r.overflow[name] && r.dist[name] == Unreachable {
		return fmt.Errorf("dijkstra: %w: %s -> %s", core.ErrDistanceOverflow, r.options.Source, name)
	}

	return nil
}

// nodeItem represents a city and its tentative distance from the source.
type nodeItem struct {
	id   string // city name
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by city name for a deterministic tie-break.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
