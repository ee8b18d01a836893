// Package bfs implements breadth-first search on a core.Graph rail network,
// counting stops (routes travelled) instead of distance.
//
// What:
//
//   - Visits cities in non-decreasing number of stops from a start city.
//   - Records the fewest stops to every reachable city and a parent link,
//     so PathTo rebuilds one fewest-stops path.
//   - Route distances play no part; use package dijkstra for distance.
//
// Options:
//
//   - WithContext(ctx):      cancellation, checked once per dequeued city.
//   - WithMaxStops(d):       ignore cities more than d stops away (0 = no limit).
//   - WithFilterRoute(fn):   close routes for which fn returns false.
//   - WithOnVisit(fn):       hook per visited city; an error aborts the search.
//
// Determinism:
//
//   - Neighbors are expanded in route insertion order, and a city keeps the
//     parent that discovered it first. Same network, same result.
//
// Complexity:
//
//   - Time O(V + E), memory O(V).
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation, core.ErrUnknownCity for the start city,
//     core.ErrNoRouteFound from PathTo for an unreached city.
package bfs
