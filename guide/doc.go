// Package guide answers the travel questions of a rail network by city name.
//
// A Guide wraps a *core.Graph and routes each question to the right engine:
//
//   - ExactPath, Distance: follow the listed cities along direct routes, no search.
//   - TripsWithMaxStops, TripsWithStops: hop-bounded walk enumeration (package dfs).
//   - TripsWithinDistance, TripsShorterThan: distance-bounded enumeration (package dfs).
//   - Shortest, ShortestDistance: Dijkstra (package dijkstra).
//   - ShortestRoundTrip: the shortest walk leaving a city and coming back to it.
//   - FewestStops: the trip with the fewest routes, ignoring distance (package bfs).
//
// Walks may revisit cities and routes; two walks are the same only when they
// visit exactly the same sequence of cities. Trips are returned in discovery
// order and belong to the caller.
//
// Errors: a name that is not in the network yields core.ErrUnknownCity; a
// missing direct route or an unreachable destination yields core.ErrNoRouteFound.
// Both are wrapped with the names involved; test them with errors.Is.
// A total distance past int64 yields core.ErrDistanceOverflow.
//
// Each query also accepts the options of the engine behind it (dfs.Option,
// dijkstra.Option or bfs.Option), e.g. dfs.WithOnTrip to stream walks.
//
// Example (the Kiwiland network):
//
//	g := builder.Kiwiland() // AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7
//	gd := guide.New(g)
//	d, _ := gd.Distance("A", "B", "C")             // 9
//	trips, _ := gd.TripsWithMaxStops("C", "C", 3)  // C -> D -> C, C -> E -> B -> C
//	_, err := gd.Distance("A", "E", "D")           // errors.Is(err, core.ErrNoRouteFound)
package guide
