// Package railway answers travel questions about a small rail network:
// cities joined by one-way routes, each with a positive distance.
//
// What can you ask?
//
//   - The distance of an exact path (A -> B -> C), or NO SUCH ROUTE.
//   - How many trips run between two cities within a number of stops,
//     with exactly a number of stops, or under a total distance.
//     Trips may revisit cities and routes.
//   - The shortest route between two cities, or from a city back to itself.
//   - The fewest stops between two cities.
//
// Layout:
//
//	core/      - City, Route and the thread-safe Graph catalog
//	trip/      - Trip (an ordered walk) and Set (duplicate-free trips)
//	dfs/       - bounded walk enumeration by stops or by distance
//	dijkstra/  - shortest distances with a deterministic tie-break
//	bfs/       - fewest-stops search
//	guide/     - name-based facade answering every question above
//	builder/   - "AB5" route notation and YAML network documents
//	cmd/railway - the command-line tool (report, distance, trips, shortest, fewest, cities)
//
// Quick start:
//
//	g := builder.Kiwiland()
//	gd := guide.New(g)
//	d, _ := gd.Distance("A", "B", "C")            // 9
//	trips, _ := gd.TripsShorterThan("C", "C", 30) // 7 trips
//	_, n, _ := gd.Shortest("A", "C")              // 9
//
// Errors are sentinel values compared with errors.Is: core.ErrUnknownCity when
// a name is not in the network, core.ErrNoRouteFound when no route answers the
// question.
package railway
