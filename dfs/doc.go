// Package dfs implements bounded depth-first enumeration of walks on a
// core.Graph rail network.
//
// What:
//
//   - ByHops(g, src, dst, maxHops): every walk src→dst using at most maxHops routes.
//   - ExactHops(g, src, dst, minHops, maxHops): the same search, filtered to walks
//     whose hop count lies in [minHops, maxHops]. The search is not re-run.
//   - ByDistance(g, src, dst, maxDistance): every walk src→dst whose total
//     distance is at most maxDistance.
//
// Semantics:
//
//   - Walks may revisit cities and routes freely (they are walks, not simple paths).
//   - Arriving at dst (at depth ≥ 1) accepts the walk and the search continues past
//     dst, so C→D→C→E→B→C is found alongside C→D→C.
//   - The budget decreases by 1 per route (stops) or by the route distance
//     (distance); a route whose cost exceeds the remaining budget is not followed,
//     and a budget ≤ 0 ends the expansion. Budgets strictly decrease, so every
//     search terminates.
//   - Results are deduplicated by full city sequence and kept in discovery order,
//     which follows each city's route insertion order.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithOnTrip(fn)     hook for each newly accepted walk; error aborts.
//
// Complexity:
//
//   - Time:   O(d^B) in the worst case for max out-degree d and budget depth B.
//   - Memory: O(B) for the recursion and the shared working trip, plus the result set.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrNegativeBudget      if the bound is negative.
//   - ErrBadHopWindow        if minHops < 0 or minHops > maxHops.
//   - ErrNonPositiveWeight   if a distance-bounded search meets a zero-distance route.
//   - core.ErrUnknownCity    if src or dst is not in the graph.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnTrip.
package dfs
