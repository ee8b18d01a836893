// Package dijkstra provides single-source shortest paths over a core.Graph
// rail network with non-negative route distances.
//
// Overview:
//
//   - Dijkstra computes the minimum distance from one departure city to every
//     city in O((V + E) log V), expanding the next-closest unfinalized city each step.
//   - ShortestPath wraps it for a single destination and rebuilds the trip by
//     walking predecessor links back from the destination.
//
// Tie-break:
//
//   - When several unfinalized cities share the smallest tentative distance, the
//     one with the lexicographically smallest name is finalized first. Relaxation
//     only updates a neighbor on a strictly smaller candidate distance, so among
//     equal-cost paths the first one discovered under that order is kept.
//
// Termination:
//
//   - Unreachable cities never enter the heap, so the loop ends as soon as every
//     reachable city is finalized; cities left at Unreachable were never reached.
//   - If the destination is among them, ShortestPath reports core.ErrNoRouteFound.
//   - Relaxations whose sum would not fit int64 are dropped and remembered. A
//     city left unreached only because of them (or behind one) is reported as
//     core.ErrDistanceOverflow, unless a MaxDistance cap is set.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source option is missing or empty.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrNegativeWeight:  some route has a negative distance (O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with a non-positive value.
//   - core.ErrUnknownCity, core.ErrNoRouteFound: query outcomes.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, source, dest string, opts ...Option) (*trip.Trip, int64, error)
//	func PathTo(prev map[string]string, source, dest string) []string
//
// Thread safety:
//
//   - Each call allocates its own distance, predecessor and heap state; concurrent
//     calls on a graph that is no longer being built are safe.
package dijkstra
