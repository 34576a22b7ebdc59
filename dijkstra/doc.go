// Package dijkstra provides a precise, allocation-lean implementation of
// Dijkstra's shortest-path algorithm over a static directed graph with
// non-negative arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from any number of source
//     vertices to every reachable vertex in O((V + E) log V) time.
//   - It relies on an updatable d-ary heap to always expand the
//     next-closest unsettled vertex.
//   - Supports optional predecessor-vertex tracking, predecessor-arc
//     tracking, and a materialized settled-distance map.
//
// When to use:
//
//   - Any scenario needing guaranteed shortest distances on a static
//     non-negatively weighted digraph.
//   - As a building block for bidirectional search (see package bidijkstra)
//     or multi-criteria search (see package semiring's Lexicographic).
//   - As a streaming source of settled vertices in increasing distance
//     order, via Entries or repeated NextEntry calls, when a caller wants
//     to stop early once some condition is met.
//
// Key features:
//
//   - Functional options select which bookkeeping maps are allocated,
//     without changing the constructor signature.
//   - WithPredecessorVertices / WithPredecessorArcs: enable path
//     reconstruction by vertex or by arc.
//   - WithDistances: materializes a vertex -> distance map in addition to
//     the values NextEntry already returns as it settles each vertex.
//   - Reset reuses the engine's allocations across repeated runs against
//     the same graph.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V).
//   - Each vertex is popped from the heap at most once.
//   - Each arc relaxation does at most one push or one promote.
//   - Space: O(V) for status and the optional bookkeeping maps, plus the
//     heap's own O(V) buffer.
//
// Error handling:
//
//   - All failure modes are precondition violations, signaled via panic
//     with a *ContractError: adding a source already in the heap, popping
//     an empty queue, or reading an accessor whose backing map was never
//     requested through an Option.
//   - An unreachable vertex is not an error: Dijkstra simply never settles
//     it.
//
// Thread safety:
//
//   - A Dijkstra value is not safe for concurrent use. Two engines may run
//     concurrently over the same graph.Digraph and graph.ArcMap as long as
//     neither mutates them, since both are read-only borrows.
//
// See also:
//
//   - graph.Digraph and graph.ArcMap: the capability interfaces this
//     package is written against.
//   - package bidijkstra: point-to-point search via two cooperating
//     Dijkstra-style half-searches.
package dijkstra
