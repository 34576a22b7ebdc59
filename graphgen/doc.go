// Package graphgen builds ready-to-search graph.Digraph instances (plus
// their arc-weight maps) for common topologies, for tests, benchmarks, and
// examples that need a graph without hand-assembling one arc at a time.
//
// Every constructor returns a *csr.Digraph built through a csr.Builder, so
// the result is immediately usable by dijkstra.New, and by bidijkstra.New
// when it was built WithReverseAdjacency.
// Constructors never panic on bad input; they report sentinel errors, the
// same policy the search engines use the opposite way (panics for contract
// violations, since graphgen's inputs come from a caller assembling a
// graph from ordinary parameters, not from another part of this module).
package graphgen
