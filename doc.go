// Package melon collects a small set of shortest-path engines (single-source
// and point-to-point) built on a static, compressed-sparse-row directed graph.
//
// Subpackages:
//
//	graph/         - the Digraph interface, vertex/arc maps, and vertex status
//	graph/csr/     - the compressed-sparse-row Digraph implementation and its Builder
//	semiring/      - the Semiring abstraction shortest-path distances are computed over
//	container/dheap/ - the updatable d-ary heap backing both search engines
//	dijkstra/      - single-source Dijkstra over a Digraph and a Semiring
//	bidijkstra/    - meeting-in-the-middle bidirectional Dijkstra
//	graphgen/      - deterministic synthetic graph generators for tests and benchmarks
//
// None of these packages mutate a graph once built: every search assumes the
// Digraph it searches stays fixed for the lifetime of the search.
package melon
