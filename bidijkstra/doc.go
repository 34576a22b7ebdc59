// See bidijkstra.go for the engine; types.go for its functional options.
//
// Complexity: O((V + E) log V), the same bound as a single Dijkstra pass,
// since each half settles a subset of the vertices a plain Dijkstra from s
// would have settled, and vertices are never settled twice within a half.
package bidijkstra
