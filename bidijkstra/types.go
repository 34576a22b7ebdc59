package bidijkstra

// Options holds the runtime configuration toggled by functional options.
// New starts from StorePath set to true, so by default predecessor arcs are
// stored in both directions and Path can reconstruct the s-t walk.
type Options struct {
	StorePath bool
}

// Option configures a BidirectionalDijkstra engine at construction time.
type Option func(*Options)

// WithoutPath disables predecessor tracking in both directions, so Path,
// PredArc and SuccArc panic. The meeting vertex is still recorded as Run
// improves mu, so PathFound keeps reporting whether an s-t path was found.
// Use it when only the distance Run returns is needed.
func WithoutPath() Option {
	return func(o *Options) { o.StorePath = false }
}
