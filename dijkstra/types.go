package dijkstra

// Options holds the runtime configuration toggled by functional options.
// The zero value collects nothing beyond what NextEntry itself returns. Any
// option left unset leaves its backing map nil; calling the corresponding
// accessor then panics rather than silently returning a zero value, since a
// nil map means the caller asked for data that was never collected.
type Options struct {
	StorePredVertices bool
	StorePredArcs     bool
	StoreDistances    bool
}

// Option configures a Dijkstra engine at construction time.
type Option func(*Options)

// WithPredecessorVertices enables predecessor-vertex tracking.
func WithPredecessorVertices() Option {
	return func(o *Options) { o.StorePredVertices = true }
}

// WithPredecessorArcs enables predecessor-arc tracking.
func WithPredecessorArcs() Option {
	return func(o *Options) { o.StorePredArcs = true }
}

// WithDistances enables the settled-distance map.
func WithDistances() Option {
	return func(o *Options) { o.StoreDistances = true }
}
