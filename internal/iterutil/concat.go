// Package iterutil holds small range-over-func helpers shared by the
// search engines in this module.
package iterutil

import "iter"

// Concat yields every element of seqs[0], then seqs[1], and so on,
// stopping immediately once the consumer breaks out of the range loop.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
