package array

import (
	"golang.org/x/exp/constraints"

	"github.com/comalice/stlx/internal/primitives"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool { return primitives.Equal(a.elems, b.elems) }

// Compare orders a and b lexicographically.
func Compare[T constraints.Ordered](a, b *Array[T]) int {
	return primitives.Compare(a.elems, b.elems)
}
