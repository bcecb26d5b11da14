package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/comalice/stlx/internal/primitives"
)

// Equal reports whether a and b hold equal live elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return primitives.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return primitives.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically over their live elements.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return primitives.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return primitives.CompareFunc(a.Data(), b.Data(), cmp)
}

// Less reports whether a sorts before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
