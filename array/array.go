// Package array provides Array, a bounds-checked sequence whose length is
// fixed when it is created.
//
// Go has no length-parameterised generics, so the length is a construction
// argument rather than part of the type. Once built, an Array never grows,
// shrinks or reallocates; every element is live from construction onwards.
package array

import (
	"errors"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/comalice/stlx/internal/primitives"
)

var (
	// ErrOutOfRange is returned by checked accessors for an index outside [0, Len()).
	ErrOutOfRange = errors.New("array: index out of range")
	// ErrLengthMismatch is returned when two arrays, or an array and decoded
	// input, disagree on length.
	ErrLengthMismatch = errors.New("array: length mismatch")
)

// Array is a fixed-length sequence of T.
type Array[T any] struct {
	elems []T
}

// New returns an array of n zero values.
func New[T any](n int) *Array[T] {
	if n < 0 {
		panic("array: negative length")
	}
	return &Array[T]{elems: make([]T, n)}
}

// Of returns an array holding a copy of vals.
func Of[T any](vals ...T) *Array[T] {
	a := New[T](len(vals))
	copy(a.elems, vals)
	return a
}

// Len returns the fixed length.
func (a *Array[T]) Len() int { return len(a.elems) }

// Empty reports whether the array has length zero.
func (a *Array[T]) Empty() bool { return len(a.elems) == 0 }

// Index returns element i; an index outside [0, Len()) panics.
func (a *Array[T]) Index(i int) T { return a.elems[i] }

// Set stores val at i; an index outside [0, Len()) panics.
func (a *Array[T]) Set(i int, val T) { a.elems[i] = val }

// At returns element i, or ErrOutOfRange.
func (a *Array[T]) At(i int) (T, error) {
	if err := primitives.CheckIndex(ErrOutOfRange, i, len(a.elems)); err != nil {
		var zero T
		return zero, err
	}
	return a.elems[i], nil
}

// SetAt stores val at i, or returns ErrOutOfRange.
func (a *Array[T]) SetAt(i int, val T) error {
	if err := primitives.CheckIndex(ErrOutOfRange, i, len(a.elems)); err != nil {
		return err
	}
	a.elems[i] = val
	return nil
}

// Front returns the first element. It panics when Len() == 0.
func (a *Array[T]) Front() T { return a.elems[0] }

// Back returns the last element. It panics when Len() == 0.
func (a *Array[T]) Back() T { return a.elems[len(a.elems)-1] }

// Data returns the backing storage. Writes through it are visible in the
// array; its capacity is clipped so append cannot extend the array.
func (a *Array[T]) Data() []T { return a.elems[:len(a.elems):len(a.elems)] }

// Fill assigns val to every slot.
func (a *Array[T]) Fill(val T) {
	for i := range a.elems {
		a.elems[i] = val
	}
}

// Swap exchanges the contents of a and other element by element.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.elems) != len(other.elems) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a.elems), len(other.elems))
	}
	for i := range a.elems {
		a.elems[i], other.elems[i] = other.elems[i], a.elems[i]
	}
	return nil
}

// Clone returns an independent copy.
func (a *Array[T]) Clone() *Array[T] { return Of(a.elems...) }

// All iterates index/element pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) String() string { return fmt.Sprint(a.elems) }

// MarshalYAML encodes the elements as a YAML sequence.
func (a *Array[T]) MarshalYAML() (any, error) { return a.Data(), nil }

// UnmarshalYAML decodes a YAML sequence into the array. The sequence must have
// exactly Len() items; otherwise the array is left unchanged.
func (a *Array[T]) UnmarshalYAML(node *yaml.Node) error {
	var vals []T
	if err := node.Decode(&vals); err != nil {
		return err
	}
	if len(vals) != len(a.elems) {
		return fmt.Errorf("%w: decoded %d items into array of %d", ErrLengthMismatch, len(vals), len(a.elems))
	}
	copy(a.elems, vals)
	return nil
}
