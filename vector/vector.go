package vector

import (
	"errors"
	"fmt"
	"iter"

	"github.com/comalice/stlx/internal/primitives"
)

// ErrOutOfRange is returned by checked accessors for an index outside [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a growable sequence of T. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	buf  []T // len(buf) is the capacity
	size int
}

// New returns an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	v := &Vector[T]{}
	if c.capacity > 0 {
		v.Reserve(c.capacity)
	}
	return v
}

// Make returns a vector of n zero values with capacity n.
func Make[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative length")
	}
	if n == 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{buf: make([]T, n), size: n}
}

// Filled returns a vector of n copies of val with capacity n.
func Filled[T any](n int, val T) *Vector[T] {
	v := Make[T](n)
	for i := range v.buf {
		v.buf[i] = val
	}
	return v
}

// Of returns a vector holding a copy of vals with capacity len(vals).
func Of[T any](vals ...T) *Vector[T] {
	if len(vals) == 0 {
		return &Vector[T]{}
	}
	buf := make([]T, len(vals))
	copy(buf, vals)
	return &Vector[T]{buf: buf, size: len(buf)}
}

// FromFunc builds a vector of n elements, element i produced by ctor(i).
// If any call fails the result is an empty vector together with the error.
func FromFunc[T any](n int, ctor func(i int) (T, error)) (*Vector[T], error) {
	buf, err := construct(0, n, ctor)
	if err != nil {
		return &Vector[T]{}, err
	}
	if len(buf) == 0 {
		return &Vector[T]{}, nil
	}
	return &Vector[T]{buf: buf, size: len(buf)}, nil
}

// construct produces elements [from, to) into a new slice of length to-from.
// Nothing outside the returned slice is touched.
func construct[T any](from, to int, ctor func(i int) (T, error)) ([]T, error) {
	if to < from {
		panic("vector: negative length")
	}
	out := make([]T, to-from)
	for i := range out {
		val, err := ctor(from + i)
		if err != nil {
			return nil, fmt.Errorf("construct element %d: %w", from+i, err)
		}
		out[i] = val
	}
	return out, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Index returns element i without checking it against Len().
func (v *Vector[T]) Index(i int) T { return v.buf[i] }

// Set stores val at i without checking i against Len().
func (v *Vector[T]) Set(i int, val T) { v.buf[i] = val }

// At returns element i, or ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := primitives.CheckIndex(ErrOutOfRange, i, v.size); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// SetAt stores val at i, or returns ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) SetAt(i int, val T) error {
	if err := primitives.CheckIndex(ErrOutOfRange, i, v.size); err != nil {
		return err
	}
	v.buf[i] = val
	return nil
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T { return v.buf[:v.size][0] }

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T { return v.buf[:v.size][v.size-1] }

// Data returns the live elements. The slice aliases the vector's buffer until
// the next reallocation; its capacity is clipped so appending to it never
// writes into the vector.
func (v *Vector[T]) Data() []T { return v.buf[:v.size:v.size] }

// PushBack appends val, doubling the capacity when the vector is full.
func (v *Vector[T]) PushBack(val T) {
	if v.size == len(v.buf) {
		v.realloc(primitives.GrowCapacity(len(v.buf), v.size+1))
	}
	v.buf[v.size] = val
	v.size++
}

// PopBack removes the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	var zero T
	v.buf[v.size] = zero
}

// Insert places val at position i, shifting later elements back. i may equal
// Len(). It returns ErrOutOfRange for any other i outside [0, Len()).
func (v *Vector[T]) Insert(i int, val T) error {
	if err := primitives.CheckIndex(ErrOutOfRange, i, v.size+1); err != nil {
		return err
	}
	if v.size == len(v.buf) {
		v.realloc(primitives.GrowCapacity(len(v.buf), v.size+1))
	}
	copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	v.buf[i] = val
	v.size++
	return nil
}

// Erase removes the element at i, shifting later elements forward.
func (v *Vector[T]) Erase(i int) error {
	if err := primitives.CheckIndex(ErrOutOfRange, i, v.size); err != nil {
		return err
	}
	copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	v.truncate(v.size - 1)
	return nil
}

// Reserve grows the capacity to at least n. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	v.realloc(n)
}

// Resize sets the length to n. New slots hold zero values; shrinking keeps the capacity.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeFill(n, zero)
}

// ResizeFill sets the length to n, filling new slots with val.
func (v *Vector[T]) ResizeFill(n int, val T) {
	// Copying a value cannot fail.
	_ = v.ResizeFunc(n, func(int) (T, error) { return val, nil })
}

// ResizeFunc sets the length to n, producing new element i with ctor(i).
// If ctor fails, the vector keeps its previous length, capacity and contents.
func (v *Vector[T]) ResizeFunc(n int, ctor func(i int) (T, error)) error {
	if n < 0 {
		panic("vector: negative length")
	}
	if n <= v.size {
		v.truncate(n)
		return nil
	}
	fresh, err := construct(v.size, n, ctor)
	if err != nil {
		return err
	}
	if n > len(v.buf) {
		buf := make([]T, n)
		copy(buf, v.buf[:v.size])
		copy(buf[v.size:], fresh)
		v.buf = buf
	} else {
		copy(v.buf[v.size:n], fresh)
	}
	v.size = n
	return nil
}

// ShrinkToFit reallocates the buffer to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.size {
		return
	}
	if v.size == 0 {
		v.buf = nil
		return
	}
	v.realloc(v.size)
}

// Clear removes every element and keeps the capacity.
func (v *Vector[T]) Clear() { v.truncate(0) }

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// Clone returns an independent copy with the same length and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	if len(v.buf) == 0 {
		return &Vector[T]{}
	}
	buf := make([]T, len(v.buf))
	copy(buf, v.buf[:v.size])
	return &Vector[T]{buf: buf, size: v.size}
}

// Move transfers the buffer to a new vector and leaves v empty with no buffer.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf, size: v.size}
	v.buf, v.size = nil, 0
	return out
}

// All iterates index/element pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates index/element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values iterates the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// realloc moves the live elements into a new buffer of capacity n >= Len().
// The old buffer is dropped only after the copy.
func (v *Vector[T]) realloc(n int) {
	buf := make([]T, n)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}

// truncate shortens the vector to n and zeroes the vacated slots.
func (v *Vector[T]) truncate(n int) {
	clear(v.buf[n:v.size])
	v.size = n
}
