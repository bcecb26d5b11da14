package primitives

import "golang.org/x/exp/constraints"

// Compare orders a and b lexicographically. It returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b []T) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller supplied element comparison.
func CompareFunc[T any](a, b []T, cmp func(T, T) int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller supplied element equality.
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
