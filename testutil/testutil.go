// Package testutil provides fault injection and lifetime tracking helpers
// shared by the container test suites.
package testutil

import (
	"errors"
	"fmt"
)

// ErrInjected is returned by constructors built with FailAt.
var ErrInjected = errors.New("testutil: injected construction failure")

// FailAt returns an element constructor that produces mk(i) for every index
// except fail, where it returns ErrInjected.
func FailAt[T any](fail int, mk func(i int) T) func(int) (T, error) {
	return func(i int) (T, error) {
		if i == fail {
			var zero T
			return zero, fmt.Errorf("index %d: %w", i, ErrInjected)
		}
		return mk(i), nil
	}
}

// PanicAt is like FailAt but panics instead of returning an error.
func PanicAt[T any](fail int, mk func(i int) T) func(int) (T, error) {
	return func(i int) (T, error) {
		if i == fail {
			panic(fmt.Sprintf("testutil: injected panic at index %d", i))
		}
		return mk(i), nil
	}
}

// Recovered runs fn and returns the value it panicked with, or nil.
func Recovered(fn func()) (r any) {
	defer func() { r = recover() }()
	fn()
	return nil
}
