// Package primitives provides the small shared helpers used by the container
// packages: index validation, lexicographic comparison and growth arithmetic.
//
// This package carries no state. Every helper is a pure function over its
// arguments so the public containers can share one definition of "in range"
// and one definition of "less than".
//
// Core invariants:
// - An index i is valid for a length n iff 0 <= i < n
// - Lexicographic order compares the common prefix first, then length
// - Geometric growth never returns a capacity below the requested minimum
package primitives
