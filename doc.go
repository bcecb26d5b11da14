// Package stlx is a collection of generic containers and owning pointers:
//
//   - array: fixed-length sequences with checked and unchecked access
//   - vector: growable sequences whose failed growth leaves them unchanged
//   - bigint: signed base-1000 integers with a bounded decimal precision
//   - hashset: separately chained hash containers
//   - ptr: reference-counted Shared/Weak pointers and a sole-owner Unique
//
// The bigcalc command under cmd/ is a reverse-Polish calculator built on
// these packages.
package stlx

// Version is the library version.
const Version = "0.3.0"
