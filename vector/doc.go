// Package vector provides Vector, an owning, growable, contiguous sequence.
//
// A Vector owns a buffer of Cap() slots of which the first Len() are live.
// Appending to a full vector reallocates to max(1, 2*Cap()) slots. Every
// operation that reallocates or constructs elements builds its result in a
// fresh buffer first and only swaps it in once construction has succeeded, so
// a failing (or panicking) element constructor leaves the vector exactly as
// it was before the call.
//
// # Checked and unchecked access
//
// Index and Set skip the size check and are the fast path; reading past Len()
// but within Cap() returns a stale zero value, reading past Cap() panics. At
// and SetAt validate against Len() and return ErrOutOfRange.
//
// # Copying
//
// Assigning a Vector value copies the header, not the buffer. Use Clone for an
// independent copy and Move to transfer the buffer out, leaving the source
// empty.
//
// A Vector is not safe for concurrent use.
package vector
