// Package bigint implements Int, an exact signed integer of bounded but large
// precision.
//
// An Int stores its magnitude as base-1000 digits, least significant first,
// with the sign kept separately. The value zero always has a single zero digit
// and a non-negative sign; every operation restores that form before it
// returns.
//
// # Precision ceiling
//
// Results are limited to MaxDigits decimal digits, measured as the number of
// base-1000 digits times three. Add, Sub, Mul and Parse return ErrOverflow
// instead of a truncated value when a result would exceed it.
//
// # Division
//
// Quo truncates toward zero. Rem returns |x| - |y|*(|x|/|y|) carrying the sign
// of the dividend, so (x/y)*y + x%y == x for every non-zero y. Each quotient
// digit is found by binary search over [0, 1000).
//
// Int is an immutable value: arithmetic methods return new values and never
// write into their operands. The *Assign, Inc and Dec methods replace the
// receiver in place.
package bigint
