package primitives

import "fmt"

// CheckIndex reports whether i addresses a live slot of a sequence of length n.
// On failure the returned error wraps sentinel so callers can match it with errors.Is.
func CheckIndex(sentinel error, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, size %d", sentinel, i, n)
	}
	return nil
}

// GrowCapacity returns the capacity a buffer of capacity old must grow to in
// order to hold need elements: max(1, 2*old), doubled again until it fits.
func GrowCapacity(old, need int) int {
	c := old
	if c == 0 {
		c = 1
	}
	for c < need {
		c *= 2
	}
	return c
}
