package ptr

import (
	"errors"
	"io"
)

// ErrBadWeakPtr is returned when promoting an expired Weak.
var ErrBadWeakPtr = errors.New("ptr: bad weak pointer")

// control is the record shared by every Shared and Weak handle of one pointee.
type control[T any] struct {
	ptr     *T
	strong  int
	weak    int
	deleter func(*T)
}

func newControl[T any](v *T, strong, weak int, opts []Option[T]) *control[T] {
	c := &control[T]{ptr: v, strong: strong, weak: weak, deleter: closeDeleter[T]}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// releaseStrong drops one strong count and destroys the pointee on the last one.
func (c *control[T]) releaseStrong() {
	if c.strong == 0 {
		return
	}
	c.strong--
	if c.strong == 0 {
		v := c.ptr
		c.ptr = nil
		c.deleter(v)
	}
}

func (c *control[T]) releaseWeak() {
	if c.weak > 0 {
		c.weak--
	}
}

// dead reports whether no handle refers to the record any more.
func (c *control[T]) dead() bool { return c.strong == 0 && c.weak == 0 }

func closeDeleter[T any](v *T) {
	if v == nil {
		return
	}
	if cl, ok := any(v).(io.Closer); ok {
		_ = cl.Close()
		return
	}
	if cl, ok := any(*v).(io.Closer); ok {
		_ = cl.Close()
	}
}
