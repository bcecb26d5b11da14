package ptr

// Weak observes a Shared pointee without keeping it alive. The zero value is
// empty and expired.
type Weak[T any] struct {
	c *control[T]
}

// NewWeak returns a weak handle to v with no owner. It is expired from the
// start and never destroys v.
func NewWeak[T any](v *T) *Weak[T] {
	if v == nil {
		return &Weak[T]{}
	}
	return &Weak[T]{c: newControl[T](v, 0, 1, nil)}
}

// UseCount returns the number of Shared handles to the pointee.
func (w *Weak[T]) UseCount() int {
	if w.c == nil {
		return 0
	}
	return w.c.strong
}

// IsExpired reports whether the pointee has been destroyed or never had an owner.
func (w *Weak[T]) IsExpired() bool {
	return w.c == nil || w.c.strong == 0
}

// Lock returns a new Shared handle to the pointee, or an empty one if w has expired.
func (w *Weak[T]) Lock() *Shared[T] {
	if w.IsExpired() {
		return &Shared[T]{}
	}
	w.c.strong++
	return &Shared[T]{c: w.c}
}

// Upgrade is like Lock but returns ErrBadWeakPtr if w has expired.
func (w *Weak[T]) Upgrade() (*Shared[T], error) {
	if w.IsExpired() {
		return nil, ErrBadWeakPtr
	}
	return w.Lock(), nil
}

// Clone returns another weak handle to the same pointee.
func (w *Weak[T]) Clone() *Weak[T] {
	if w.c != nil {
		w.c.weak++
	}
	return &Weak[T]{c: w.c}
}

// Move returns a handle that takes over w's reference and leaves w empty.
func (w *Weak[T]) Move() *Weak[T] {
	m := &Weak[T]{c: w.c}
	w.c = nil
	return m
}

// Assign releases w's reference and makes w another weak handle to other's pointee.
func (w *Weak[T]) Assign(other *Weak[T]) {
	if w == other {
		return
	}
	if other.c != nil {
		other.c.weak++
	}
	w.Release()
	w.c = other.c
}

// Reset releases w's reference and observes v under a fresh control block
// with no owner. A nil v leaves w empty.
func (w *Weak[T]) Reset(v *T) {
	w.Release()
	if v != nil {
		w.c = newControl[T](v, 0, 1, nil)
	}
}

// Release drops w's reference and leaves w empty.
func (w *Weak[T]) Release() {
	if w.c == nil {
		return
	}
	w.c.releaseWeak()
	if w.c.dead() {
		w.c.ptr = nil
	}
	w.c = nil
}
