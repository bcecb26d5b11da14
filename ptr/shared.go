package ptr

import "fmt"

// Shared is a counted owning handle. The zero value is empty.
type Shared[T any] struct {
	c *control[T]
}

// New takes ownership of v. A nil v yields an empty handle.
func New[T any](v *T, opts ...Option[T]) *Shared[T] {
	if v == nil {
		return &Shared[T]{}
	}
	return &Shared[T]{c: newControl(v, 1, 0, opts)}
}

// Make allocates a copy of v and returns the only handle to it.
func Make[T any](v T, opts ...Option[T]) *Shared[T] {
	return New(&v, opts...)
}

// Get returns the pointee, or nil if p is empty or released.
func (p *Shared[T]) Get() *T {
	if p.c == nil {
		return nil
	}
	return p.c.ptr
}

// Valid reports whether p points at a live value.
func (p *Shared[T]) Valid() bool { return p.Get() != nil }

// UseCount returns the number of Shared handles to the pointee.
func (p *Shared[T]) UseCount() int {
	if p.c == nil {
		return 0
	}
	return p.c.strong
}

// Clone returns another handle to the same pointee.
func (p *Shared[T]) Clone() *Shared[T] {
	if p.c != nil {
		p.c.strong++
	}
	return &Shared[T]{c: p.c}
}

// Move returns a handle that takes over p's reference and leaves p empty.
// The counts are not touched.
func (p *Shared[T]) Move() *Shared[T] {
	m := &Shared[T]{c: p.c}
	p.c = nil
	return m
}

// Assign releases p's reference and makes p another handle to other's pointee.
func (p *Shared[T]) Assign(other *Shared[T]) {
	if p == other {
		return
	}
	if other.c != nil {
		other.c.strong++
	}
	p.Release()
	p.c = other.c
}

// MoveFrom releases p's reference and takes over other's, leaving other empty.
func (p *Shared[T]) MoveFrom(other *Shared[T]) {
	if p == other {
		return
	}
	p.Release()
	p.c = other.c
	other.c = nil
}

// Reset releases p's reference and takes ownership of v under a fresh
// control block. A nil v leaves p empty.
func (p *Shared[T]) Reset(v *T, opts ...Option[T]) {
	p.Release()
	if v != nil {
		p.c = newControl(v, 1, 0, opts)
	}
}

// Swap exchanges the references held by p and other.
func (p *Shared[T]) Swap(other *Shared[T]) {
	p.c, other.c = other.c, p.c
}

// Release drops p's reference and leaves p empty. Releasing the last Shared
// handle runs the deleter. Releasing an empty handle does nothing.
func (p *Shared[T]) Release() {
	if p.c == nil {
		return
	}
	p.c.releaseStrong()
	p.c = nil
}

// Weak returns a non-owning handle to p's pointee.
func (p *Shared[T]) Weak() *Weak[T] {
	if p.c != nil {
		p.c.weak++
	}
	return &Weak[T]{c: p.c}
}

func (p *Shared[T]) String() string {
	if v := p.Get(); v != nil {
		return fmt.Sprintf("Shared(%v, use=%d)", *v, p.c.strong)
	}
	return "Shared(nil)"
}
