package ptr

// Unique is the sole owner of a pointee. The zero value is empty.
type Unique[T any] struct {
	ptr     *T
	deleter func(*T)
}

// NewUnique takes sole ownership of v.
func NewUnique[T any](v *T, opts ...Option[T]) *Unique[T] {
	c := newControl(v, 0, 0, opts)
	return &Unique[T]{ptr: v, deleter: c.deleter}
}

// Get returns the pointee, or nil.
func (u *Unique[T]) Get() *T { return u.ptr }

// Valid reports whether u owns a value.
func (u *Unique[T]) Valid() bool { return u.ptr != nil }

// Release gives up ownership without destroying the pointee and returns it.
func (u *Unique[T]) Release() *T {
	v := u.ptr
	u.ptr = nil
	return v
}

// Reset destroys the current pointee, if any, and takes ownership of v.
// Reset(nil) destroys the pointee and leaves u empty.
func (u *Unique[T]) Reset(v *T) {
	old := u.ptr
	u.ptr = v
	if old != nil && old != v {
		u.destroy(old)
	}
}

// Swap exchanges the pointees of u and other.
func (u *Unique[T]) Swap(other *Unique[T]) {
	u.ptr, other.ptr = other.ptr, u.ptr
	u.deleter, other.deleter = other.deleter, u.deleter
}

// Move transfers ownership to a new handle and leaves u empty.
func (u *Unique[T]) Move() *Unique[T] {
	m := &Unique[T]{ptr: u.ptr, deleter: u.deleter}
	u.ptr = nil
	return m
}

func (u *Unique[T]) destroy(v *T) {
	if u.deleter == nil {
		closeDeleter(v)
		return
	}
	u.deleter(v)
}
