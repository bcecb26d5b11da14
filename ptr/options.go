package ptr

// Option configures the control block of a new Shared.
type Option[T any] func(*control[T])

// WithDeleter sets the function that destroys the pointee. It runs once, when
// the last Shared handle is released.
func WithDeleter[T any](fn func(*T)) Option[T] {
	return func(c *control[T]) {
		if fn != nil {
			c.deleter = fn
		}
	}
}
