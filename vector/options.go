package vector

// Option configures a Vector at construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity reserves room for n elements up front.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}
