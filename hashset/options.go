package hashset

// Option configures a Set at construction.
type Option[K comparable] func(*Set[K])

// WithHasher replaces the default hasher.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(s *Set[K]) {
		s.hash = h
	}
}

// WithBucketCount pre-allocates n empty buckets.
func WithBucketCount[K comparable](n int) Option[K] {
	return func(s *Set[K]) {
		if n > 0 {
			s.buckets = make([][]K, n)
		}
	}
}
