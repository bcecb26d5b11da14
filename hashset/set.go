package hashset

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set is a bucketed hash container of K. The zero value is an empty set with
// no buckets that uses DefaultHasher.
type Set[K comparable] struct {
	buckets [][]K
	size    int
	hash    Hasher[K]
}

// New returns an empty set.
func New[K comparable](opts ...Option[K]) *Set[K] {
	s := &Set[K]{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Of returns a set built by inserting keys in order.
func Of[K comparable](keys ...K) *Set[K] {
	s := New[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

func (s *Set[K]) hasher() Hasher[K] {
	if s.hash == nil {
		s.hash = DefaultHasher[K]()
	}
	return s.hash
}

// Len returns the number of stored keys, duplicates included.
func (s *Set[K]) Len() int { return s.size }

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool { return s.size == 0 }

// Insert stores k. An equal key already present is not replaced; both are kept.
func (s *Set[K]) Insert(k K) {
	if len(s.buckets) == 0 {
		s.buckets = make([][]K, 1)
	} else if s.LoadFactor() >= 1 {
		s.Rehash(2 * len(s.buckets))
	}
	i := s.Bucket(k)
	s.buckets[i] = append(s.buckets[i], k)
	s.size++
}

// InsertUnique stores k unless an equal key is present and reports whether it
// was stored.
func (s *Set[K]) InsertUnique(k K) bool {
	if s.Find(k) {
		return false
	}
	s.Insert(k)
	return true
}

// Erase removes one occurrence of k and reports whether one was found.
func (s *Set[K]) Erase(k K) bool {
	if s.size == 0 {
		return false
	}
	i := s.Bucket(k)
	j := slices.Index(s.buckets[i], k)
	if j < 0 {
		return false
	}
	s.buckets[i] = slices.Delete(s.buckets[i], j, j+1)
	s.size--
	return true
}

// Find reports whether a key equal to k is stored.
func (s *Set[K]) Find(k K) bool {
	if s.size == 0 {
		return false
	}
	return slices.Contains(s.buckets[s.Bucket(k)], k)
}

// Count returns the number of stored keys equal to k.
func (s *Set[K]) Count(k K) int {
	if s.size == 0 {
		return 0
	}
	n := 0
	for _, e := range s.buckets[s.Bucket(k)] {
		if e == k {
			n++
		}
	}
	return n
}

// Rehash redistributes every key over n fresh buckets. It does nothing when n
// equals BucketCount() or when n buckets would push the load factor above 1.
func (s *Set[K]) Rehash(n int) {
	if n == len(s.buckets) || n < 0 || s.size > n {
		return
	}
	if n == 0 {
		s.buckets = nil
		return
	}
	h := s.hasher()
	buckets := make([][]K, n)
	for i, b := range s.buckets {
		for _, k := range b {
			j := h(k) % uint64(n)
			buckets[j] = append(buckets[j], k)
		}
		s.buckets[i] = nil
	}
	s.buckets = buckets
}

// Reserve rehashes to n buckets if n exceeds BucketCount().
func (s *Set[K]) Reserve(n int) {
	if n <= len(s.buckets) {
		return
	}
	s.Rehash(n)
}

// Bucket returns the index of the bucket k maps to. It panics if the set has
// no buckets.
func (s *Set[K]) Bucket(k K) int {
	if len(s.buckets) == 0 {
		panic("hashset: Bucket on a set with no buckets")
	}
	return int(s.hasher()(k) % uint64(len(s.buckets)))
}

// BucketCount returns the number of buckets.
func (s *Set[K]) BucketCount() int { return len(s.buckets) }

// BucketSize returns the number of keys in bucket id, or 0 if id is out of range.
func (s *Set[K]) BucketSize(id int) int {
	if id < 0 || id >= len(s.buckets) {
		return 0
	}
	return len(s.buckets[id])
}

// LoadFactor returns Len()/BucketCount(), or 0 when there are no buckets.
func (s *Set[K]) LoadFactor() float64 {
	if len(s.buckets) == 0 {
		return 0
	}
	return float64(s.size) / float64(len(s.buckets))
}

// Clear removes every key and releases the buckets.
func (s *Set[K]) Clear() {
	s.buckets = nil
	s.size = 0
}

// Clone returns an independent copy with the same bucket layout and hasher.
func (s *Set[K]) Clone() *Set[K] {
	c := &Set[K]{size: s.size, hash: s.hash}
	if s.buckets != nil {
		c.buckets = make([][]K, len(s.buckets))
		for i, b := range s.buckets {
			c.buckets[i] = slices.Clone(b)
		}
	}
	return c
}

// Move transfers the contents to a new set and leaves s empty with no buckets.
func (s *Set[K]) Move() *Set[K] {
	m := &Set[K]{buckets: s.buckets, size: s.size, hash: s.hash}
	s.buckets = nil
	s.size = 0
	return m
}

// All yields every stored key, bucket by bucket.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, b := range s.buckets {
			for _, k := range b {
				if !yield(k) {
					return
				}
			}
		}
	}
}

// Keys returns the stored keys in iteration order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, k)
	}
	b.WriteByte('}')
	return b.String()
}
