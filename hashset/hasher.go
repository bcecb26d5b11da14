package hashset

import (
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to its hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

var seed = maphash.MakeSeed()

// DefaultHasher returns the hasher a Set uses when none is configured.
// Integers hash to their own value, strings through xxhash, and every other
// comparable type through hash/maphash with a per-process seed.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(k K) uint64 {
		switch v := any(k).(type) {
		case int:
			return uint64(v)
		case int8:
			return uint64(v)
		case int16:
			return uint64(v)
		case int32:
			return uint64(v)
		case int64:
			return uint64(v)
		case uint:
			return uint64(v)
		case uint8:
			return uint64(v)
		case uint16:
			return uint64(v)
		case uint32:
			return uint64(v)
		case uint64:
			return v
		case uintptr:
			return uint64(v)
		case string:
			return xxhash.Sum64String(v)
		case float64:
			return floatHash(v)
		case float32:
			return floatHash(float64(v))
		}
		return maphash.Comparable(seed, k)
	}
}

func floatHash(f float64) uint64 {
	if f == 0 {
		return 0 // +0 and -0 compare equal
	}
	return math.Float64bits(f)
}
