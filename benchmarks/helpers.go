// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/stlx/bigint"
	"github.com/comalice/stlx/hashset"
	"github.com/comalice/stlx/vector"
)

// GenInts returns n pseudo-random ints from a fixed seed.
func GenInts(n int) []int {
	r := rand.New(rand.NewPCG(1, uint64(n)))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Int()
	}
	return out
}

// GenKeys returns n distinct string keys.
func GenKeys(n int) []string {
	out := make([]string, n)
	for i, v := range GenInts(n) {
		out[i] = strings.Repeat("k", 1+i%4) + string(rune('a'+v%26)) + strconv.Itoa(i)
	}
	return out
}

// GenDecimal returns a decimal string of exactly digits digits.
func GenDecimal(digits int) string {
	r := rand.New(rand.NewPCG(2, uint64(digits)))
	var b strings.Builder
	b.Grow(digits)
	b.WriteByte(byte('1' + r.IntN(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return b.String()
}

// GenBigInt parses GenDecimal(digits).
func GenBigInt(digits int) bigint.Int {
	return bigint.MustParse(GenDecimal(digits))
}

// GenVectorYAML returns the YAML encoding of a vector holding GenInts(n).
func GenVectorYAML(n int) []byte {
	data, err := yaml.Marshal(vector.Of(GenInts(n)...))
	if err != nil {
		panic(err)
	}
	return data
}

// GenSet returns a set built from GenKeys(n).
func GenSet(n int) *hashset.Set[string] {
	return hashset.Of(GenKeys(n)...)
}
