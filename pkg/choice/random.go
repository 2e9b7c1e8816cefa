package choice

import (
	"crypto/rand"
	"math/big"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// RandomIndex draws a uniform index from the system's cryptographic source.
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	return int(v.Int64())
}

// Pick returns a uniformly chosen element of list using pick, or false when
// the list is empty. A nil pick uses RandomIndex.
func Pick[T any](list []T, pick Picker) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	if pick == nil {
		pick = RandomIndex
	}
	i := pick(len(list))
	if i < 0 || i >= len(list) {
		i = 0
	}
	return list[i], true
}
