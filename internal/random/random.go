// Package random draws game outcomes from crypto/rand.
package random

import (
	"crypto/rand"
	"math/big"
)

// Intn returns a uniform int in [0, n)
type Intn func(n int) (int, error)

// Secure is an Intn backed by crypto/rand
func Secure(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// PickWeighted selects an index by weight. Non-positive weights are never picked.
// It returns -1 when no weight is positive.
func PickWeighted(intn Intn, weights []int64) (int, error) {
	var total int64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1, nil
	}

	v, err := intn(int(total))
	if err != nil {
		return -1, err
	}

	var cum int64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if int64(v) < cum {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// Chance reports true with probability p, resolved to 1/10000
func Chance(intn Intn, p float64) (bool, error) {
	const scale = 10000
	v, err := intn(scale)
	if err != nil {
		return false, err
	}
	return float64(v) < p*scale, nil
}
