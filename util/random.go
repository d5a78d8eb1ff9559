package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomString generates a random lowercase string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return sb.String()
}

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}
