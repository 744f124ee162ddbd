package core

import (
	"hash/fnv"
	"math"
)

// hashMix is the golden-ratio constant used to combine hashes.
const hashMix = 0x9e3779b9

// HashCombine folds h into seed with an order-sensitive mix, so that
// combining the same hashes in a different order yields a different seed.
func HashCombine(seed, h uint64) uint64 {
	return seed ^ (h + hashMix + (seed << 6) + (seed >> 2))
}

// HashString hashes s with FNV-1a.
func HashString(s string) uint64 {
	f := fnv.New64a()
	f.Write([]byte(s))
	return f.Sum64()
}

// HashUint spreads a small integer (enum tag, size) over 64 bits.
func HashUint(v uint64) uint64 {
	return v * 0x9e3779b97f4a7c15
}

// HashFloat hashes the bit pattern of v. +0 and -0 hash alike so that
// equal coefficients always hash alike.
func HashFloat(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return HashUint(math.Float64bits(v))
}
