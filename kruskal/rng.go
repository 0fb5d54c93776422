package kruskal

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer). Batch drivers use it to give every episode an
// independent, reproducible maze from one base seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// popRandom removes and returns a uniformly random element of *list in O(1)
// by swapping it with the last element.
func popRandom(list *[]wall, r *rand.Rand) wall {
	s := *list
	i := r.Intn(len(s))
	w := s[i]
	last := len(s) - 1
	s[i] = s[last]
	*list = s[:last]
	return w
}
