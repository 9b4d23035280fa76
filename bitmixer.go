package automaton

import "github.com/bits-and-blooms/bitset"

// Final mixing step of 32-bit MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// Order independent hash of the set bits: the count plus the mixed value of every member. Equal sets
// always hash the same regardless of how they were built.
func hashBits(bits *bitset.BitSet) uint64 {
	h := uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		h += uint64(mix32(int(i)))
	}
	return h
}
