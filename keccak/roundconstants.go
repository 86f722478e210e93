package keccak

// rc computes the bit rc(t) of FIPS 202 Algorithm 5, via the 8-bit LFSR
// defined there: R starts as 10000000; the loop prepends a zero bit,
// folds bit 8 into bits 0, 4, 5 and 6, then drops the trailing bit.
// rc(t) is bit 0 of R after t mod 255 iterations (1 when t mod 255 == 0).
func rc(t int) uint8 {
	if t%255 == 0 {
		return 1
	}
	var r [8]uint8
	r[0] = 1 // R = 10000000
	for i := 0; i < t%255; i++ {
		// prepend a 0 bit (R9[0]=0, R9[1..8]=R[0..7]), fold R9[8] into
		// taps 0, 4, 5, 6, then drop the trailing (R9[8]) bit.
		out := r[7]
		var next [8]uint8
		next[0] = 0 ^ out
		next[1] = r[0]
		next[2] = r[1]
		next[3] = r[2]
		next[4] = r[3] ^ out
		next[5] = r[4] ^ out
		next[6] = r[5] ^ out
		next[7] = r[6]
		r = next
	}
	return r[0]
}

// roundConstant derives RC for round index iR of a permutation with
// lane-log l, per FIPS 202 Algorithm 6: for j = 0..l, bit 2^j-1 of the
// w-bit lane RC is rc(j + 7*iR). The result is returned as a uint64
// with only the low w = 2^l bits meaningful; callers mask as needed.
func roundConstant(l, iR int) uint64 {
	var lane uint64
	for j := 0; j <= l; j++ {
		if rc(j+7*iR) == 1 {
			lane |= 1 << uint((1<<uint(j))-1)
		}
	}
	return lane
}

// roundConstants64 hardcodes RC for Keccak-p[1600, *] (l=6, w=64), the
// only width FIPS 202 requires; it matches roundConstant(6, i) for
// i = 0..23 and is the production fast path. Backend-equivalence tests
// assert the two agree for all 24 rounds.
var roundConstants64 = [24]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// roundConstant64 returns the round constant for round iR of a
// Keccak-p[1600, *] permutation, preferring the hardcoded table and
// falling back to the generic LFSR derivation for round indices beyond
// it (so Params with NR > 24 still works, just without the cache).
func roundConstant64(iR int) uint64 {
	if iR >= 0 && iR < len(roundConstants64) {
		return roundConstants64[iR]
	}
	return roundConstant(6, iR)
}

// roundConstantFor returns the RC lane for round iR of a permutation
// with the given lane-log l, preferring the w=64 cache when l == 6.
func roundConstantFor(l, iR int) uint64 {
	if l == 6 {
		return roundConstant64(iR)
	}
	return roundConstant(l, iR)
}
