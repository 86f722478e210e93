// Package keccak implements the Keccak-p[b, nr] permutation family:
// the five round mappings theta, rho, pi, chi and iota, applied over
// either a literal 5x5xw bit array or an optimized 25-lane uint64
// state. Both representations must agree bit-for-bit; see
// bitstate.go and lanestate.go.
package keccak

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/keccakerr"
)

// Params describes one instance of the Keccak-p[b, nr] family.
type Params struct {
	B  int // permutation width in bits: 25, 50, 100, 200, 400, 800 or 1600
	W  int // lane size in bits, b/25
	L  int // log2(w)
	NR int // number of rounds
}

// allowedWidths maps a permutation width b to its lane-log l = log2(b/25).
var allowedWidths = map[int]int{
	25:   0,
	50:   1,
	100:  2,
	200:  3,
	400:  4,
	800:  5,
	1600: 6,
}

// DefaultRounds returns 12 + 2l, the round count of the original
// Keccak-f[b] permutation (24 when b == 1600).
func DefaultRounds(b int) (int, error) {
	l, ok := allowedWidths[b]
	if !ok {
		return 0, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("keccak: width %d is not one of the permitted Keccak-p widths", b))
	}
	return 12 + 2*l, nil
}

// NewParams validates b and nr and derives w and l.
//
// b must be one of {25, 50, 100, 200, 400, 800, 1600}; nr must be
// positive. The core does not require nr == DefaultRounds(b) — any
// positive round count is a valid Keccak-p[b, nr] instance — but
// FIPS 202 only ever instantiates Keccak-p[1600, 24].
func NewParams(b, nr int) (Params, error) {
	l, ok := allowedWidths[b]
	if !ok {
		return Params{}, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("keccak: width %d is not one of the permitted Keccak-p widths", b))
	}
	if nr <= 0 {
		return Params{}, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("keccak: round count %d must be positive", nr))
	}
	w := b / 25
	if bits.OnesCount(uint(w)) != 1 {
		// unreachable given allowedWidths, kept as a defensive invariant check
		return Params{}, keccakerr.New(keccakerr.InternalInvariantViolation, errors.Errorf("keccak: lane width %d is not a power of two", w))
	}
	return Params{B: b, W: w, L: l, NR: nr}, nil
}

// FIPS202 returns the Params for Keccak-p[1600, 24], the only
// permutation instance FIPS 202 uses.
func FIPS202() Params {
	p, err := NewParams(1600, 24)
	if err != nil {
		panic(err) // 1600 is always valid
	}
	return p
}
