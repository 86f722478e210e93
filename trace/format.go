// Package trace implements an optional intermediate-value tracer:
// after every sub-step of every round, and after every permutation,
// the full state can be emitted to a sink in either the NIST lane-hex
// format or a byte-major HEX format. Tracing is bypassable with zero
// cost on the hot path and never alters the digest a sponge computes —
// a Tracer receives the keccak.Permutation through Hook and only ever
// reads it via Bits(), never mutates it.
package trace

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/keccakerr"
)

// Format selects how a lane's bytes are rendered.
type Format int

const (
	// NISTFormat renders each lane as LSB-first hex bytes, matching
	// the NIST example-values documents (e.g. bits "0101 1100" -> "3A").
	NISTFormat Format = iota
	// ByteMajorFormat renders each lane as ordinary (MSB-first) hex
	// bytes (the same bits render as "5C").
	ByteMajorFormat
)

// laneHex renders one lane's w bits (w a multiple of 8) as
// space-separated hex bytes, B0..B(w/8-1), in the requested bit order.
func laneHex(bits []uint8, format Format) (string, error) {
	if len(bits)%8 != 0 {
		return "", keccakerr.New(keccakerr.InternalInvariantViolation, errors.Errorf("trace: lane width %d is not a multiple of 8", len(bits)))
	}
	n := len(bits) / 8
	parts := make([]string, n)
	for k := 0; k < n; k++ {
		var v uint8
		for i := 0; i < 8; i++ {
			bit := bits[k*8+i]
			switch format {
			case NISTFormat:
				v |= bit << uint(i)
			default: // ByteMajorFormat
				v |= bit << uint(7-i)
			}
		}
		parts[k] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " "), nil
}

// laneOrder lists (x, y) in the NIST document's traversal order:
// (0,0), (1,0), (2,0), (3,0), (4,0), (0,1), ..., (4,4).
func laneOrder() [25][2]int {
	var out [25][2]int
	i := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			out[i] = [2]int{x, y}
			i++
		}
	}
	return out
}
