// Package codec implements the Annex B.1 byte/bit conversions and the
// input-format decoders that turn a caller-supplied input_data +
// input_format pair into the bit sequence a sponge absorbs. Every
// byte's bits are ordered LSB-first, per FIPS 202 Annex B.1 — a byte
// with value 0xA3 is the bit sequence 1100 0101.
package codec

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/keccakerr"
)

// BytesToBits expands each byte into 8 bits, LSB-first: bit i of the
// output for byte k is bit i of data[k] (i = 0 is the least
// significant bit).
func BytesToBits(data []byte) []uint8 {
	out := make([]uint8, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			out = append(out, (b>>uint(i))&1)
		}
	}
	return out
}

// BitsToBytes is the inverse of BytesToBits. len(bits) must be a
// multiple of 8.
func BitsToBytes(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: bit sequence length %d is not a multiple of 8", len(bits)))
	}
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := 0; j < 8; j++ {
			if bits[i*8+j] != 0 {
				v |= 1 << uint(j)
			}
		}
		out[i] = v
	}
	return out, nil
}

// H2B implements Annex B.1's h2b: each pair of hex characters names a
// byte value in the usual way (encoding/hex handles that part), and
// that byte is then expanded to its LSB-first bit sequence. Whitespace
// between hex characters is tolerated and stripped first.
func H2B(hexStr string) ([]uint8, error) {
	clean := stripWhitespace(hexStr)
	if len(clean)%2 != 0 {
		return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: hex string %q has odd length", hexStr))
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, keccakerr.New(keccakerr.MalformedInput, errors.Wrapf(err, "codec: invalid hex string %q", hexStr))
	}
	return BytesToBits(raw), nil
}

// B2H is the inverse of H2B: it packs bits into bytes (LSB-first) and
// hex-encodes them in uppercase. len(bits) must be a multiple of 8.
func B2H(bits []uint8) (string, error) {
	raw, err := BitsToBytes(bits)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
