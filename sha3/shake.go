// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/codec"
	"github.com/coruus/gokeccak/keccak"
	"github.com/coruus/gokeccak/keccakerr"
	"github.com/coruus/gokeccak/trace"
)

// shakeDomainBits is the {1,1,1,1} domain-separation suffix FIPS 202
// assigns to SHAKE128/SHAKE256.
var shakeDomainBits = []uint8{1, 1, 1, 1}

// XOF is a SHAKE128/SHAKE256 instance. Unlike Digest, its output
// length L is chosen by the caller at construction, in bits, and must
// be a multiple of 8.
type XOF struct{ *instance }

func newXOF(c, outputBits int, backend keccak.Backend, trc *trace.Tracer) (XOF, error) {
	if outputBits <= 0 || outputBits%8 != 0 {
		return XOF{}, keccakerr.New(keccakerr.InvalidParameter,
			errors.Errorf("sha3: XOF output length %d must be a positive multiple of 8", outputBits))
	}
	fp := keccak.FIPS202()
	inst, err := newInstance(fp.B, fp.NR, c, outputBits, shakeDomainBits, backend, trc)
	if err != nil {
		return XOF{}, err
	}
	return XOF{inst}, nil
}

// NewShake128 returns a new SHAKE128 instance that will squeeze
// outputBits bits (a positive multiple of 8) of output.
func NewShake128(outputBits int) (XOF, error) {
	return newXOF(256, outputBits, keccak.BackendLaneWord, nil)
}

// NewShake256 returns a new SHAKE256 instance.
func NewShake256(outputBits int) (XOF, error) {
	return newXOF(512, outputBits, keccak.BackendLaneWord, nil)
}

// NewTracedShake128 is NewShake128 with the bit-array backend and an
// intermediate-value tracer attached.
func NewTracedShake128(outputBits int, trc *trace.Tracer) (XOF, error) {
	return newXOF(256, outputBits, keccak.BackendBitArray, trc)
}

// NewTracedShake256 is NewShake256 with tracing.
func NewTracedShake256(outputBits int, trc *trace.Tracer) (XOF, error) {
	return newXOF(512, outputBits, keccak.BackendBitArray, trc)
}

// Clone returns a deep copy of x in its current state.
func (x XOF) Clone() XOF { return XOF{x.instance.clone()} }

// ShakeSum128 is a one-shot convenience wrapper around NewShake128 for
// raw bytes.
func ShakeSum128(data []byte, outputBits int) (string, error) {
	x, err := NewShake128(outputBits)
	if err != nil {
		return "", err
	}
	return x.FinalizeBits(codec.BytesToBits(data))
}

// ShakeSum256 is a one-shot convenience wrapper around NewShake256 for
// raw bytes.
func ShakeSum256(data []byte, outputBits int) (string, error) {
	x, err := NewShake256(outputBits)
	if err != nil {
		return "", err
	}
	return x.FinalizeBits(codec.BytesToBits(data))
}
