// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/coruus/gokeccak/codec"
	"github.com/coruus/gokeccak/keccak"
	"github.com/coruus/gokeccak/trace"
)

// sha3DomainBits is the {0,1} domain-separation suffix FIPS 202
// assigns to the fixed-output SHA3-* functions.
var sha3DomainBits = []uint8{0, 1}

// Digest is a SHA3-224/256/384/512 instance: fixed output length,
// single-squeeze.
type Digest struct{ *instance }

// newDigest builds a Digest for Keccak-p[1600, 24] with capacity c and
// digest length d (both in bits).
func newDigest(c, d int, backend keccak.Backend, trc *trace.Tracer) (Digest, error) {
	fp := keccak.FIPS202()
	inst, err := newInstance(fp.B, fp.NR, c, d, sha3DomainBits, backend, trc)
	if err != nil {
		return Digest{}, err
	}
	return Digest{inst}, nil
}

// New224 returns a new SHA3-224 instance (rate 1152 bits, capacity 448
// bits, 224-bit digest).
func New224() Digest { d, _ := newDigest(448, 224, keccak.BackendLaneWord, nil); return d }

// New256 returns a new SHA3-256 instance.
func New256() Digest { d, _ := newDigest(512, 256, keccak.BackendLaneWord, nil); return d }

// New384 returns a new SHA3-384 instance.
func New384() Digest { d, _ := newDigest(768, 384, keccak.BackendLaneWord, nil); return d }

// New512 returns a new SHA3-512 instance.
func New512() Digest { d, _ := newDigest(1024, 512, keccak.BackendLaneWord, nil); return d }

// NewTraced224 is New224, but with the bit-array backend and an
// intermediate-value tracer attached. Useful for auditing a run
// against a NIST reference trace.
func NewTraced224(trc *trace.Tracer) (Digest, error) {
	return newDigest(448, 224, keccak.BackendBitArray, trc)
}

// NewTraced256 is New256 with tracing.
func NewTraced256(trc *trace.Tracer) (Digest, error) {
	return newDigest(512, 256, keccak.BackendBitArray, trc)
}

// NewTraced384 is New384 with tracing.
func NewTraced384(trc *trace.Tracer) (Digest, error) {
	return newDigest(768, 384, keccak.BackendBitArray, trc)
}

// NewTraced512 is New512 with tracing.
func NewTraced512(trc *trace.Tracer) (Digest, error) {
	return newDigest(1024, 512, keccak.BackendBitArray, trc)
}

// Clone returns a deep copy of d in its current state.
func (d Digest) Clone() Digest { return Digest{d.instance.clone()} }

// Sum224 is a one-shot convenience wrapper around New224 for raw bytes.
func Sum224(data []byte) (string, error) {
	d := New224()
	return d.FinalizeBits(codec.BytesToBits(data))
}

// Sum256 is a one-shot convenience wrapper around New256 for raw bytes.
func Sum256(data []byte) (string, error) {
	d := New256()
	return d.FinalizeBits(codec.BytesToBits(data))
}

// Sum384 is a one-shot convenience wrapper around New384 for raw bytes.
func Sum384(data []byte) (string, error) {
	d := New384()
	return d.FinalizeBits(codec.BytesToBits(data))
}

// Sum512 is a one-shot convenience wrapper around New512 for raw bytes.
func Sum512(data []byte) (string, error) {
	d := New512()
	return d.FinalizeBits(codec.BytesToBits(data))
}
