// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/codec"
	"github.com/coruus/gokeccak/keccak"
	"github.com/coruus/gokeccak/keccakerr"
	"github.com/coruus/gokeccak/sponge"
	"github.com/coruus/gokeccak/trace"
)

// instance is the shared core behind both Digest (fixed-length SHA3)
// and XOF (SHAKE): a configured sponge plus the published hex output.
type instance struct {
	sp     sponge.Sponge
	Output string // uppercase hex digest, valid only after Finalize
}

func newInstance(b, nr, c, outputBits int, domainBits []uint8, backend keccak.Backend, trc *trace.Tracer) (*instance, error) {
	params, err := keccak.NewParams(b, nr)
	if err != nil {
		return nil, err
	}
	if trc != nil && backend != keccak.BackendBitArray {
		return nil, keccakerr.New(keccakerr.InvalidParameter,
			errors.New("sha3: intermediate-value tracing requires the bit-array backend"))
	}
	perm, err := keccak.New(params, backend)
	if err != nil {
		return nil, err
	}
	var hook keccak.Hook
	if trc != nil {
		hook = trc
	}
	cfg := sponge.Config{
		Rate:       b - c,
		Capacity:   c,
		DomainBits: append([]uint8(nil), domainBits...),
		OutputBits: outputBits,
	}
	sp, err := sponge.New(perm, cfg, sponge.Pad10Star1{}, hook)
	if err != nil {
		return nil, err
	}
	return &instance{sp: sp}, nil
}

// Update decodes data according to format and absorbs it. It can be
// called any number of times before Finalize.
func (d *instance) Update(format codec.Format, data interface{}) error {
	bits, err := codec.Decode(format, data)
	if err != nil {
		return err
	}
	return d.sp.Update(bits)
}

// UpdateBits absorbs an already-decoded bit sequence directly,
// bypassing the input-format codec.
func (d *instance) UpdateBits(bits []uint8) error {
	return d.sp.Update(bits)
}

// Finalize optionally absorbs one last chunk of data, then pads,
// squeezes, and publishes Output as uppercase hex. It may be called
// exactly once.
func (d *instance) Finalize(format codec.Format, data interface{}) (string, error) {
	var bits []uint8
	if data != nil {
		var err error
		bits, err = codec.Decode(format, data)
		if err != nil {
			return "", err
		}
	}
	return d.finalizeBits(bits)
}

// FinalizeBits is Finalize without the input-format codec, for
// callers that already have a bit sequence (or none: pass nil).
func (d *instance) FinalizeBits(bits []uint8) (string, error) {
	return d.finalizeBits(bits)
}

func (d *instance) finalizeBits(bits []uint8) (string, error) {
	out, err := d.sp.Finalize(bits)
	if err != nil {
		return "", err
	}
	hexStr, err := codec.B2H(out)
	if err != nil {
		return "", err
	}
	d.Output = hexStr
	return hexStr, nil
}

func (d *instance) clone() *instance {
	return &instance{sp: d.sp.Clone(), Output: d.Output}
}
