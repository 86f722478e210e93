// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coruus/gokeccak/codec"
)

// fipsVector is one FIPS 202 / NIST CAVS known-answer test.
type fipsVector struct {
	desc       string
	input      string // ASCII; empty string means an empty message
	outputBits int    // only meaningful for XOFs
	want       string
}

var sha3Vectors = map[string][]fipsVector{
	"SHA3-224": {{desc: "empty", want: "6B4E03423667DBB73B6E15454F0EB1ABD4597F9A1B078E3F5B5A6BC7"}},
	"SHA3-256": {
		{desc: "empty", want: "A7FFC6F8BF1ED76651C14756A061D662F580FF4DE43B49FA82D80A4B80F8434A"},
		{desc: "abc", input: "abc", want: "3A985DA74FE225B2045C172D6BD390BD855F086E3E9D525B46BFE24511431532"},
	},
	"SHA3-512": {{desc: "abc", input: "abc",
		want: "B751850B1A57168A5693CD924B6B096E08F621827444F70D884F5D0240D2712E10E116E9192AF3C91A7EC57647E3934057340B4CF408D5A56592F8274EEC53F0"}},
}

func TestFIPS202KnownAnswerVectors(t *testing.T) {
	for name, vectors := range sha3Vectors {
		for _, v := range vectors {
			t.Run(name+"/"+v.desc, func(t *testing.T) {
				d := newDigestByName(t, name)
				got, err := d.Finalize(codec.FormatString, v.input)
				require.NoError(t, err)
				assert.Equal(t, v.want, got)
				assert.Equal(t, v.want, d.Output)
			})
		}
	}
}

func TestFIPS202ChunkedUpdateMatchesSingleShot(t *testing.T) {
	for name, vectors := range sha3Vectors {
		for _, v := range vectors {
			if len(v.input) < 3 {
				continue // need at least 3 bytes to feed one-at-a-time
			}
			t.Run(name+"/"+v.desc+"/chunked", func(t *testing.T) {
				d := newDigestByName(t, name)
				for _, ch := range v.input {
					require.NoError(t, d.Update(codec.FormatString, string(ch)))
				}
				got, err := d.Finalize(codec.FormatString, nil)
				require.NoError(t, err)
				assert.Equal(t, v.want, got)
			})
		}
	}
}

func TestShake128EmptyMessageVector(t *testing.T) {
	x, err := NewShake128(256)
	require.NoError(t, err)
	got, err := x.Finalize(codec.FormatString, "")
	require.NoError(t, err)
	assert.Equal(t, "7F9C2BA4E88F827D616045507605853ED73B8093F6EFBC88EB1A6EACFA66EF26", got)
}

func TestShake256AbcVector(t *testing.T) {
	x, err := NewShake256(512)
	require.NoError(t, err)
	got, err := x.Finalize(codec.FormatString, "abc")
	require.NoError(t, err)
	assert.Equal(t, "483366601360A8771C6863080CC4114D8DB44530F8F1E1EE4F94EA37E78B5739D5A15BEF186A5386C75744C0527E1FAA9F8726E462A12A4FEB06BD8801E751E4", got)
}

func TestShake256ChunkedUpdateMatchesSingleShot(t *testing.T) {
	single, err := NewShake256(512)
	require.NoError(t, err)
	singleOut, err := single.Finalize(codec.FormatString, "abc")
	require.NoError(t, err)

	chunked, err := NewShake256(512)
	require.NoError(t, err)
	require.NoError(t, chunked.Update(codec.FormatString, "a"))
	require.NoError(t, chunked.Update(codec.FormatString, "b"))
	chunkedOut, err := chunked.Finalize(codec.FormatString, "c")
	require.NoError(t, err)

	assert.Equal(t, singleOut, chunkedOut)
}

func newDigestByName(t *testing.T, name string) Digest {
	t.Helper()
	switch name {
	case "SHA3-224":
		return New224()
	case "SHA3-256":
		return New256()
	case "SHA3-384":
		return New384()
	case "SHA3-512":
		return New512()
	default:
		t.Fatalf("unknown digest name %q", name)
		return Digest{}
	}
}
