// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the SHA-3 fixed-output-length hash functions
// and the SHAKE variable-output-length hash functions defined by
// FIPS-202, as a thin façade over package sponge and package keccak.
//
// Both families of function use a sponge construction built on the
// Keccak-p[1600, 24] permutation. For the detailed specification, see
// https://nvlpubs.nist.gov/nistpubs/fips/nist.fips.202.pdf
//
// # Guidance
//
// If you aren't sure what function you need, use SHAKE256 with at
// least 64 bytes of output.
//
// # Security strengths
//
//	          output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//
//	          output  collision-resistance  preimage-resistance
//	SHAKE128  >= 32B              128 bits             128 bits
//	SHAKE256  >= 64B              256 bits             256 bits
//
// Requesting more than 32B/64B of output from SHAKE128/SHAKE256 does
// not raise its collision resistance above 128/256 bits.
package sha3
