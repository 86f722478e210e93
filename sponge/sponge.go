package sponge

// Sponge defines the interface to a Keccak-based cryptographic sponge:
// it absorbs input and squeezes output in Rate()-bit blocks, applying
// the underlying permutation between blocks.
type Sponge interface {
	// Rate returns the number of bits touched by absorption and
	// squeezing before the permutation is applied.
	Rate() int
	// SecurityStrength returns capacity / 2, the generic
	// security strength in bits.
	SecurityStrength() int

	// Update appends preprocessed bits to the input buffer and absorbs
	// every full rate-bit prefix. It can be called repeatedly. It
	// fails with keccakerr.UseAfterFinalize once Finalize has run.
	Update(bits []uint8) error

	// Finalize absorbs any data passed to it, appends the configured
	// domain-separation suffix, pads, absorbs the remaining blocks,
	// and squeezes Config.OutputBits of output. It may be called
	// exactly once.
	Finalize(data []uint8) ([]uint8, error)

	// Clone returns a deep copy of the sponge in its current state.
	Clone() Sponge
}
