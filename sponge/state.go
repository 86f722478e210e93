package sponge

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/coruus/gokeccak/keccak"
	"github.com/coruus/gokeccak/keccakerr"
)

// Config carries a sponge instance's rate/capacity parameters. Rate
// and the permutation's width b satisfy Rate + Capacity == b, with
// Rate a multiple of 8 for every instantiation this package supports.
type Config struct {
	Rate       int
	Capacity   int
	DomainBits []uint8 // appended before padding; {0,1} for SHA3-*, {1,1,1,1} for SHAKE*
	OutputBits int     // total bits to squeeze: d for fixed-length hashes, L for XOFs
}

// State is the generic sponge: a keccak.Permutation plus an input
// buffer, driven by a Padding strategy. It implements Sponge.
type State struct {
	perm    keccak.Permutation
	cfg     Config
	padding Padding
	hook    keccak.Hook

	buffer    []uint8
	finalized bool
}

// New constructs a sponge over perm with the given configuration and
// padding rule. hook may be nil; when non-nil it receives a callback
// around every sub-step of every permutation call.
func New(perm keccak.Permutation, cfg Config, padding Padding, hook keccak.Hook) (*State, error) {
	if cfg.Rate <= 0 || cfg.Rate >= perm.Params().B {
		return nil, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("sponge: rate %d must satisfy 0 < r < b (b=%d)", cfg.Rate, perm.Params().B))
	}
	if cfg.Rate%8 != 0 {
		return nil, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("sponge: rate %d must be a multiple of 8", cfg.Rate))
	}
	if cfg.Rate+cfg.Capacity != perm.Params().B {
		return nil, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("sponge: rate %d + capacity %d must equal b=%d", cfg.Rate, cfg.Capacity, perm.Params().B))
	}
	if cfg.OutputBits <= 0 || cfg.OutputBits%8 != 0 {
		return nil, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("sponge: output length %d must be a positive multiple of 8", cfg.OutputBits))
	}
	if padding == nil {
		padding = Pad10Star1{}
	}
	return &State{perm: perm, cfg: cfg, padding: padding, hook: hook}, nil
}

func (s *State) Rate() int { return s.cfg.Rate }

func (s *State) SecurityStrength() int { return s.cfg.Capacity / 2 }

// absorbFull drains the buffer one rate-bit block at a time: xor the
// block into the state's first r bits and permute.
//
// Invariant on exit: len(s.buffer) < s.cfg.Rate.
func (s *State) absorbFull() {
	r := s.cfg.Rate
	for len(s.buffer) >= r {
		s.perm.XORBits(s.buffer[:r])
		s.perm.Permute(s.hook)
		s.buffer = s.buffer[r:]
	}
}

func (s *State) Update(bits []uint8) error {
	if s.finalized {
		return keccakerr.New(keccakerr.UseAfterFinalize, errors.New("sponge: Update called after Finalize"))
	}
	s.buffer = append(s.buffer, bits...)
	s.absorbFull()
	return nil
}

func (s *State) Finalize(data []uint8) ([]uint8, error) {
	if s.finalized {
		return nil, keccakerr.New(keccakerr.UseAfterFinalize, errors.New("sponge: Finalize called after Finalize"))
	}
	if len(data) > 0 {
		s.buffer = append(s.buffer, data...)
	}
	s.buffer = append(s.buffer, s.cfg.DomainBits...)

	pad := s.padding.Pad(len(s.buffer), s.cfg.Rate)
	s.buffer = append(s.buffer, pad...)
	if len(s.buffer) == 0 || len(s.buffer)%s.cfg.Rate != 0 {
		return nil, keccakerr.New(keccakerr.InternalInvariantViolation,
			errors.Errorf("sponge: padded buffer length %d is not a positive multiple of rate %d", len(s.buffer), s.cfg.Rate))
	}

	s.absorbFull()
	if len(s.buffer) != 0 {
		return nil, keccakerr.New(keccakerr.InternalInvariantViolation,
			errors.Errorf("sponge: %d bits remained buffered after final absorption", len(s.buffer)))
	}
	s.finalized = true

	return s.squeeze(), nil
}

// SqueezeAnnouncer is implemented by hooks (e.g. *trace.Tracer) that
// want a "Squeezing output." marker emitted once before the first
// output block is read.
type SqueezeAnnouncer interface {
	Squeezing()
}

// squeeze reads output r bits at a time: the first r bits of state are
// already fresh from the permutation applied at the end of
// absorption, so they're read directly; additional blocks permute
// first.
func (s *State) squeeze() []uint8 {
	if s.hook != nil {
		logrus.WithFields(logrus.Fields{"rate": s.cfg.Rate, "output_bits": s.cfg.OutputBits}).Debug("sponge: squeezing output")
	}
	if a, ok := s.hook.(SqueezeAnnouncer); ok {
		a.Squeezing()
	}
	r := s.cfg.Rate
	z := append([]uint8(nil), s.perm.Bits()[:r]...)
	for len(z) < s.cfg.OutputBits {
		s.perm.Permute(s.hook)
		z = append(z, s.perm.Bits()[:r]...)
	}
	return z[:s.cfg.OutputBits]
}

// Clone returns a deep copy of the sponge, including its permutation
// state and unconsumed input buffer, but not its finalized output.
func (s *State) Clone() Sponge {
	c := &State{
		perm:      s.perm.Clone(),
		cfg:       s.cfg,
		padding:   s.padding,
		hook:      s.hook,
		buffer:    append([]uint8(nil), s.buffer...),
		finalized: s.finalized,
	}
	return c
}
