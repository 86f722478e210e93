package keccak

import "github.com/pkg/errors"
import "github.com/coruus/gokeccak/keccakerr"

// Permutation is the interface shared by the two state representations:
// the pedagogical bit-array BitState and the optimized lane-word
// LaneState. Both must produce identical Bits() after an equal
// sequence of SetBits/XORBits/Permute calls.
type Permutation interface {
	Params() Params

	// Bits returns a snapshot of the full B-bit state, 0/1 per entry,
	// in the canonical (lane, then z within lane) traversal order used
	// for absorption and squeezing.
	Bits() []uint8
	// SetBits overwrites the state from a B-bit 0/1 slice.
	SetBits(bits []uint8)
	// XORBits xors a 0/1 slice (length <= B) into the state, starting
	// at bit 0, in the same canonical order as Bits.
	XORBits(bits []uint8)

	// Permute applies Rnd for iR = 0..NR-1 in order. hook may be nil.
	Permute(hook Hook)

	Clone() Permutation
	Reset()
}

// Backend selects which state representation a Permutation uses. The
// choice is not observable in any digest it produces.
type Backend int

const (
	// BackendLaneWord is the optimized 25-lane uint64 representation.
	// It is the default: production callers should use it.
	BackendLaneWord Backend = iota
	// BackendBitArray is the literal 5x5xw bit-array representation.
	// It is slower but mirrors the FIPS 202 algorithms verbatim, which
	// makes it the natural backend to pair with the intermediate-value
	// tracer when auditing against NIST reference traces.
	BackendBitArray
)

// New constructs a Permutation for p using the requested backend.
func New(p Params, backend Backend) (Permutation, error) {
	switch backend {
	case BackendLaneWord:
		return NewLaneState(p), nil
	case BackendBitArray:
		return NewBitState(p), nil
	default:
		return nil, keccakerr.New(keccakerr.InvalidParameter, errors.Errorf("keccak: unknown backend %d", int(backend)))
	}
}

// Step names the five round mappings, numbered as FIPS 202's
// "algorithm 1".."algorithm 5" so hooks can reproduce NIST-style
// trace section headers.
type Step int

const (
	StepTheta Step = 1
	StepRho   Step = 2
	StepPi    Step = 3
	StepChi   Step = 4
	StepIota  Step = 5
)

// Hook observes a permutation's internal progress without influencing
// its result: producing a trace must not alter the computed digest.
// Implementations must treat p as read-only within these calls.
type Hook interface {
	BeforeStep(round int, step Step, p Permutation)
	AfterStep(round int, step Step, p Permutation)
	FinalState(p Permutation)
}

// runRound drives the five step closures in order, firing hook
// callbacks around each one. Both LaneState and BitState share this
// orchestration so the trace section boundaries line up regardless of
// backend.
func runRound(p Permutation, iR int, hook Hook, theta, rho, pi, chi, iota func()) {
	steps := [5]struct {
		s Step
		f func()
	}{
		{StepTheta, theta},
		{StepRho, rho},
		{StepPi, pi},
		{StepChi, chi},
		{StepIota, iota},
	}
	for _, st := range steps {
		if hook != nil {
			hook.BeforeStep(iR, st.s, p)
		}
		st.f()
		if hook != nil {
			hook.AfterStep(iR, st.s, p)
		}
	}
}
