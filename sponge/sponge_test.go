package sponge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coruus/gokeccak/keccak"
	"github.com/coruus/gokeccak/keccakerr"
)

func newSHA3_256(t *testing.T) *State {
	t.Helper()
	perm, err := keccak.New(keccak.FIPS202(), keccak.BackendLaneWord)
	require.NoError(t, err)
	sp, err := New(perm, Config{Rate: 1088, Capacity: 512, DomainBits: []uint8{0, 1}, OutputBits: 256}, Pad10Star1{}, nil)
	require.NoError(t, err)
	return sp
}

func TestPad10Star1MinimalAndBracketed(t *testing.T) {
	pad := Pad10Star1{}
	for r := 8; r <= 1344; r += 8 {
		for m := 0; m < r*2; m++ {
			suffix := pad.Pad(m, r)
			require.GreaterOrEqual(t, len(suffix), 2)
			require.LessOrEqual(t, len(suffix), r+1)
			total := m + len(suffix)
			assert.Zero(t, total%r, "m=%d r=%d total=%d", m, r, total)
			assert.Equal(t, uint8(1), suffix[0])
			assert.Equal(t, uint8(1), suffix[len(suffix)-1])
		}
	}
}

func TestRateRejectsNonByteMultiple(t *testing.T) {
	perm, err := keccak.New(keccak.FIPS202(), keccak.BackendLaneWord)
	require.NoError(t, err)
	_, err = New(perm, Config{Rate: 1090, Capacity: 510, DomainBits: []uint8{0, 1}, OutputBits: 256}, nil, nil)
	require.Error(t, err)
}

func TestRateMustBeStrictlyBetweenZeroAndB(t *testing.T) {
	perm, err := keccak.New(keccak.FIPS202(), keccak.BackendLaneWord)
	require.NoError(t, err)
	_, err = New(perm, Config{Rate: 1600, Capacity: 0, DomainBits: []uint8{0, 1}, OutputBits: 256}, nil, nil)
	require.Error(t, err)
}

func TestUpdateAfterFinalizeFails(t *testing.T) {
	sp := newSHA3_256(t)
	_, err := sp.Finalize(nil)
	require.NoError(t, err)

	err = sp.Update([]uint8{1, 0, 1})
	require.Error(t, err)
	var kerr *keccakerr.Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, keccakerr.UseAfterFinalize, kerr.Kind)
}

func TestFinalizeAfterFinalizeFails(t *testing.T) {
	sp := newSHA3_256(t)
	_, err := sp.Finalize(nil)
	require.NoError(t, err)

	_, err = sp.Finalize(nil)
	require.Error(t, err)
}

func TestFinalizeOutputLengthMatchesConfig(t *testing.T) {
	sp := newSHA3_256(t)
	out, err := sp.Finalize(nil)
	require.NoError(t, err)
	assert.Len(t, out, 256)
}

func TestStreamingMatchesSingleShot(t *testing.T) {
	msg := []uint8{}
	for i := 0; i < 400; i++ {
		msg = append(msg, uint8(i%2))
	}

	single := newSHA3_256(t)
	singleOut, err := single.Finalize(msg)
	require.NoError(t, err)

	chunked := newSHA3_256(t)
	require.NoError(t, chunked.Update(msg[:100]))
	require.NoError(t, chunked.Update(msg[100:250]))
	chunkedOut, err := chunked.Finalize(msg[250:])
	require.NoError(t, err)

	assert.Equal(t, singleOut, chunkedOut)
}

func TestCloneProducesIndependentSponge(t *testing.T) {
	sp := newSHA3_256(t)
	require.NoError(t, sp.Update([]uint8{1, 1, 0, 0}))
	clone := sp.Clone()

	require.NoError(t, sp.Update([]uint8{1}))
	out1, err := sp.Finalize(nil)
	require.NoError(t, err)

	out2, err := clone.Finalize(nil)
	require.NoError(t, err)

	assert.NotEqual(t, out1, out2)
}
