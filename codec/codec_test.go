package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestH2BAnnexB1Example(t *testing.T) {
	// FIPS 202 Annex B.1: the byte 0xA3 is the bit sequence 1100 0101.
	bits, err := H2B("A3")
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 0, 0, 0, 1, 0, 1}, bits)
}

func TestH2BToleratesWhitespace(t *testing.T) {
	a, err := H2B("A3 01")
	require.NoError(t, err)
	b, err := H2B("A301")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestH2BRejectsOddLength(t *testing.T) {
	_, err := H2B("A")
	require.Error(t, err)
}

func TestH2BRejectsNonHex(t *testing.T) {
	_, err := H2B("ZZ")
	require.Error(t, err)
}

func TestB2HRoundTripsEvenLengthHex(t *testing.T) {
	for _, h := range []string{"", "00", "A3", "FFEE0102", "DEADBEEF"} {
		bits, err := H2B(h)
		require.NoError(t, err)
		back, err := B2H(bits)
		require.NoError(t, err)
		assert.Equal(t, h, back)
	}
}

func TestH2BRoundTripsByteMultipleBits(t *testing.T) {
	for _, bits := range [][]uint8{
		{},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 1, 0, 1},
		{1, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0},
	} {
		h, err := B2H(bits)
		require.NoError(t, err)
		back, err := H2B(h)
		require.NoError(t, err)
		assert.Equal(t, bits, back)
	}
}

func TestB2HRejectsNonByteMultiple(t *testing.T) {
	_, err := B2H([]uint8{1, 0, 1})
	require.Error(t, err)
}

func TestDecodeString(t *testing.T) {
	bits, err := Decode(FormatString, "a")
	require.NoError(t, err)
	// 'a' == 0x61 == 0110 0001 -> LSB-first: 1000 0110
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 1, 1, 0}, bits)
}

func TestDecodeBytesMatchesString(t *testing.T) {
	a, err := Decode(FormatString, "abc")
	require.NoError(t, err)
	b, err := Decode(FormatBytes, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeHexStringMatchesH2B(t *testing.T) {
	a, err := Decode(FormatHexString, "A3")
	require.NoError(t, err)
	b, err := H2B("A3")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestDecodeBitStringPassesThrough(t *testing.T) {
	bits, err := Decode(FormatBitString, "01 10 1")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 1, 0, 1}, bits)
}

func TestDecodeBitStringRejectsGarbage(t *testing.T) {
	_, err := Decode(FormatBitString, "012")
	require.Error(t, err)
}

func TestDecodeBitArray(t *testing.T) {
	bits, err := Decode(FormatBitArray, []int{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 1}, bits)
}

func TestDecodeBase64(t *testing.T) {
	// "YQ==" is the base64 encoding of "a".
	bits, err := Decode(FormatBase64, "YQ==")
	require.NoError(t, err)
	want, err := Decode(FormatString, "a")
	require.NoError(t, err)
	assert.Equal(t, want, bits)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(Format("nonsense"), "x")
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("hexstring")
	require.NoError(t, err)
	assert.Equal(t, FormatHexString, f)

	_, err = ParseFormat("nonsense")
	require.Error(t, err)
}
