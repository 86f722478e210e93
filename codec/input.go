package codec

import (
	"encoding/base64"

	"github.com/pkg/errors"

	"github.com/coruus/gokeccak/keccakerr"
)

// Format tags the decoder to apply to input_data.
type Format string

const (
	FormatString    Format = "string"
	FormatBytes     Format = "bytes"
	FormatHexString Format = "hexstring"
	FormatBitString Format = "bitstring"
	FormatBitArray  Format = "bitarray"
	FormatBase64    Format = "base64"
)

// Decode turns input_data into the LSB-first bit sequence a sponge
// absorbs. data's dynamic type depends on format:
//
//	FormatString, FormatHexString, FormatBitString: string
//	FormatBytes: []byte
//	FormatBitArray: []int or []uint8, each 0 or 1
//	FormatBase64: string
func Decode(format Format, data interface{}) ([]uint8, error) {
	switch format {
	case FormatString:
		s, ok := data.(string)
		if !ok {
			return nil, wrongType(format, data)
		}
		return BytesToBits([]byte(s)), nil

	case FormatBytes:
		b, ok := data.([]byte)
		if !ok {
			return nil, wrongType(format, data)
		}
		return BytesToBits(b), nil

	case FormatHexString:
		s, ok := data.(string)
		if !ok {
			return nil, wrongType(format, data)
		}
		return H2B(s)

	case FormatBitString:
		s, ok := data.(string)
		if !ok {
			return nil, wrongType(format, data)
		}
		return decodeBitString(s)

	case FormatBitArray:
		return decodeBitArray(data)

	case FormatBase64:
		s, ok := data.(string)
		if !ok {
			return nil, wrongType(format, data)
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, keccakerr.New(keccakerr.MalformedInput, errors.Wrap(err, "codec: invalid base64 input"))
		}
		return BytesToBits(raw), nil

	default:
		return nil, keccakerr.New(keccakerr.InvalidInputFormat, errors.Errorf("codec: unrecognized input_format %q", format))
	}
}

func wrongType(format Format, data interface{}) error {
	return keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: input_format %q does not accept a value of type %T", format, data))
}

// decodeBitString parses a whitespace-tolerant string of '0'/'1'
// characters into the bit sequence it names directly — a bitstring is
// already the sponge-ready sequence, not a byte encoding to reverse.
func decodeBitString(s string) ([]uint8, error) {
	clean := stripWhitespace(s)
	out := make([]uint8, 0, len(clean))
	for _, r := range clean {
		switch r {
		case '0':
			out = append(out, 0)
		case '1':
			out = append(out, 1)
		default:
			return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: bit string contains non-binary character %q", r))
		}
	}
	return out, nil
}

// decodeBitArray accepts []int or []uint8 of 0/1 values, same
// ordering as decodeBitString.
func decodeBitArray(data interface{}) ([]uint8, error) {
	switch v := data.(type) {
	case []uint8:
		out := make([]uint8, len(v))
		for i, b := range v {
			if b != 0 && b != 1 {
				return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: bit array element %d is not 0 or 1", i))
			}
			out[i] = b
		}
		return out, nil
	case []int:
		out := make([]uint8, len(v))
		for i, b := range v {
			if b != 0 && b != 1 {
				return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: bit array element %d is not 0 or 1", i))
			}
			out[i] = uint8(b)
		}
		return out, nil
	default:
		return nil, keccakerr.New(keccakerr.MalformedInput, errors.Errorf("codec: bitarray input_format requires []int or []uint8, got %T", data))
	}
}

// ParseFormat validates a caller-supplied format tag.
func ParseFormat(tag string) (Format, error) {
	switch Format(tag) {
	case FormatString, FormatBytes, FormatHexString, FormatBitString, FormatBitArray, FormatBase64:
		return Format(tag), nil
	default:
		return "", keccakerr.New(keccakerr.InvalidInputFormat, errors.Errorf("codec: unrecognized input_format %q", tag))
	}
}
