package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gencore/gencam"
)

// Endianness selects the byte order a register's bytes are read/written in.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

// Sign selects whether an integer decode sign-extends or zero-extends bytes
// narrower than 8.
type Sign int

const (
	Signed Sign = iota
	Unsigned
)

func order(e Endianness) binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func invalidBuffer(n int) error {
	return gencam.NewError(gencam.KindInvalidBuffer, fmt.Sprintf("invalid buffer length %d", n))
}

// IntFromSlice decodes an i64 from b under the given endianness and
// signedness. len(b) must be one of {1,2,4,8}.
//
// For signed widths narrower than 8 the sign bit is extended. For unsigned
// widths narrower than 8 the value is zero-extended. For the unsigned
// 8-byte case the raw bit pattern is reinterpreted as int64; values
// exceeding math.MaxInt64 wrap rather than error.
func IntFromSlice(b []byte, end Endianness, sign Sign) (int64, error) {
	ord := order(end)
	switch len(b) {
	case 1:
		v := uint64(b[0])
		if sign == Signed {
			return int64(int8(b[0])), nil
		}
		return int64(v), nil
	case 2:
		v := ord.Uint16(b)
		if sign == Signed {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	case 4:
		v := ord.Uint32(b)
		if sign == Signed {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	case 8:
		v := ord.Uint64(b)
		return int64(v), nil
	default:
		return 0, invalidBuffer(len(b))
	}
}

// BytesFromInt encodes v into width bytes under the given endianness and
// signedness (signedness does not affect the byte pattern written; it
// exists for symmetry with IntFromSlice and to document intent at call
// sites). width must be one of {1,2,4,8}; narrower widths truncate v to its
// low bytes, a repeated low-byte cast.
func BytesFromInt(v int64, width int, end Endianness, _ Sign) ([]byte, error) {
	ord := order(end)
	b := make([]byte, width)
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		ord.PutUint16(b, uint16(v))
	case 4:
		ord.PutUint32(b, uint32(v))
	case 8:
		ord.PutUint64(b, uint64(v))
	default:
		return nil, invalidBuffer(width)
	}
	return b, nil
}

// FloatFromSlice decodes an f64 from b under the given endianness. len(b)
// must be one of {4,8}; the 4-byte case widens from IEEE-754 float32.
func FloatFromSlice(b []byte, end Endianness) (float64, error) {
	ord := order(end)
	switch len(b) {
	case 4:
		return float64(math.Float32frombits(ord.Uint32(b))), nil
	case 8:
		return math.Float64frombits(ord.Uint64(b)), nil
	default:
		return 0, invalidBuffer(len(b))
	}
}

// BytesFromFloat encodes v into width bytes under the given endianness.
// width must be one of {4,8}; the 4-byte case narrows to float32,
// truncating precision.
func BytesFromFloat(v float64, width int, end Endianness) ([]byte, error) {
	ord := order(end)
	b := make([]byte, width)
	switch width {
	case 4:
		ord.PutUint32(b, math.Float32bits(float32(v)))
	case 8:
		ord.PutUint64(b, math.Float64bits(v))
	default:
		return nil, invalidBuffer(width)
	}
	return b, nil
}
