package jsontree

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cybergodev/jsontree/internal"
)

// Stringify renders v as compact JSON text.
func Stringify(v *Value) (string, error) {
	buf := internal.GetEncoderBuffer()
	defer internal.PutEncoderBuffer(buf)

	b, err := AppendStringify(buf.AvailableBuffer(), v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendStringify appends the compact JSON text of v to dst.
func AppendStringify(dst []byte, v *Value) ([]byte, error) {
	switch v.typ {
	case TypeNull:
		return append(dst, "null"...), nil
	case TypeFalse:
		return append(dst, "false"...), nil
	case TypeTrue:
		return append(dst, "true"...), nil
	case TypeNumber:
		return appendNumber(dst, v.n)
	case TypeString:
		return internal.AppendEscapedString(dst, v.s), nil
	case TypeArray:
		dst = append(dst, '[')
		for i := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = AppendStringify(dst, &v.a[i]); err != nil {
				return dst, err
			}
		}
		return append(dst, ']'), nil
	case TypeObject:
		dst = append(dst, '{')
		for i := range v.o {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = internal.AppendEscapedString(dst, v.o[i].key)
			dst = append(dst, ':')
			var err error
			if dst, err = AppendStringify(dst, &v.o[i].value); err != nil {
				return dst, err
			}
		}
		return append(dst, '}'), nil
	default:
		return dst, fmt.Errorf("jsontree: cannot stringify %s value", v.typ)
	}
}

// appendNumber formats n the way encoding/json does: plain notation for
// moderate magnitudes, exponent notation otherwise, always round-trippable.
func appendNumber(dst []byte, n float64) ([]byte, error) {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return dst, fmt.Errorf("%w: %v", ErrUnsupportedNumber, n)
	}

	abs := math.Abs(n)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, n, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		if k := len(dst); k >= 4 && dst[k-4] == 'e' && dst[k-3] == '-' && dst[k-2] == '0' {
			dst[k-2] = dst[k-1]
			dst = dst[:k-1]
		}
	}
	return dst, nil
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return AppendStringify(nil, v)
}

// UnmarshalJSON implements json.Unmarshaler using the package-level parser.
func (v *Value) UnmarshalJSON(b []byte) error {
	return ParseBytes(v, b)
}
