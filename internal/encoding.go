package internal

import (
	"bytes"
	"sync"
)

// IsSpace reports whether the character is a JSON whitespace character
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsDigit reports whether the character is a digit
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsDigit1To9 reports whether the character is a non-zero digit
func IsDigit1To9(c byte) bool {
	return '1' <= c && c <= '9'
}

// SkipSpace returns the first offset at or after pos that is not whitespace.
func SkipSpace(s string, pos int) int {
	for pos < len(s) && IsSpace(s[pos]) {
		pos++
	}
	return pos
}

// ParseHex4 decodes exactly four hex digits starting at pos.
func ParseHex4(s string, pos int) (uint32, bool) {
	if pos+4 > len(s) {
		return 0, false
	}
	var u uint32
	for i := pos; i < pos+4; i++ {
		c := s[i]
		u <<= 4
		switch {
		case c >= '0' && c <= '9':
			u |= uint32(c - '0')
		case c >= 'A' && c <= 'F':
			u |= uint32(c-'A') + 10
		case c >= 'a' && c <= 'f':
			u |= uint32(c-'a') + 10
		default:
			return 0, false
		}
	}
	return u, true
}

// Surrogate bounds of UTF-16.
const (
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
)

// CombineSurrogates joins a high and a low surrogate into one code point.
func CombineSurrogates(high, low uint32) rune {
	return rune(0x10000 + (high-HighSurrogateMin)*0x400 + (low - LowSurrogateMin))
}

// ShortEscape maps the character after a backslash to the byte it stands for.
// The second result is false for characters that are not short escapes.
func ShortEscape(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

const hexDigits = "0123456789ABCDEF"

// AppendEscapedString appends s as a quoted JSON string.
func AppendEscapedString(dst []byte, s []byte) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

var encoderBufferPool = sync.Pool{
	New: func() any {
		buf := &bytes.Buffer{}
		buf.Grow(2048)
		return buf
	},
}

// GetEncoderBuffer gets a buffer from the pool
func GetEncoderBuffer() *bytes.Buffer {
	buf := encoderBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutEncoderBuffer returns a buffer to the pool
func PutEncoderBuffer(buf *bytes.Buffer) {
	const maxPoolBufferSize = 64 * 1024
	const minPoolBufferSize = 256
	if buf != nil {
		c := buf.Cap()
		if c >= minPoolBufferSize && c <= maxPoolBufferSize {
			buf.Reset()
			encoderBufferPool.Put(buf)
		}
	}
}
