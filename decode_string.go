package jsontree

import (
	"unicode/utf8"

	"github.com/cybergodev/jsontree/internal"
)

// parseStringBytes decodes the quoted string at the cursor into a freshly
// allocated, exactly sized byte slice. Decoded bytes are staged on the byte
// arena; on failure the arena is rewound to where this string started.
func (d *decoder) parseStringBytes() ([]byte, error) {
	s := d.text
	mark := d.bytes.Top()
	p := d.pos + 1

	for {
		if p >= len(s) {
			d.bytes.Rewind(mark)
			return nil, d.fail(StatusMissingQuotationMark, p, "")
		}
		c := s[p]
		switch {
		case c == '"':
			n := d.bytes.Top() - mark
			out := make([]byte, n)
			copy(out, d.bytes.Pop(n))
			d.pos = p + 1
			return out, nil

		case c == '\\':
			next, status := d.decodeEscape(p)
			if status != StatusOK {
				d.bytes.Rewind(mark)
				return nil, d.fail(status, p, "")
			}
			p = next

		case c < 0x20:
			d.bytes.Rewind(mark)
			return nil, d.fail(StatusInvalidStringChar, p, "control character 0x%02X", c)

		default:
			d.bytes.PushOne(c)
			p++
		}
	}
}

// decodeEscape decodes the escape sequence whose backslash is at p, writes its
// UTF-8 bytes to the arena and returns the offset just past it.
func (d *decoder) decodeEscape(p int) (int, Status) {
	s := d.text
	p++
	if p >= len(s) {
		return p, StatusMissingQuotationMark
	}
	if b, ok := internal.ShortEscape(s[p]); ok {
		d.bytes.PushOne(b)
		return p + 1, StatusOK
	}
	if s[p] != 'u' {
		return p, StatusInvalidStringEscape
	}

	u, ok := internal.ParseHex4(s, p+1)
	if !ok {
		return p, StatusInvalidUnicodeHex
	}
	p += 5

	switch {
	case u >= internal.HighSurrogateMin && u <= internal.HighSurrogateMax:
		if p+1 >= len(s) || s[p] != '\\' || s[p+1] != 'u' {
			return p, StatusInvalidUnicodeSurrogate
		}
		low, ok := internal.ParseHex4(s, p+2)
		if !ok {
			return p, StatusInvalidUnicodeHex
		}
		if low < internal.LowSurrogateMin || low > internal.LowSurrogateMax {
			return p, StatusInvalidUnicodeSurrogate
		}
		d.appendRune(internal.CombineSurrogates(u, low))
		return p + 6, StatusOK

	case u >= internal.LowSurrogateMin && u <= internal.LowSurrogateMax:
		return p, StatusInvalidUnicodeSurrogate

	default:
		d.appendRune(rune(u))
		return p, StatusOK
	}
}

// appendRune writes the UTF-8 encoding of r to the byte arena.
func (d *decoder) appendRune(r rune) {
	utf8.EncodeRune(d.bytes.Push(utf8.RuneLen(r)), r)
}
