package jsontree

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cybergodev/jsontree/internal"
)

// decoder is the state of one parse call: the input, a cursor into it, and
// the scratch arenas that stage strings, array elements and object members
// until their final size is known.
type decoder struct {
	text     string
	pos      int
	depth    int
	maxDepth int
	deepest  int

	bytes   internal.Stack[byte]
	values  internal.Stack[Value]
	members internal.Stack[Member]
}

func (d *decoder) reset(text string, maxDepth int) {
	d.text = text
	d.pos = 0
	d.depth = 0
	d.deepest = 0
	d.maxDepth = maxDepth
}

// release drops the input and shrinks arenas that grew past maxRetain.
func (d *decoder) release(maxRetain int) {
	d.text = ""
	d.bytes.Reset(maxRetain)
	d.values.Reset(maxRetain)
	d.members.Reset(maxRetain)
}

// staged reports whether any arena still holds data.
func (d *decoder) staged() bool {
	return d.bytes.Top() != 0 || d.values.Top() != 0 || d.members.Top() != 0
}

func (d *decoder) fail(status Status, offset int, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return newParseError(status, offset, msg)
}

func (d *decoder) skipSpace() {
	d.pos = internal.SkipSpace(d.text, d.pos)
}

// parseRoot parses one value and, unless trailing content is allowed,
// requires nothing but whitespace after it.
func (d *decoder) parseRoot(v *Value, allowTrailing bool) error {
	d.skipSpace()
	if err := d.parseValue(v); err != nil {
		return err
	}
	d.skipSpace()
	if d.pos < len(d.text) && !allowTrailing {
		v.Free()
		return d.fail(StatusRootNotSingular, d.pos, "unexpected tail: %q", startEndString(d.text[d.pos:]))
	}
	return nil
}

// parseValue dispatches on the lookahead byte. On failure v is left untouched.
func (d *decoder) parseValue(v *Value) error {
	if d.pos >= len(d.text) {
		return d.fail(StatusExpectValue, d.pos, "")
	}
	switch c := d.text[d.pos]; c {
	case 'n':
		return d.parseLiteral(v, "null", TypeNull)
	case 't':
		return d.parseLiteral(v, "true", TypeTrue)
	case 'f':
		return d.parseLiteral(v, "false", TypeFalse)
	case '"':
		return d.parseString(v)
	case '[':
		return d.parseArray(v)
	case '{':
		return d.parseObject(v)
	default:
		if c == '-' || internal.IsDigit(c) {
			return d.parseNumber(v)
		}
		return d.fail(StatusInvalidValue, d.pos, "unexpected character %q", c)
	}
}

func (d *decoder) parseLiteral(v *Value, literal string, t Type) error {
	if !strings.HasPrefix(d.text[d.pos:], literal) {
		return d.fail(StatusInvalidValue, d.pos, "expected %q", literal)
	}
	d.pos += len(literal)
	v.typ = t
	return nil
}

// parseNumber validates the number grammar before handing the token to
// strconv, which would otherwise accept forms JSON forbids.
func (d *decoder) parseNumber(v *Value) error {
	s, start := d.text, d.pos
	p := start

	if s[p] == '-' {
		p++
	}
	switch {
	case p < len(s) && s[p] == '0':
		p++
	case p < len(s) && internal.IsDigit1To9(s[p]):
		for p < len(s) && internal.IsDigit(s[p]) {
			p++
		}
	default:
		return d.fail(StatusInvalidValue, p, "invalid number")
	}

	if p < len(s) && s[p] == '.' {
		p++
		if p >= len(s) || !internal.IsDigit(s[p]) {
			return d.fail(StatusInvalidValue, p, "missing fraction digits")
		}
		for p < len(s) && internal.IsDigit(s[p]) {
			p++
		}
	}

	if p < len(s) && (s[p] == 'e' || s[p] == 'E') {
		p++
		if p < len(s) && (s[p] == '+' || s[p] == '-') {
			p++
		}
		if p >= len(s) || !internal.IsDigit(s[p]) {
			return d.fail(StatusInvalidValue, p, "missing exponent digits")
		}
		for p < len(s) && internal.IsDigit(s[p]) {
			p++
		}
	}

	n, err := strconv.ParseFloat(s[start:p], 64)
	if err != nil {
		// Underflow rounds to zero and is accepted; overflow is not.
		if !errors.Is(err, strconv.ErrRange) || math.IsInf(n, 0) {
			return d.fail(StatusNumberTooBig, start, "%s", s[start:p])
		}
	}

	d.pos = p
	v.n = n
	v.typ = TypeNumber
	return nil
}

func (d *decoder) parseString(v *Value) error {
	s, err := d.parseStringBytes()
	if err != nil {
		return err
	}
	v.s = s
	v.typ = TypeString
	return nil
}

// enter accounts for one more level of nesting.
func (d *decoder) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		d.depth--
		return d.fail(StatusDepthLimit, d.pos, "nesting depth exceeds %d", d.maxDepth)
	}
	if d.depth > d.deepest {
		d.deepest = d.depth
	}
	return nil
}

func (d *decoder) parseArray(v *Value) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer func() { d.depth-- }()

	d.pos++
	d.skipSpace()
	if d.pos < len(d.text) && d.text[d.pos] == ']' {
		d.pos++
		v.a = nil
		v.typ = TypeArray
		return nil
	}

	mark := d.values.Top()
	for {
		var e Value
		if err := d.parseValue(&e); err != nil {
			d.unwindValues(mark)
			return err
		}
		d.values.PushOne(e)

		d.skipSpace()
		if d.pos >= len(d.text) {
			d.unwindValues(mark)
			return d.fail(StatusMissingCommaOrSquareBracket, d.pos, "unexpected end of array")
		}
		switch d.text[d.pos] {
		case ',':
			d.pos++
			d.skipSpace()
		case ']':
			d.pos++
			n := d.values.Top() - mark
			staged := d.values.Pop(n)
			a := make([]Value, n)
			copy(a, staged)
			clear(staged)
			v.a = a
			v.typ = TypeArray
			return nil
		default:
			d.unwindValues(mark)
			return d.fail(StatusMissingCommaOrSquareBracket, d.pos, "unexpected character %q after array element", d.text[d.pos])
		}
	}
}

// unwindValues frees every element staged above mark.
func (d *decoder) unwindValues(mark int) {
	for d.values.Top() > mark {
		d.values.Pop(1)[0].Free()
	}
	d.values.Rewind(mark)
}

func (d *decoder) parseObject(v *Value) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer func() { d.depth-- }()

	d.pos++
	d.skipSpace()
	if d.pos < len(d.text) && d.text[d.pos] == '}' {
		d.pos++
		v.o = nil
		v.typ = TypeObject
		return nil
	}

	mark := d.members.Top()
	for {
		if d.pos >= len(d.text) || d.text[d.pos] != '"' {
			d.unwindMembers(mark)
			return d.fail(StatusMissingKey, d.pos, "")
		}
		key, err := d.parseStringBytes()
		if err != nil {
			d.unwindMembers(mark)
			return err
		}

		d.skipSpace()
		if d.pos >= len(d.text) || d.text[d.pos] != ':' {
			d.unwindMembers(mark)
			return d.fail(StatusMissingColon, d.pos, "after key %q", key)
		}
		d.pos++
		d.skipSpace()

		m := Member{key: key}
		if err := d.parseValue(&m.value); err != nil {
			d.unwindMembers(mark)
			return err
		}
		d.members.PushOne(m)

		d.skipSpace()
		if d.pos >= len(d.text) {
			d.unwindMembers(mark)
			return d.fail(StatusMissingCommaOrCurlyBracket, d.pos, "unexpected end of object")
		}
		switch d.text[d.pos] {
		case ',':
			d.pos++
			d.skipSpace()
		case '}':
			d.pos++
			n := d.members.Top() - mark
			staged := d.members.Pop(n)
			o := make([]Member, n)
			copy(o, staged)
			clear(staged)
			v.o = o
			v.typ = TypeObject
			return nil
		default:
			d.unwindMembers(mark)
			return d.fail(StatusMissingCommaOrCurlyBracket, d.pos, "unexpected character %q after object member", d.text[d.pos])
		}
	}
}

// unwindMembers frees every member, key and value, staged above mark.
func (d *decoder) unwindMembers(mark int) {
	for d.members.Top() > mark {
		d.members.Pop(1)[0].free()
	}
	d.members.Rewind(mark)
}

func startEndString(s string) string {
	const maxStartEndStringLen = 80

	if len(s) <= maxStartEndStringLen {
		return s
	}
	return s[:40] + "..." + s[len(s)-40:]
}
