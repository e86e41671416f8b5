package jsontree

// Init resets v to null without releasing its payload. Use it only on
// freshly declared storage; use Free or SetNull on a Value in use.
func (v *Value) Init() {
	*v = Value{}
}

// Type returns the tag of v.
func (v *Value) Type() Type {
	return v.typ
}

// Free releases the payload of v depth-first and resets it to null.
// Calling Free on a null Value is a no-op.
func (v *Value) Free() {
	switch v.typ {
	case TypeString:
		v.s = nil
	case TypeArray:
		for i := range v.a {
			v.a[i].Free()
		}
		v.a = nil
	case TypeObject:
		for i := range v.o {
			v.o[i].free()
		}
		v.o = nil
	}
	v.typ = TypeNull
}

// SetNull frees v, leaving it null.
func (v *Value) SetNull() {
	v.Free()
}

// Boolean returns the boolean held by v. It panics unless v is true or false.
func (v *Value) Boolean() bool {
	if v.typ != TypeTrue && v.typ != TypeFalse {
		typeViolation("Boolean", TypeTrue, v.typ)
	}
	return v.typ == TypeTrue
}

// SetBoolean frees v and stores b.
func (v *Value) SetBoolean(b bool) {
	v.Free()
	if b {
		v.typ = TypeTrue
	} else {
		v.typ = TypeFalse
	}
}

// Number returns the number held by v. It panics unless v is a number.
func (v *Value) Number() float64 {
	if v.typ != TypeNumber {
		typeViolation("Number", TypeNumber, v.typ)
	}
	return v.n
}

// SetNumber frees v and stores n.
func (v *Value) SetNumber(n float64) {
	v.Free()
	v.n = n
	v.typ = TypeNumber
}

// StringBytes returns the bytes of the string held by v. The slice is owned
// by v and may contain zero bytes. It panics unless v is a string.
func (v *Value) StringBytes() []byte {
	if v.typ != TypeString {
		typeViolation("StringBytes", TypeString, v.typ)
	}
	return v.s
}

// StringValue returns the string held by v. It panics unless v is a string.
// Use Stringify to render any Value as JSON text.
func (v *Value) StringValue() string {
	if v.typ != TypeString {
		typeViolation("StringValue", TypeString, v.typ)
	}
	return string(v.s)
}

// StringLength returns the byte length of the string held by v.
func (v *Value) StringLength() int {
	if v.typ != TypeString {
		typeViolation("StringLength", TypeString, v.typ)
	}
	return len(v.s)
}

// SetString frees v and stores a copy of s. The length of s is authoritative.
func (v *Value) SetString(s []byte) {
	v.Free()
	v.s = make([]byte, len(s))
	copy(v.s, s)
	v.typ = TypeString
}

// SetStringValue is SetString for a Go string.
func (v *Value) SetStringValue(s string) {
	v.Free()
	v.s = []byte(s)
	v.typ = TypeString
}

// ArraySize returns the number of elements of the array held by v.
func (v *Value) ArraySize() int {
	if v.typ != TypeArray {
		typeViolation("ArraySize", TypeArray, v.typ)
	}
	return len(v.a)
}

// Element returns the element at index. It panics unless v is an array and
// index is in range.
func (v *Value) Element(index int) *Value {
	if v.typ != TypeArray {
		typeViolation("Element", TypeArray, v.typ)
	}
	if index < 0 || index >= len(v.a) {
		indexViolation("Element", TypeArray, index, len(v.a))
	}
	return &v.a[index]
}

// ObjectSize returns the number of members of the object held by v.
func (v *Value) ObjectSize() int {
	if v.typ != TypeObject {
		typeViolation("ObjectSize", TypeObject, v.typ)
	}
	return len(v.o)
}

// Member returns the member at index.
func (v *Value) Member(index int) *Member {
	if v.typ != TypeObject {
		typeViolation("Member", TypeObject, v.typ)
	}
	if index < 0 || index >= len(v.o) {
		indexViolation("Member", TypeObject, index, len(v.o))
	}
	return &v.o[index]
}

// ObjectKey returns the key bytes of the member at index.
func (v *Value) ObjectKey(index int) []byte {
	return v.Member(index).key
}

// ObjectKeyLength returns the byte length of the key of the member at index.
func (v *Value) ObjectKeyLength(index int) int {
	return len(v.Member(index).key)
}

// ObjectValue returns the value of the member at index.
func (v *Value) ObjectValue(index int) *Value {
	return &v.Member(index).value
}
