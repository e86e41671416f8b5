package jsontree

import "bytes"

// Equal reports whether a and b hold the same tree. Objects compare as
// unordered key sets; arrays compare element by element.
func Equal(a, b *Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeNumber:
		return a.n == b.n
	case TypeString:
		return bytes.Equal(a.s, b.s)
	case TypeArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(&a.a[i], &b.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(a.o) != len(b.o) {
			return false
		}
		// Each member of b pairs with at most one member of a, so
		// duplicate keys must match in number.
		used := make([]bool, len(b.o))
		for i := range a.o {
			if !matchMember(&a.o[i], b.o, used) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// matchMember marks and reports the first unused member of ms equal to m.
func matchMember(m *Member, ms []Member, used []bool) bool {
	for j := range ms {
		if !used[j] && bytes.Equal(m.key, ms[j].key) && Equal(&m.value, &ms[j].value) {
			used[j] = true
			return true
		}
	}
	return false
}

// Copy frees v and makes it a deep copy of src. src may live inside v.
func (v *Value) Copy(src *Value) {
	if v == src {
		return
	}
	dup := deepCopy(src)
	v.Free()
	*v = dup
}

func deepCopy(src *Value) Value {
	switch src.typ {
	case TypeString:
		return Value{typ: TypeString, s: bytes.Clone(src.s)}
	case TypeArray:
		out := Value{typ: TypeArray}
		if len(src.a) > 0 {
			out.a = make([]Value, len(src.a))
			for i := range src.a {
				out.a[i] = deepCopy(&src.a[i])
			}
		}
		return out
	case TypeObject:
		out := Value{typ: TypeObject}
		if len(src.o) > 0 {
			out.o = make([]Member, len(src.o))
			for i := range src.o {
				out.o[i].key = bytes.Clone(src.o[i].key)
				out.o[i].value = deepCopy(&src.o[i].value)
			}
		}
		return out
	default:
		return Value{typ: src.typ, n: src.n}
	}
}

// Move frees dst, transfers the payload of src into it and leaves src null.
// src may live inside dst.
func Move(dst, src *Value) {
	if dst == src {
		return
	}
	tmp := *src
	*src = Value{}
	dst.Free()
	*dst = tmp
}

// Swap exchanges the payloads of a and b.
func Swap(a, b *Value) {
	*a, *b = *b, *a
}

// SetArray frees v and makes it an empty array with room for capacity elements.
func (v *Value) SetArray(capacity int) {
	v.Free()
	if capacity > 0 {
		v.a = make([]Value, 0, capacity)
	}
	v.typ = TypeArray
}

// ArrayCapacity returns how many elements the array can hold before growing.
func (v *Value) ArrayCapacity() int {
	if v.typ != TypeArray {
		typeViolation("ArrayCapacity", TypeArray, v.typ)
	}
	return cap(v.a)
}

// PushBack appends a null element and returns it for the caller to set.
func (v *Value) PushBack() *Value {
	if v.typ != TypeArray {
		typeViolation("PushBack", TypeArray, v.typ)
	}
	v.a = append(v.a, Value{})
	return &v.a[len(v.a)-1]
}

// PopBack frees and removes the last element.
func (v *Value) PopBack() {
	if v.typ != TypeArray {
		typeViolation("PopBack", TypeArray, v.typ)
	}
	if len(v.a) == 0 {
		indexViolation("PopBack", TypeArray, 0, 0)
	}
	last := len(v.a) - 1
	v.a[last].Free()
	v.a = v.a[:last]
}

// InsertElement inserts a null element at index and returns it.
func (v *Value) InsertElement(index int) *Value {
	if v.typ != TypeArray {
		typeViolation("InsertElement", TypeArray, v.typ)
	}
	if index < 0 || index > len(v.a) {
		indexViolation("InsertElement", TypeArray, index, len(v.a)+1)
	}
	v.a = append(v.a, Value{})
	copy(v.a[index+1:], v.a[index:])
	v.a[index] = Value{}
	return &v.a[index]
}

// EraseElements frees and removes count elements starting at index.
func (v *Value) EraseElements(index, count int) {
	if v.typ != TypeArray {
		typeViolation("EraseElements", TypeArray, v.typ)
	}
	if count < 0 || index < 0 || index+count > len(v.a) {
		indexViolation("EraseElements", TypeArray, index+count, len(v.a))
	}
	for i := index; i < index+count; i++ {
		v.a[i].Free()
	}
	n := copy(v.a[index:], v.a[index+count:])
	clear(v.a[index+n:])
	v.a = v.a[:index+n]
}

// ClearArray frees every element, keeping the array's capacity.
func (v *Value) ClearArray() {
	v.EraseElements(0, v.ArraySize())
}

// SetObject frees v and makes it an empty object with room for capacity members.
func (v *Value) SetObject(capacity int) {
	v.Free()
	if capacity > 0 {
		v.o = make([]Member, 0, capacity)
	}
	v.typ = TypeObject
}

// ObjectCapacity returns how many members the object can hold before growing.
func (v *Value) ObjectCapacity() int {
	if v.typ != TypeObject {
		typeViolation("ObjectCapacity", TypeObject, v.typ)
	}
	return cap(v.o)
}

// FindObjectIndex returns the index of the first member named key.
func (v *Value) FindObjectIndex(key []byte) (int, bool) {
	if v.typ != TypeObject {
		typeViolation("FindObjectIndex", TypeObject, v.typ)
	}
	for i := range v.o {
		if bytes.Equal(v.o[i].key, key) {
			return i, true
		}
	}
	return -1, false
}

// FindObjectValue returns the value of the first member named key, or nil.
func (v *Value) FindObjectValue(key []byte) *Value {
	if i, ok := v.FindObjectIndex(key); ok {
		return &v.o[i].value
	}
	return nil
}

// SetObjectValue returns the value of the member named key, appending a
// null member with a copy of key when there is none.
func (v *Value) SetObjectValue(key []byte) *Value {
	if i, ok := v.FindObjectIndex(key); ok {
		return &v.o[i].value
	}
	v.o = append(v.o, Member{key: bytes.Clone(key)})
	if v.o[len(v.o)-1].key == nil {
		v.o[len(v.o)-1].key = []byte{}
	}
	return &v.o[len(v.o)-1].value
}

// RemoveObjectValue frees and removes the member at index, keeping order.
func (v *Value) RemoveObjectValue(index int) {
	if v.typ != TypeObject {
		typeViolation("RemoveObjectValue", TypeObject, v.typ)
	}
	if index < 0 || index >= len(v.o) {
		indexViolation("RemoveObjectValue", TypeObject, index, len(v.o))
	}
	v.o[index].free()
	copy(v.o[index:], v.o[index+1:])
	v.o[len(v.o)-1] = Member{}
	v.o = v.o[:len(v.o)-1]
}

// ClearObject frees every member, keeping the object's capacity.
func (v *Value) ClearObject() {
	if v.typ != TypeObject {
		typeViolation("ClearObject", TypeObject, v.typ)
	}
	for i := range v.o {
		v.o[i].free()
	}
	clear(v.o)
	v.o = v.o[:0]
}
