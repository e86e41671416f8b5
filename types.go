package jsontree

// Type is the tag of a Value.
type Type int

const (
	TypeNull Type = iota
	TypeFalse
	TypeTrue
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeFalse:
		return "false"
	case TypeTrue:
		return "true"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of a JSON value tree.
//
// The zero Value is null. A Value exclusively owns its string bytes, array
// elements and object members; no two Values share storage. Only the payload
// field selected by the tag is meaningful.
type Value struct {
	typ Type
	n   float64
	s   []byte
	a   []Value
	o   []Member
}

// Member is one key/value pair of an object.
type Member struct {
	key   []byte
	value Value
}

// Key returns the member key bytes. The slice is owned by the member.
func (m *Member) Key() []byte { return m.key }

// KeyString returns the member key as a string.
func (m *Member) KeyString() string { return string(m.key) }

// Value returns the member value.
func (m *Member) Value() *Value { return &m.value }

// free releases the key and the value of the member.
func (m *Member) free() {
	m.key = nil
	m.value.Free()
}
