package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Value {
	t.Helper()
	v := new(Value)
	require.NoError(t, Parse(v, text))
	t.Cleanup(v.Free)
	return v
}

func TestEqual(t *testing.T) {
	testcases := []struct {
		a, b  string
		equal bool
	}{
		{"true", "true", true},
		{"true", "false", false},
		{"false", "false", true},
		{"null", "null", true},
		{"null", "0", false},
		{"123", "123", true},
		{"123", "456", false},
		{`"abc"`, `"abc"`, true},
		{`"abc"`, `"abcd"`, false},
		{"[]", "[]", true},
		{"[1,2,3]", "[1,2,3]", true},
		{"[1,2,3]", "[1,2,4]", false},
		{"[1,2,3]", "[1,2]", false},
		{"[[]]", "[[]]", true},
		{"{}", "{}", true},
		{`{"a":1,"b":2}`, `{"a":1,"b":2}`, true},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`{"a":1,"b":2}`, `{"a":1,"b":3}`, false},
		{`{"a":1,"b":2}`, `{"a":1,"b":2,"c":3}`, false},
		{`{"a":{"b":{"c":{}}}}`, `{"a":{"b":{"c":{}}}}`, true},
		{`{"a":{"b":{"c":{}}}}`, `{"a":{"b":{"c":[]}}}`, false},
		{`{"a":1,"a":1}`, `{"a":1,"b":2}`, false},
		{`{"a":1,"a":2}`, `{"a":2,"a":1}`, true},
		{`{"a":1,"a":2}`, `{"a":1,"a":1}`, false},
	}
	for _, tc := range testcases {
		t.Run(tc.a+"~"+tc.b, func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)
			assert.Equal(t, tc.equal, Equal(a, b))
			assert.Equal(t, tc.equal, Equal(b, a))
		})
	}
}

func TestCopyMoveSwap(t *testing.T) {
	src := mustParse(t, `{"t":true,"f":false,"n":null,"d":1.5,"a":[1,2,3],"s":"x"}`)

	var cp Value
	cp.Copy(src)
	defer cp.Free()
	require.True(t, Equal(src, &cp))

	// Deep: mutating the copy leaves the source alone.
	cp.FindObjectValue([]byte("a")).Element(0).SetNumber(9)
	cp.FindObjectValue([]byte("s")).StringBytes()[0] = 'y'
	assert.Equal(t, 1.0, src.FindObjectValue([]byte("a")).Element(0).Number())
	assert.Equal(t, "x", src.FindObjectValue([]byte("s")).StringValue())

	var moved Value
	var again Value
	again.Copy(src)
	Move(&moved, &again)
	defer moved.Free()
	assert.Equal(t, TypeNull, again.Type())
	assert.True(t, Equal(src, &moved))

	var a, b Value
	a.SetStringValue("hello")
	b.SetNumber(2)
	Swap(&a, &b)
	assert.Equal(t, 2.0, a.Number())
	assert.Equal(t, "hello", b.StringValue())

	// Self operations are no-ops.
	a.Copy(&a)
	Move(&a, &a)
	assert.Equal(t, 2.0, a.Number())
}

func TestCopyMoveFromOwnChild(t *testing.T) {
	t.Run("CopyElement", func(t *testing.T) {
		var v Value
		require.NoError(t, Parse(&v, `[[1,2,3]]`))
		defer v.Free()

		v.Copy(v.Element(0))
		out, err := Stringify(&v)
		require.NoError(t, err)
		assert.Equal(t, `[1,2,3]`, out)
	})

	t.Run("CopyMemberValue", func(t *testing.T) {
		var v Value
		require.NoError(t, Parse(&v, `{"k":{"x":"y"},"z":null}`))
		defer v.Free()

		v.Copy(v.ObjectValue(0))
		out, err := Stringify(&v)
		require.NoError(t, err)
		assert.Equal(t, `{"x":"y"}`, out)
	})

	t.Run("MoveMemberValue", func(t *testing.T) {
		var v Value
		require.NoError(t, Parse(&v, `{"k":[1,2]}`))
		defer v.Free()

		Move(&v, v.ObjectValue(0))
		out, err := Stringify(&v)
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, out)
	})

	t.Run("MoveNestedElement", func(t *testing.T) {
		var v Value
		require.NoError(t, Parse(&v, `[0,[["deep"]]]`))
		defer v.Free()

		Move(&v, v.Element(1).Element(0))
		out, err := Stringify(&v)
		require.NoError(t, err)
		assert.Equal(t, `["deep"]`, out)
	})
}

func TestArrayMutators(t *testing.T) {
	var v Value
	v.SetArray(0)
	assert.Equal(t, TypeArray, v.Type())
	assert.Equal(t, 0, v.ArraySize())
	assert.Equal(t, 0, v.ArrayCapacity())

	v.SetArray(8)
	assert.Equal(t, 8, v.ArrayCapacity())

	for i := 0; i < 5; i++ {
		v.PushBack().SetNumber(float64(i))
	}
	require.Equal(t, 5, v.ArraySize())

	v.PopBack()
	require.Equal(t, 4, v.ArraySize())
	assert.Equal(t, 3.0, v.Element(3).Number())

	v.InsertElement(0).SetStringValue("head")
	v.InsertElement(v.ArraySize()).SetStringValue("tail")
	require.Equal(t, 6, v.ArraySize())
	assert.Equal(t, "head", v.Element(0).StringValue())
	assert.Equal(t, 0.0, v.Element(1).Number())
	assert.Equal(t, "tail", v.Element(5).StringValue())

	v.EraseElements(1, 2)
	require.Equal(t, 4, v.ArraySize())
	assert.Equal(t, "head", v.Element(0).StringValue())
	assert.Equal(t, 2.0, v.Element(1).Number())
	assert.Equal(t, 3.0, v.Element(2).Number())
	assert.Equal(t, "tail", v.Element(3).StringValue())

	v.EraseElements(0, 0)
	assert.Equal(t, 4, v.ArraySize())

	capacity := v.ArrayCapacity()
	v.ClearArray()
	assert.Equal(t, 0, v.ArraySize())
	assert.Equal(t, capacity, v.ArrayCapacity())

	assert.Panics(t, func() { v.PopBack() })
	assert.Panics(t, func() { v.InsertElement(1) })
	assert.Panics(t, func() { v.EraseElements(0, 1) })
}

func TestObjectMutators(t *testing.T) {
	var v Value
	v.SetObject(4)
	assert.Equal(t, TypeObject, v.Type())
	assert.Equal(t, 0, v.ObjectSize())
	assert.Equal(t, 4, v.ObjectCapacity())

	for i, key := range []string{"a", "b", "c"} {
		v.SetObjectValue([]byte(key)).SetNumber(float64(i))
	}
	require.Equal(t, 3, v.ObjectSize())

	// An existing key is reused rather than duplicated.
	v.SetObjectValue([]byte("b")).SetStringValue("B")
	require.Equal(t, 3, v.ObjectSize())
	assert.Equal(t, "B", v.FindObjectValue([]byte("b")).StringValue())

	i, ok := v.FindObjectIndex([]byte("c"))
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "c", v.Member(i).KeyString())
	assert.Equal(t, []byte("c"), v.ObjectKey(i))
	assert.Equal(t, 1, v.ObjectKeyLength(i))

	_, ok = v.FindObjectIndex([]byte("missing"))
	assert.False(t, ok)
	assert.Nil(t, v.FindObjectValue([]byte("missing")))

	v.RemoveObjectValue(0)
	require.Equal(t, 2, v.ObjectSize())
	assert.Equal(t, "b", v.Member(0).KeyString())
	assert.Equal(t, "c", v.Member(1).KeyString())

	v.SetObjectValue(nil).SetNull()
	empty, ok := v.FindObjectIndex([]byte{})
	require.True(t, ok)
	assert.NotNil(t, v.ObjectKey(empty))
	assert.Equal(t, 0, v.ObjectKeyLength(empty))

	capacity := v.ObjectCapacity()
	v.ClearObject()
	assert.Equal(t, 0, v.ObjectSize())
	assert.Equal(t, capacity, v.ObjectCapacity())

	assert.Panics(t, func() { v.RemoveObjectValue(0) })
}

func TestSetObjectValueOwnsKey(t *testing.T) {
	var v Value
	v.SetObject(0)
	defer v.Free()

	key := []byte("name")
	v.SetObjectValue(key).SetBoolean(true)
	key[0] = 'N'
	assert.NotNil(t, v.FindObjectValue([]byte("name")))
	assert.Nil(t, v.FindObjectValue([]byte("Name")))
}
