package types

import "testing"

func TestIntString(t *testing.T) {
	cases := []struct {
		i    Int
		want string
	}{
		{NewInt(0), "0"},
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
	}
	for _, c := range cases {
		if got := c.i.String(); got != c.want {
			t.Errorf("Int(%v).String() = %q, want %q", c.i, got, c.want)
		}
	}
}

func TestBoolString(t *testing.T) {
	if Bool(true).String() != "true" {
		t.Errorf("Bool(true).String() should be true")
	}
	if Bool(false).String() != "false" {
		t.Errorf("Bool(false).String() should be false")
	}
}

func TestIntern(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	if a != b {
		t.Errorf("Intern should return the same Symbol for the same name")
	}
	if string(a) != "foo" {
		t.Errorf("Intern(\"foo\") = %q, want foo", string(a))
	}
}

func TestListIsNil(t *testing.T) {
	var empty *List
	if !empty.IsNil() {
		t.Errorf("nil *List should report IsNil")
	}
	l := &List{Head: NewInt(1), Tail: (*List)(nil)}
	if l.IsNil() {
		t.Errorf("non-nil *List should not report IsNil")
	}
}

func TestNewList(t *testing.T) {
	l := NewList(NewInt(1), NewInt(2), NewInt(3))
	var got []int64
	cur := Value(l)
	for {
		list, ok := cur.(*List)
		if !ok || list == nil {
			break
		}
		got = append(got, list.Head.(Int).V.Int64())
		cur = list.Tail
	}
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("NewList produced %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNewListEmpty(t *testing.T) {
	l := NewList()
	if l != nil {
		t.Errorf("NewList() with no elements should be the empty list")
	}
}

func TestObjectKeysTypeFirst(t *testing.T) {
	o := NewObject()
	o.Set("x", NewInt(1))
	o.Set("type", Symbol("point"))
	o.Set("y", NewInt(2))

	keys := o.Keys()
	if len(keys) != 3 || keys[0] != "type" {
		t.Fatalf("Keys() = %v, want type first", keys)
	}
	if keys[1] != "x" || keys[2] != "y" {
		t.Fatalf("Keys() = %v, want insertion order after type", keys)
	}
}

func TestObjectGetHasCopy(t *testing.T) {
	o := NewObject()
	o.Set("a", NewInt(1))

	if !o.Has("a") {
		t.Errorf("Has(a) should be true after Set")
	}
	if o.Has("b") {
		t.Errorf("Has(b) should be false before Set")
	}
	if _, ok := o.Get("b"); ok {
		t.Errorf("Get(b) should report not-found")
	}

	cp := o.Copy()
	cp.Set("b", NewInt(2))
	if o.Has("b") {
		t.Errorf("Copy should not mutate the original object")
	}
	if !cp.Has("a") || !cp.Has("b") {
		t.Errorf("Copy should carry over existing properties")
	}
}

func TestObjectSetOverwritesWithoutDuplicatingKey(t *testing.T) {
	o := NewObject()
	o.Set("a", NewInt(1))
	o.Set("a", NewInt(2))
	if o.Len() != 1 {
		t.Fatalf("re-Set of an existing key should not grow Len(), got %d", o.Len())
	}
	v, _ := o.Get("a")
	if v.(Int).V.Int64() != 2 {
		t.Errorf("re-Set should overwrite the value")
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NewInt(1), KindInt},
		{Bool(true), KindBool},
		{String("s"), KindString},
		{Symbol("sym"), KindSymbol},
		{(*List)(nil), KindList},
		{NewObject(), KindObject},
		{&Builtin{Name: "x"}, KindBuiltin},
	}
	for _, c := range cases {
		if got := TypeName(c.v); got != c.want {
			t.Errorf("TypeName(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestBuiltinString(t *testing.T) {
	fb := &Builtin{Name: "cons", Macro: false}
	if fb.String() != "<builtin function cons>" {
		t.Errorf("Builtin.String() = %q", fb.String())
	}
	mb := &Builtin{Name: "def", Macro: true}
	if mb.String() != "<builtin macro def>" {
		t.Errorf("Builtin.String() = %q", mb.String())
	}
}
