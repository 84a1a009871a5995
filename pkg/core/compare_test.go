package core

import "testing"

func TestLessThanInts(t *testing.T) {
	prog, _ := newTestProgram(t)
	lt, err := lessThan(prog, NewInt(1), NewInt(2))
	if err != nil || !bool(lt) {
		t.Fatalf("lessThan(1, 2) = %v, %v, want true, nil", lt, err)
	}
	lt, err = lessThan(prog, NewInt(2), NewInt(1))
	if err != nil || bool(lt) {
		t.Fatalf("lessThan(2, 1) = %v, %v, want false, nil", lt, err)
	}
}

func TestLessThanStrings(t *testing.T) {
	prog, _ := newTestProgram(t)
	lt, err := lessThan(prog, String("abc"), String("abd"))
	if err != nil || !bool(lt) {
		t.Fatalf("lessThan(abc, abd) = %v, %v, want true, nil", lt, err)
	}
}

func TestLessThanListsCompareElementwise(t *testing.T) {
	prog, _ := newTestProgram(t)
	shorter := &List{Head: NewInt(1), Tail: Nil}
	longer := &List{Head: NewInt(1), Tail: &List{Head: NewInt(2), Tail: Nil}}
	lt, err := lessThan(prog, shorter, longer)
	if err != nil || !bool(lt) {
		t.Fatalf("lessThan((1), (1 2)) = %v, %v, want true, nil", lt, err)
	}
	lt, err = lessThan(prog, longer, shorter)
	if err != nil || bool(lt) {
		t.Fatalf("lessThan((1 2), (1)) = %v, %v, want false, nil", lt, err)
	}
}

func TestLessThanMixedTypesErrors(t *testing.T) {
	prog, _ := newTestProgram(t)
	_, err := lessThan(prog, NewInt(1), String("a"))
	if err == nil {
		t.Fatalf("lessThan(1, \"a\") should error on mixed types")
	}
}

func TestEqualValuesStructural(t *testing.T) {
	a := &List{Head: NewInt(1), Tail: &List{Head: NewInt(2), Tail: Nil}}
	b := &List{Head: NewInt(1), Tail: &List{Head: NewInt(2), Tail: Nil}}
	if !equalValues(a, b) {
		t.Errorf("equalValues should compare lists structurally, not by identity")
	}
	c := &List{Head: NewInt(1), Tail: &List{Head: NewInt(3), Tail: Nil}}
	if equalValues(a, c) {
		t.Errorf("lists with different elements should not be equal")
	}
}

func TestEqualValuesObjectsCompareByContent(t *testing.T) {
	o1 := NewObject()
	o1.Set("type", Symbol("point"))
	o1.Set("x", NewInt(1))
	o2 := NewObject()
	o2.Set("type", Symbol("point"))
	o2.Set("x", NewInt(1))
	if !equalValues(o1, o2) {
		t.Errorf("objects with the same properties should be equal")
	}
	o2.Set("x", NewInt(2))
	if equalValues(o1, o2) {
		t.Errorf("objects with different property values should not be equal")
	}
}

func TestLanguageLevelEqualAndLess(t *testing.T) {
	prog, sink := newTestProgram(t)

	eq := run(prog, `(equal? (cons 1 (cons 2 ())) (cons 1 (cons 2 ())))`)
	if eq != Bool(true) {
		t.Errorf("(equal? (1 2) (1 2)) = %v, want true", eq)
	}

	lt := run(prog, `(less? 1 2)`)
	if lt != Bool(true) {
		t.Errorf("(less? 1 2) = %v, want true", lt)
	}

	run(prog, `(less? 1 "a")`)
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %v, want one mixed-type error", sink.errors)
	}
}
