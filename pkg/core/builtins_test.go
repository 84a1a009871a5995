package core

import "testing"

func TestHeadTailOfEmptyListIsNil(t *testing.T) {
	prog, sink := newTestProgram(t)
	h := run(prog, `(head (list))`)
	if h != Nil {
		t.Errorf("(head (list)) = %v, want Nil", h)
	}
	tl := run(prog, `(tail (list))`)
	if tl != Nil {
		t.Errorf("(tail (list)) = %v, want Nil", tl)
	}
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
}

func TestHeadTailOfNonListIsAnError(t *testing.T) {
	prog, sink := newTestProgram(t)
	run(prog, `(head 5)`)
	run(prog, `(tail "x")`)
	if len(sink.errors) != 2 {
		t.Fatalf("errors = %v, want two type errors", sink.errors)
	}
}

func TestConsOntoNonListIsAnError(t *testing.T) {
	prog, sink := newTestProgram(t)
	run(prog, `(cons 1 2)`)
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %v, want one cons error", sink.errors)
	}
}

func TestArithmeticOnNonIntsIsAnError(t *testing.T) {
	prog, sink := newTestProgram(t)
	run(prog, `(add 1 "x")`)
	run(prog, `(sub true 1)`)
	run(prog, `(mul (q y) 1)`)
	if len(sink.errors) != 3 {
		t.Fatalf("errors = %v, want three arithmetic type errors", sink.errors)
	}
}

func TestModByZeroIsReportedNotPanicked(t *testing.T) {
	prog, sink := newTestProgram(t)
	v := run(prog, `(mod 7 0)`)
	if v != Nil {
		t.Errorf("(mod 7 0) = %v, want Nil on error", v)
	}
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %v, want one mod-by-zero error", sink.errors)
	}
}

func TestModAndDivMatchFloorDivisionOfNonNegatives(t *testing.T) {
	prog, _ := newTestProgram(t)
	q := run(prog, `(div 7 2)`)
	if asInt64(t, q) != 3 {
		t.Errorf("(div 7 2) = %v, want 3", q)
	}
	m := run(prog, `(mod 7 2)`)
	if asInt64(t, m) != 1 {
		t.Errorf("(mod 7 2) = %v, want 1", m)
	}
}

func TestModAndDivFloorTowardNegativeInfinityWithNegativeDivisor(t *testing.T) {
	// Matches Python's // and %, where the remainder takes the sign of
	// the divisor: 7 // -2 == -4, 7 % -2 == -1.
	prog, _ := newTestProgram(t)
	q := run(prog, `(div 7 -2)`)
	if asInt64(t, q) != -4 {
		t.Errorf("(div 7 -2) = %v, want -4", q)
	}
	m := run(prog, `(mod 7 -2)`)
	if asInt64(t, m) != -1 {
		t.Errorf("(mod 7 -2) = %v, want -1", m)
	}

	q2 := run(prog, `(div -7 2)`)
	if asInt64(t, q2) != -4 {
		t.Errorf("(div -7 2) = %v, want -4", q2)
	}
	m2 := run(prog, `(mod -7 2)`)
	if asInt64(t, m2) != 1 {
		t.Errorf("(mod -7 2) = %v, want 1", m2)
	}
}

func TestTypeBuiltinAcrossKinds(t *testing.T) {
	prog, _ := newTestProgram(t)
	cases := map[string]string{
		`(type 1)`:          "Int",
		`(type true)`:       "Bool",
		`(type "x")`:        "String",
		`(type (q y))`:      "Symbol",
		`(type (list 1 2))`: "List",
		`(type (list))`:     "List",
		`(type (object))`:   "Object",
		`(type add)`:        "Builtin",
	}
	for expr, want := range cases {
		got := run(prog, expr)
		s, ok := got.(Symbol)
		if !ok || string(s) != want {
			t.Errorf("%s = %v, want Symbol(%s)", expr, got, want)
		}
	}
}

func TestDebugPrintsAndReturnsSecondArgument(t *testing.T) {
	prog, sink := newTestProgram(t)
	v := run(prog, `(debug "tag" 42)`)
	if asInt64(t, v) != 42 {
		t.Errorf("(debug ...) = %v, want 42 (its second argument)", v)
	}
	if len(sink.warns) != 1 {
		t.Fatalf("warns = %v, want one debug print", sink.warns)
	}
}

func TestStrAndCharsRoundTrip(t *testing.T) {
	prog, sink := newTestProgram(t)
	s := run(prog, `(str (chars "hi"))`)
	if s != String("hi") {
		t.Errorf("(str (chars \"hi\")) = %v, want String(hi)", s)
	}
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}
}

func TestStrRejectsNonIntList(t *testing.T) {
	prog, sink := newTestProgram(t)
	run(prog, `(str (list "a" "b"))`)
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %v, want one conversion error", sink.errors)
	}
}

func TestStrWarnsAndSkipsOutOfRangeCodepoints(t *testing.T) {
	prog, sink := newTestProgram(t)
	s := run(prog, `(str (list 104 -1 105))`)
	if s != String("hi") {
		t.Errorf("(str (list 104 -1 105)) = %v, want String(hi) with the bad codepoint skipped", s)
	}
	if len(sink.warns) != 1 {
		t.Fatalf("warns = %v, want one cannot-convert warning", sink.warns)
	}
	if len(sink.errors) != 0 {
		t.Fatalf("unexpected errors: %v", sink.errors)
	}

	s2 := run(prog, `(str (list 104 1114112 105))`)
	if s2 != String("hi") {
		t.Errorf("(str (list 104 1114112 105)) = %v, want String(hi), 0x110000 is past the max codepoint", s2)
	}
	if len(sink.warns) != 2 {
		t.Fatalf("warns = %v, want two cannot-convert warnings total", sink.warns)
	}
}

func TestBoolBuiltinReflectsTruthiness(t *testing.T) {
	prog, _ := newTestProgram(t)
	cases := map[string]bool{
		`(bool 0)`:        false,
		`(bool 1)`:        true,
		`(bool (list))`:   false,
		`(bool (list 1))`: true,
		`(bool false)`:    false,
		`(bool "")`:       false,
		`(bool "x")`:      true,
	}
	for expr, want := range cases {
		got := run(prog, expr)
		if got != Bool(want) {
			t.Errorf("%s = %v, want %v", expr, got, want)
		}
	}
}

func TestEqualBuiltinBuiltinName(t *testing.T) {
	prog, _ := newTestProgram(t)
	v := run(prog, `(equal? (list 1 2) (list 1 2))`)
	if v != Bool(true) {
		t.Errorf("(equal? (list 1 2) (list 1 2)) = %v, want true", v)
	}
}
