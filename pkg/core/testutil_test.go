package core

import (
	"fmt"
	"testing"
)

// captureSink records every diagnostic instead of printing it, so tests
// can assert on exact error/warning text.
type captureSink struct {
	errors []string
	warns  []string
}

func (c *captureSink) Errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *captureSink) Warnf(format string, args ...any) {
	c.warns = append(c.warns, fmt.Sprintf(format, args...))
}

// newTestProgram builds a Program rooted at a scratch directory, with a
// sink that records diagnostics for inspection instead of writing them
// anywhere.
func newTestProgram(t *testing.T) (*Program, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	prog := NewProgram(t.TempDir(), Options{MaxListItems: 0}, sink)
	return prog, sink
}

// run parses source (which may contain several top-level forms) and
// evaluates each in turn, returning the thunk-resolved result of the
// last one.
func run(p *Program, source string) Value {
	var result Value = Nil
	for _, expr := range p.parseAll(source) {
		result = resolveThunks(p.Eval(expr))
	}
	return result
}

func asInt64(t *testing.T, v Value) int64 {
	t.Helper()
	i, ok := v.(Int)
	if !ok {
		t.Fatalf("value %#v is not an Int", v)
	}
	return i.V.Int64()
}
