// Package core implements the appleseed evaluator: the value model's
// behavior (truthiness, equality, ordering, printing), the environment,
// the thunk-based tail-call trampoline, the macro rewriter, the parameter
// binder, and the builtin operator set spec.md §4 describes.
package core

import "github.com/dloscutoff/go-appleseed/pkg/types"

// Local aliases keep this package's signatures close to the spec's own
// vocabulary (Value, List, Symbol, ...) without a types. prefix on every
// line; pkg/types remains the single owner of these definitions.
type (
	Value   = types.Value
	List    = types.List
	Object  = types.Object
	Builtin = types.Builtin
	Symbol  = types.Symbol
	Int     = types.Int
	Bool    = types.Bool
	String  = types.String
)

var (
	NewInt    = types.NewInt
	NewObject = types.NewObject
)

// Nil is the canonical empty list, the language's only "falsy, no data"
// value.
var Nil Value = (*types.List)(nil)

func isNilList(v Value) bool {
	l, ok := v.(*List)
	return ok && l == nil
}
