// Package types defines the value model of the appleseed language: the
// tagged union of Int, Bool, String, Symbol, List, Object and Builtin that
// every expression evaluates to.
//
// This package intentionally knows nothing about evaluation. Environments,
// thunks and the evaluator live in pkg/core, which imports this package; a
// Thunk defined there still satisfies Value here without either package
// importing the other twice.
package types

import (
	"math/big"
)

// Value is any first-class appleseed value.
type Value interface {
	String() string
}

// Int is an arbitrary-precision signed integer.
type Int struct {
	V *big.Int
}

func NewInt(i int64) Int {
	return Int{V: big.NewInt(i)}
}

func NewIntFromBig(b *big.Int) Int {
	return Int{V: b}
}

func (i Int) String() string { return i.V.String() }

// Bool is a distinct type from Int, even though falsiness treats false
// like 0 (see Truthy in pkg/core).
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// String is an immutable sequence of Unicode codepoints.
type String string

func (s String) String() string { return string(s) }

// Symbol is an immutable interned name.
type Symbol string

var internTable = make(map[string]Symbol)

// Intern returns the canonical Symbol for name. Symbols are small and
// comparable as plain Go strings already, but interning keeps construction
// sites (the reader, macro substitution) from allocating duplicate names.
func Intern(name string) Symbol {
	if sym, ok := internTable[name]; ok {
		return sym
	}
	sym := Symbol(name)
	internTable[name] = sym
	return sym
}

func (s Symbol) String() string { return string(s) }

// List is a cons cell. The empty list is the untyped nil *List, so it can
// be compared with == and passed around without a separate "Nil" case.
//
// Tail is typed Value, not *List, because an unresolved tail (laziness, see
// spec §8 scenario 5 and §9) may be a *core.Thunk rather than a *List.
type List struct {
	Head Value
	Tail Value
}

// NewList builds a proper list from evaluated elements, right to left.
func NewList(elements ...Value) *List {
	var tail Value = (*List)(nil)
	for i := len(elements) - 1; i >= 0; i-- {
		tail = &List{Head: elements[i], Tail: tail}
	}
	if l, ok := tail.(*List); ok {
		return l
	}
	return nil
}

func (l *List) String() string {
	// Listing is normally done through core's repr/print, which resolve
	// thunks as they walk the list; this String is only a fallback for
	// %v-style debugging and does not force anything.
	if l == nil {
		return "()"
	}
	out := "("
	cur := Value(l)
	first := true
	for {
		list, ok := cur.(*List)
		if !ok || list == nil {
			break
		}
		if !first {
			out += " "
		}
		first = false
		if list.Head == nil {
			out += "nil"
		} else {
			out += list.Head.String()
		}
		cur = list.Tail
	}
	out += ")"
	return out
}

// IsNil reports whether l is the empty list.
func (l *List) IsNil() bool { return l == nil }

// Object is an ordered, string-keyed property map. A "type" property, if
// present, is printed first (see spec §3).
type Object struct {
	keys []string
	vals map[string]Value
}

func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

func (o *Object) Set(name string, v Value) {
	if _, exists := o.vals[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.vals[name] = v
}

func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.vals[name]
	return v, ok
}

func (o *Object) Has(name string) bool {
	_, ok := o.vals[name]
	return ok
}

// Keys returns property names in the order that puts "type" first, if
// present, then insertion order for the rest.
func (o *Object) Keys() []string {
	ordered := make([]string, 0, len(o.keys))
	if o.Has("type") {
		ordered = append(ordered, "type")
	}
	for _, k := range o.keys {
		if k != "type" {
			ordered = append(ordered, k)
		}
	}
	return ordered
}

// Copy returns a shallow clone of o.
func (o *Object) Copy() *Object {
	c := NewObject()
	for _, k := range o.Keys() {
		v, _ := o.Get(k)
		c.Set(k, v)
	}
	return c
}

func (o *Object) Len() int { return len(o.keys) }

func (o *Object) String() string {
	out := "{"
	first := true
	for _, k := range o.Keys() {
		if !first {
			out += " "
		}
		first = false
		v, _ := o.Get(k)
		var vs string
		if v == nil {
			vs = "nil"
		} else {
			vs = v.String()
		}
		out += "(" + k + " " + vs + ")"
	}
	out += "}"
	return out
}

// Builtin is an opaque reference to a core operator.
//
// Call's signature is deliberately evaluator-agnostic ([]Value -> (Value,
// error)): the closures assigned to Call live in pkg/core and close over
// the owning *core.Program, so this package never needs to import core.
type Builtin struct {
	Name    string
	Macro   bool
	MinArgs int
	MaxArgs int // -1 means unbounded
	Call    func(args []Value) (Value, error)
}

func (b *Builtin) String() string {
	kind := "function"
	if b.Macro {
		kind = "macro"
	}
	return "<builtin " + kind + " " + b.Name + ">"
}

// Kind names match the spec's `type` builtin.
const (
	KindInt     = "Int"
	KindBool    = "Bool"
	KindString  = "String"
	KindSymbol  = "Symbol"
	KindList    = "List"
	KindObject  = "Object"
	KindBuiltin = "Builtin"
)

// TypeName returns the `type` builtin's answer for v. Thunks are not
// handled here — callers resolve thunks before calling TypeName, since
// only pkg/core knows how to resolve one.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return KindInt
	case Bool:
		return KindBool
	case String:
		return KindString
	case Symbol:
		return KindSymbol
	case *List:
		return KindList
	case *Object:
		return KindObject
	case *Builtin:
		return KindBuiltin
	default:
		return "Unknown"
	}
}
