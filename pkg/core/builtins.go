package core

import (
	"math/big"
	"unicode/utf8"
)

// makeBuiltins constructs every builtin function/macro, closing over
// prog so their Call implementations can recurse into prog.eval,
// prog.repr, prog.Load, and so on.
//
// The builtin set and names mirror original_source/execution.py's
// `builtins` dict exactly: the left-hand Python method names below are
// given as doc references, not carried into Go identifiers.
func makeBuiltins(prog *Program) map[Symbol]*Builtin {
	list := []*Builtin{
		// asl_cons
		fn("cons", 2, 2, func(args []Value) (Value, error) {
			head, tail := args[0], args[1]
			if _, ok := tail.(*List); ok {
				return &List{Head: head, Tail: tail}, nil
			}
			if _, ok := tail.(*Thunk); ok {
				return &List{Head: head, Tail: tail}, nil
			}
			return prog.reportError("cannot cons to %s in this language", typeName(tail)), nil
		}),
		// asl_head
		fnResolved("head", 1, 1, func(args []Value) (Value, error) {
			l, ok := args[0].(*List)
			if !ok {
				return prog.reportError("cannot get head of %s", typeName(args[0])), nil
			}
			if l == nil {
				return Nil, nil
			}
			return l.Head, nil
		}),
		// asl_tail
		fnResolved("tail", 1, 1, func(args []Value) (Value, error) {
			l, ok := args[0].(*List)
			if !ok {
				return prog.reportError("cannot get tail of %s", typeName(args[0])), nil
			}
			if l == nil {
				return Nil, nil
			}
			return l.Tail, nil
		}),
		fnResolved("add", 2, 2, arith("add", func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) })),
		fnResolved("sub", 2, 2, arith("subtract", func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) })),
		fnResolved("mul", 2, 2, arith("multiply", func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) })),
		fnResolved("div", 2, 2, func(args []Value) (Value, error) {
			a, aok := asInt(args[0])
			b, bok := asInt(args[1])
			if !aok || !bok {
				return prog.reportError("cannot divide %s and %s", typeName(args[0]), typeName(args[1])), nil
			}
			if b.V.Sign() == 0 {
				return prog.reportError("division by zero"), nil
			}
			q, _ := floorDivMod(a.V, b.V)
			return Int{V: q}, nil
		}),
		fnResolved("mod", 2, 2, func(args []Value) (Value, error) {
			a, aok := asInt(args[0])
			b, bok := asInt(args[1])
			if !aok || !bok {
				return prog.reportError("cannot mod %s and %s", typeName(args[0]), typeName(args[1])), nil
			}
			if b.V.Sign() == 0 {
				return prog.reportError("mod by zero"), nil
			}
			_, m := floorDivMod(a.V, b.V)
			return Int{V: m}, nil
		}),
		fnResolved("less?", 2, 2, func(args []Value) (Value, error) {
			result, err := lessThan(prog, args[0], args[1])
			if err != nil {
				return prog.reportError("%s", err.Error()), nil
			}
			return result, nil
		}),
		fn("equal?", 2, 2, func(args []Value) (Value, error) {
			return Bool(equalValues(args[0], args[1])), nil
		}),
		// asl_eval is handled specially by the evaluator/macro rewriter,
		// but is still registered as a builtin so it can be looked up,
		// shadowed-checked, and printed like any other name.
		fn("eval", 1, 1, func(args []Value) (Value, error) {
			return prog.eval(args[0], false)
		}),
		fnResolved("type", 1, 1, func(args []Value) (Value, error) {
			return Symbol(typeName(args[0])), nil
		}),
		fnResolved("debug", 2, 2, func(args []Value) (Value, error) {
			if args[0] != nil {
				prog.Errors.Warnf("%s", prog.repr(args[0]))
			}
			return args[1], nil
		}),
		fnResolved("str", 1, 1, func(args []Value) (Value, error) {
			l, ok := args[0].(*List)
			if !ok {
				return prog.reportError("argument of str must be list of Ints, not %s", typeName(args[0])), nil
			}
			var sb []rune
			var convErr error
			consIter(l, func(elem Value) bool {
				i, ok := asInt(elem)
				if !ok {
					convErr = errorf("argument of str must be list of Ints, not of %s", typeName(elem))
					return false
				}
				if !i.V.IsInt64() || !utf8.ValidRune(rune(i.V.Int64())) {
					prog.warn("cannot convert %s to character", i.V.String())
					return true
				}
				sb = append(sb, rune(i.V.Int64()))
				return true
			})
			if convErr != nil {
				return prog.reportError("%s", convErr.Error()), nil
			}
			return String(string(sb)), nil
		}),
		fnResolved("chars", 1, 1, func(args []Value) (Value, error) {
			s, ok := args[0].(String)
			if !ok {
				return prog.reportError("argument of chars must be String, not %s", typeName(args[0])), nil
			}
			runes := []rune(string(s))
			var result Value = Nil
			for i := len(runes) - 1; i >= 0; i-- {
				result = &List{Head: NewInt(int64(runes[i])), Tail: result}
			}
			return result, nil
		}),
		fnResolved("repr", 1, 1, func(args []Value) (Value, error) {
			return String(prog.repr(args[0])), nil
		}),
		fnResolved("bool", 1, 1, func(args []Value) (Value, error) {
			return Bool(Truthy(args[0])), nil
		}),
	}

	table := make(map[Symbol]*Builtin, len(list)+len(macroBuiltins(prog)))
	for _, b := range list {
		table[Symbol(b.Name)] = b
	}
	for _, b := range macroBuiltins(prog) {
		table[Symbol(b.Name)] = b
	}
	for _, b := range replBuiltins(prog) {
		table[Symbol(b.Name)] = b
	}
	return table
}

func fn(name string, min, max int, call func([]Value) (Value, error)) *Builtin {
	return &Builtin{Name: name, Macro: false, MinArgs: min, MaxArgs: max, Call: call}
}

func macroFn(name string, min, max int, call func([]Value) (Value, error)) *Builtin {
	return &Builtin{Name: name, Macro: true, MinArgs: min, MaxArgs: max, Call: call}
}

// fnResolved wraps call so every argument is resolved (thunks forced)
// before the implementation runs, matching execution.py's @no_thunks
// decorator used on most non-lazy builtins (cons, equal? and eval are
// the deliberate exceptions).
func fnResolved(name string, min, max int, call func([]Value) (Value, error)) *Builtin {
	return fn(name, min, max, func(args []Value) (Value, error) {
		resolved := make([]Value, len(args))
		for i, a := range args {
			resolved[i] = resolveThunks(a)
		}
		return call(resolved)
	})
}

func asInt(v Value) (Int, bool) {
	i, ok := v.(Int)
	return i, ok
}

func arith(verb string, op func(a, b *big.Int) *big.Int) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		a, aok := asInt(args[0])
		b, bok := asInt(args[1])
		if !aok || !bok {
			return nil, errorf("cannot %s %s and %s", verb, typeNameOrPanic(args[0]), typeNameOrPanic(args[1]))
		}
		return Int{V: op(a.V, b.V)}, nil
	}
}

// floorDivMod computes floored division, matching Python's // and %
// (asl_div/asl_mod in execution.py): the remainder takes the sign of
// the divisor. big.Int.QuoRem truncates toward zero instead, so the
// quotient and remainder are adjusted by one step whenever a nonzero
// remainder's sign disagrees with the divisor's.
func floorDivMod(a, b *big.Int) (q, m *big.Int) {
	q = new(big.Int)
	m = new(big.Int)
	q.QuoRem(a, b, m)
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		m.Add(m, b)
	}
	return q, m
}

func typeNameOrPanic(v Value) string {
	return TypeNameOf(v)
}
