package core

import "fmt"

// lessThan implements `less?`: total order over (Int,Int), (String,
// String), and (List,List) pairs, comparing list elements structurally
// and iteratively (not recursively) so a long shared prefix does not
// grow the Go call stack. Mixed types are an error.
//
// Grounded on original_source/execution.py's Program.asl_less.
func lessThan(prog *Program, a, b Value) (Bool, error) {
	a, b = resolveThunks(a), resolveThunks(b)
	for {
		la, aok := a.(*List)
		lb, bok := b.(*List)
		if !aok || !bok {
			break
		}
		switch {
		case la != nil && lb == nil:
			return false, nil
		case la == nil && lb != nil:
			return true, nil
		case la == nil && lb == nil:
			return false, nil
		}
		headLess, err := lessThan(prog, la.Head, lb.Head)
		if err != nil {
			return false, err
		}
		if headLess {
			return true, nil
		}
		tailLess, err := lessThan(prog, lb.Head, la.Head)
		if err != nil {
			return false, err
		}
		if tailLess {
			return false, nil
		}
		a = resolveThunks(la.Tail)
		b = resolveThunks(lb.Tail)
	}
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return Bool(ai.V.Cmp(bi.V) < 0), nil
		}
	}
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			return Bool(as < bs), nil
		}
	}
	return false, fmt.Errorf("cannot use less? to compare %s and %s", typeName(a), typeName(b))
}

// equalValues implements `equal?`: structural equality, descending
// iteratively through list spines (comparing thunks by identity first,
// only resolving them on a mismatch) so a long shared prefix does not
// recurse.
//
// Grounded on original_source/execution.py's Program.asl_equal.
func equalValues(a, b Value) bool {
	if identicalThunk(a, b) {
		return true
	}
	a, b = resolveThunks(a), resolveThunks(b)
	for {
		la, aok := a.(*List)
		lb, bok := b.(*List)
		if !aok || !bok {
			break
		}
		if la == nil && lb == nil {
			return true
		}
		if la == nil || lb == nil {
			return false
		}
		if !equalValues(la.Head, lb.Head) {
			return false
		}
		if identicalThunk(la.Tail, lb.Tail) {
			return true
		}
		a = resolveThunks(la.Tail)
		b = resolveThunks(lb.Tail)
	}
	return scalarEqual(a, b)
}

func identicalThunk(a, b Value) bool {
	ta, aok := a.(*Thunk)
	tb, bok := b.(*Thunk)
	if aok && bok {
		return ta == tb
	}
	return false
}

func scalarEqual(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x.V.Cmp(y.V) == 0
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *List:
		y, ok := b.(*List)
		return ok && x == nil && y == nil
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !equalValues(xv, yv) {
				return false
			}
		}
		return true
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x == y
	default:
		return false
	}
}
