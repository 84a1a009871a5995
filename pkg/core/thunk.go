package core

import "github.com/dloscutoff/go-appleseed/pkg/types"

// Thunk is a deferred call: either a user-defined function/macro call
// waiting to be resolved, or a lazily-deferred tail position produced
// while resolving one. It lives in pkg/core (not pkg/types) because it
// must reference the *Program that created it, while still satisfying
// types.Value so it can sit in a list's Tail or any other value slot.
//
// Grounded on original_source/thunk.py's Thunk class.
type Thunk struct {
	prog *Program

	// params/body/rawArgs describe the deferred user-call: params is the
	// callee's parameter spec, body its expression, rawArgs the argument
	// syntax: for a function call, (q value) forms holding the arguments
	// newThunk already evaluated in the caller's frame; for a macro call,
	// the caller's raw syntax (see bindParams).
	params  Value
	body    Value
	rawArgs Value
	isMacro bool

	resolved   bool
	value      Value
	resolveErr error
}

// newThunk defers a user function/macro call instead of evaluating it
// immediately, which is what lets resolve's trampoline keep tail calls at
// O(1) host stack depth.
func newThunk(prog *Program, params, body, rawArgs Value, isMacro bool) *Thunk {
	if !isMacro {
		// Evaluate the arguments now, while the caller's frame is still the
		// topmost one; a tail call is resolved only after it is popped.
		var quoted []Value
		var evalErr error
		consIter(rawArgs, func(elem Value) bool {
			v, err := prog.eval(elem, false)
			quoted, evalErr = append(quoted, &List{Head: Symbol("q"), Tail: &List{Head: v, Tail: Nil}}), err
			return err == nil
		})
		if evalErr != nil {
			return &Thunk{prog: prog, resolved: true, value: prog.reportError("%s", evalErr.Error())}
		}
		rawArgs = types.NewList(quoted...)
	}
	return &Thunk{prog: prog, params: params, body: body, rawArgs: rawArgs, isMacro: isMacro}
}

func (t *Thunk) String() string {
	return "<thunk>"
}

// resolve runs exactly one step of the deferred call: push a local frame,
// bind parameters, rewrite macros/if/eval, and either evaluate the body to
// a final value or — if the body is itself a tail call to a user
// function — return a new, unresolved Thunk instead of recursing. Callers
// always go through resolveThunks, which loops until a non-Thunk value
// comes back, so a chain of tail calls never grows the Go call stack.
//
// Grounded on original_source/thunk.py's Thunk.resolve.
func (t *Thunk) resolve() (Value, error) {
	if t.resolved {
		return t.value, t.resolveErr
	}

	frame := t.prog.Env.PushLocal()
	popped := false
	pop := func() {
		if !popped {
			t.prog.Env.PopLocal()
			popped = true
		}
	}
	defer pop()

	if err := t.prog.bindParams(frame, t.params, t.rawArgs, t.isMacro); err != nil {
		t.resolved, t.value, t.resolveErr = true, Nil, nil
		t.prog.reportError("%s", err.Error())
		return Nil, nil
	}

	result := t.prog.evalBody(t.body)

	// Memoization happens only once the chain fully bottoms out; a Thunk
	// handed back by evalBody as an in-progress tail call is returned
	// as-is and resolveThunks will keep stepping it.
	if next, ok := result.(*Thunk); ok {
		pop()
		return next, nil
	}

	t.resolved = true
	t.value = result
	return result, nil
}

// resolveThunks repeatedly steps v until it is no longer a *Thunk. This is
// the trampoline: every tail call to a user function returns a fresh
// Thunk instead of recursing into resolve, so this loop — not the Go call
// stack — carries the iteration count.
//
// Grounded on original_source/thunk.py's resolve_thunks.
func resolveThunks(v Value) Value {
	for {
		th, ok := v.(*Thunk)
		if !ok {
			return v
		}
		next, err := th.resolve()
		if err != nil {
			return Nil
		}
		v = next
	}
}

// consIter walks a (possibly improper, possibly thunk-tailed) cons chain,
// resolving each tail as it goes, and calls fn with each element. It
// stops at the first non-list tail (nil included) without forcing any
// further laziness than required to reach it — this is how printing and
// iteration over an infinite lazy list like `ones` can work without
// requesting more of the list than they consume.
//
// Grounded on original_source/thunk.py's cons_iter.
func consIter(v Value, fn func(elem Value) bool) {
	cur := resolveThunks(v)
	for {
		list, ok := cur.(*List)
		if !ok || list == nil {
			return
		}
		if !fn(list.Head) {
			return
		}
		cur = resolveThunks(list.Tail)
	}
}
