package core

import (
	"fmt"
	"strings"

	"github.com/dloscutoff/go-appleseed/pkg/types"
)

// Truthy implements the language's falsiness rule: 0, false, nil, the
// empty string, and the empty object are falsy; everything else is
// truthy.
func Truthy(v Value) bool {
	v = resolveThunks(v)
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Int:
		return x.V.Sign() != 0
	case String:
		return x != ""
	case *List:
		return x != nil
	case *Object:
		return x.Len() != 0
	default:
		return true
	}
}

func typeName(v Value) string {
	v = resolveThunks(v)
	return TypeNameOf(v)
}

// TypeNameOf is the `type` builtin's answer for an already-resolved
// value.
func TypeNameOf(v Value) string {
	return types.TypeName(v)
}

// Eval evaluates expr at top level (enabling top-level-only macros like
// `def` and `load`), reporting any error to the sink and returning nil in
// its place. It does not display the result; ExecuteExpression does.
func (p *Program) Eval(expr Value) Value {
	v, err := p.eval(expr, true)
	if err != nil {
		return p.reportError("%s", err.Error())
	}
	return v
}

// eval is the evaluator proper (spec §4.5). Grounded on
// original_source/execution.py's Program.asl_eval.
func (p *Program) eval(code Value, topLevel bool) (Value, error) {
	code = resolveThunks(code)

	if l, ok := code.(*List); ok && l != nil {
		headVal, err := p.eval(l.Head, false)
		if err != nil {
			return nil, err
		}
		rawArgs := l.Tail

		head, rest, err := p.resolveMacros(headVal, rawArgs)
		if err != nil {
			return nil, err
		}
		head = resolveThunks(head)

		if head == nil {
			// resolveMacros bottomed out at a plain value, not another
			// call form.
			return p.eval(rest, topLevel)
		}

		if callList, ok := head.(*List); ok && callList != nil {
			return p.call(head, rest)
		}

		if builtin, ok := head.(*Builtin); ok {
			if !p.Options.REPL && isREPLOnly(builtin.Name) {
				return nil, errorf("%s can only be used in repl mode", builtin.Name)
			}
			if !topLevel && (isTopLevelOnly(builtin.Name) || isREPLOnly(builtin.Name)) {
				return nil, errorf("%s cannot be called from a user-defined function", builtin.Name)
			}
			var args []Value
			if builtin.Macro {
				consIter(rest, func(elem Value) bool {
					args = append(args, elem)
					return true
				})
			} else {
				var evalErr error
				consIter(rest, func(elem Value) bool {
					v, err := p.eval(elem, false)
					if err != nil {
						evalErr = err
						return false
					}
					args = append(args, v)
					return true
				})
				if evalErr != nil {
					return nil, evalErr
				}
			}
			if len(args) < builtin.MinArgs {
				return nil, errorf("%s takes at least %d arguments, got %d", builtin.Name, builtin.MinArgs, len(args))
			}
			if builtin.MaxArgs >= 0 && len(args) > builtin.MaxArgs {
				return nil, errorf("%s takes at most %d arguments, got %d", builtin.Name, builtin.MaxArgs, len(args))
			}
			return builtin.Call(args)
		}

		return nil, errorf("%s is not a function or macro", p.repr(head))
	}

	if isNilList(code) {
		return Nil, nil
	}

	switch v := code.(type) {
	case Symbol:
		if val, ok := p.Env.Lookup(v); ok {
			return val, nil
		}
		return nil, errorf("referencing undefined name %s", v)
	case Int, Bool, String, *Object, *Builtin:
		return v, nil
	default:
		return nil, errorf("unknown expression type %T", v)
	}
}

// call defers a user-defined function/macro invocation as a Thunk,
// matching original_source/execution.py's Program.call/call_data.
func (p *Program) call(function, rawArgs Value) (Value, error) {
	parts := flattenList(function, 3)
	if len(parts) != 2 {
		if len(parts) > 2 {
			return nil, errorf("list callable as function must have 2 elements, not more")
		}
		return nil, errorf("list callable as function must have 2 elements, not %d", len(parts))
	}
	params, body := parts[0], parts[1]
	return newThunk(p, params, body, rawArgs, false), nil
}

// CallValue invokes handler (a user-defined function list or a
// *Builtin) with already-evaluated args, the way pkg/driver's event loop
// invokes an event handler looked up from the global frame.
//
// Grounded on original_source/builtin_events.py's `environment.call`
// (called with pre-built tuples of already-evaluated event objects).
func (p *Program) CallValue(handler Value, args ...Value) Value {
	var rawArgs Value = Nil
	for i := len(args) - 1; i >= 0; i-- {
		quoted := &List{Head: Symbol("q"), Tail: &List{Head: args[i], Tail: Nil}}
		rawArgs = &List{Head: quoted, Tail: rawArgs}
	}

	if l, ok := handler.(*List); ok && l != nil {
		v, err := p.call(handler, rawArgs)
		if err != nil {
			return p.reportError("%s", err.Error())
		}
		return resolveThunks(v)
	}
	if b, ok := handler.(*Builtin); ok {
		var evaluated []Value
		var evalErr error
		if b.Macro {
			evaluated = args
		} else {
			consIter(rawArgs, func(elem Value) bool {
				v, err := p.eval(elem, false)
				if err != nil {
					evalErr = err
					return false
				}
				evaluated = append(evaluated, v)
				return true
			})
		}
		if evalErr != nil {
			return p.reportError("%s", evalErr.Error())
		}
		v, err := b.Call(evaluated)
		if err != nil {
			return p.reportError("%s", err.Error())
		}
		return v
	}
	return p.reportError("%s is not a function or macro", p.repr(handler))
}

// evalBody evaluates a thunk's body after its frame has been populated,
// detecting a direct tail call to another user-defined function/macro so
// the caller (Thunk.resolve) can return a fresh Thunk instead of
// recursing.
func (p *Program) evalBody(body Value) Value {
	body = resolveThunks(body)
	l, ok := body.(*List)
	if !ok || l == nil {
		v, err := p.eval(body, false)
		if err != nil {
			return p.reportError("%s", err.Error())
		}
		return v
	}

	headVal, err := p.eval(l.Head, false)
	if err != nil {
		return p.reportError("%s", err.Error())
	}
	head, rest, err := p.resolveMacros(headVal, l.Tail)
	if err != nil {
		return p.reportError("%s", err.Error())
	}
	head = resolveThunks(head)

	if head == nil {
		return p.evalBody(rest)
	}

	if callList, ok := head.(*List); ok && callList != nil {
		parts := flattenList(head, 3)
		if len(parts) != 2 {
			if len(parts) > 2 {
				return p.reportError("list callable as function must have 2 elements, not more")
			}
			return p.reportError("list callable as function must have 2 elements, not %d", len(parts))
		}
		return newThunk(p, parts[0], parts[1], rest, false)
	}

	v, err := p.eval(&List{Head: head, Tail: rest}, false)
	if err != nil {
		return p.reportError("%s", err.Error())
	}
	return v
}

func isTopLevelOnly(name string) bool {
	switch name {
	case "def", "load":
		return true
	}
	return false
}

func isREPLOnly(name string) bool {
	switch name {
	case "help", "restart", "quit":
		return true
	}
	return false
}

func errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// --- Top-level execution driver (spec §4 program/execute glue) ---

// Execute runs source as appleseed source, using the single-line vs
// multiline parsing rule: if any line has more `)` than `(`, the whole
// source is parsed as one unit; otherwise each line is parsed (and
// auto-closed) independently.
//
// Grounded on original_source/execution.py's Program.execute.
func (p *Program) Execute(source string) Value {
	lines := strings.Split(source, "\n")
	multiline := false
	for _, line := range lines {
		if strings.Count(line, ")") > strings.Count(line, "(") {
			multiline = true
			break
		}
	}

	var result Value = Nil
	if multiline {
		for _, expr := range p.parseAll(source) {
			result = p.ExecuteExpression(expr)
		}
	} else {
		for _, line := range lines {
			for _, expr := range p.parseAll(line) {
				result = p.ExecuteExpression(expr)
			}
		}
	}
	return result
}

// ExecuteExpression evaluates one top-level expression and, in REPL
// mode, displays it.
func (p *Program) ExecuteExpression(expr Value) Value {
	result := p.Eval(expr)
	if p.Options.REPL && result != nil {
		p.display(result)
	}
	return result
}

func (p *Program) display(v Value) {
	if p.Env.Quiet() {
		return
	}
	fmt.Fprintln(p.Output, p.repr(v))
}
