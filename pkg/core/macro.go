package core

import "fmt"

// resolveMacros rewrites head/rawArgs until the head is no longer `if`,
// `eval`, or a user-defined macro. It returns the final (head, rawArgs)
// pair still to be evaluated as a call, or a nil head with a plain value
// already substituted in rawArgs when rewriting bottomed out at a
// non-call expression.
//
// Grounded on original_source/execution.py's Program.resolve_macros.
func (p *Program) resolveMacros(head, rawArgs Value) (Value, Value, error) {
	head = resolveThunks(head)
	udefMacro := p.isMacro(head)

	for isIfBuiltin(head) || isEvalBuiltin(head) || udefMacro {
		var expression Value
		switch {
		case isIfBuiltin(head):
			ifArgs := flattenList(rawArgs, 4)
			if len(ifArgs) != 3 {
				if len(ifArgs) > 3 {
					return nil, nil, fmt.Errorf("if takes 3 arguments, not more")
				}
				return nil, nil, fmt.Errorf("if takes 3 arguments, not %d", len(ifArgs))
			}
			cond, err := p.eval(ifArgs[0], false)
			if err != nil {
				return nil, nil, err
			}
			if Truthy(cond) {
				expression = ifArgs[1]
			} else {
				expression = ifArgs[2]
			}
		case isEvalBuiltin(head):
			evalArgs := flattenList(rawArgs, 2)
			if len(evalArgs) != 1 {
				if len(evalArgs) > 1 {
					return nil, nil, fmt.Errorf("eval takes 1 argument, not more")
				}
				return nil, nil, fmt.Errorf("eval requires an argument")
			}
			v, err := p.eval(evalArgs[0], false)
			if err != nil {
				return nil, nil, err
			}
			expression = v
		default:
			// head is a user-defined macro: (0 params body)
			parts := flattenList(head, 3)
			macroParams, macroBody := parts[1], parts[2]
			frame := make(map[Symbol]Value)
			if err := p.bindParams(frame, macroParams, rawArgs, true); err != nil {
				return nil, nil, err
			}
			expression = p.substitute(frame, resolveThunks(macroBody))
		}

		expression = resolveThunks(expression)
		if l, ok := expression.(*List); ok && l != nil {
			headExpr, err := p.eval(l.Head, false)
			if err != nil {
				return nil, nil, err
			}
			head = resolveThunks(headExpr)
			rawArgs = l.Tail
			udefMacro = p.isMacro(head)
		} else {
			return nil, expression, nil
		}
	}
	return head, rawArgs, nil
}

func isIfBuiltin(v Value) bool {
	b, ok := v.(*Builtin)
	return ok && b.Name == "if"
}

func isEvalBuiltin(v Value) bool {
	b, ok := v.(*Builtin)
	return ok && b.Name == "eval"
}

// isMacro reports whether expression is shaped like a user-defined macro:
// a nonempty list whose head is the integer 0 and whose tail has exactly
// two further elements (params, body).
//
// Grounded on original_source/execution.py's Program.is_macro.
func (p *Program) isMacro(expression Value) bool {
	expression = resolveThunks(expression)
	l, ok := expression.(*List)
	if !ok || l == nil {
		return false
	}
	head := resolveThunks(l.Head)
	if i, ok := head.(Int); !ok || i.V.Sign() != 0 {
		return false
	}
	rest := flattenList(l.Tail, 3)
	return len(rest) == 2
}

// substitute replaces names bound in bindings throughout expression,
// leaving everything else (including unbound names) untouched.
//
// Grounded on original_source/execution.py's Program.replace.
func (p *Program) substitute(bindings map[Symbol]Value, expression Value) Value {
	if l, ok := expression.(*List); ok && l != nil {
		head := resolveThunks(l.Head)
		tail := resolveThunks(l.Tail)
		return &List{
			Head: p.substitute(bindings, head),
			Tail: p.substitute(bindings, tail),
		}
	}
	if name, ok := expression.(Symbol); ok {
		if v, ok := bindings[name]; ok {
			return v
		}
	}
	return expression
}
