package core

import "fmt"

// bindParams binds a parameter spec to arguments in frame.
//
// params is either:
//   - a Symbol, in which case the whole argument list is bound to it
//     (rebuilt as a proper list for a function call, or quoted raw syntax
//     for a macro call), or
//   - a List of entries, each either a bare Symbol (required) or a
//     two-element (name default) list (optional, default evaluated in
//     the new frame only if no argument was supplied for it).
//
// rawArgs is argument syntax; for a function call each element is
// evaluated to produce the bound values (a Thunk's elements are (q value)
// forms built by newThunk from arguments it already evaluated in the
// caller's frame), while a macro call binds the raw syntax untouched.
//
// Grounded on original_source/execution.py's Program.bind_params.
func (p *Program) bindParams(frame map[Symbol]Value, params, rawArgs Value, isMacro bool) error {
	kind := "function"
	if isMacro {
		kind = "macro"
	}

	params = resolveThunks(params)

	if name, ok := params.(Symbol); ok {
		if p.Env.HasGlobal(name) {
			p.warn("%s parameter name shadows global name %s", kind, name)
		}
		if isMacro {
			quoted := &List{Head: Symbol("q"), Tail: &List{Head: rawArgs, Tail: Nil}}
			frame[name] = quoted
		} else {
			var evaluated []Value
			var evalErr error
			consIter(rawArgs, func(elem Value) bool {
				v, err := p.eval(elem, false)
				if err != nil {
					evalErr = err
					return false
				}
				evaluated = append(evaluated, v)
				return true
			})
			if evalErr != nil {
				return evalErr
			}
			var list Value = Nil
			for i := len(evaluated) - 1; i >= 0; i-- {
				list = &List{Head: evaluated[i], Tail: list}
			}
			frame[name] = list
		}
		return nil
	}

	paramList, isList := params.(*List)
	if !isList {
		return fmt.Errorf("parameters must either be name or list of names, not %s", typeName(params))
	}

	type namedEntry struct {
		name    Symbol
		hasDflt bool
		dflt    Value
	}
	var entries []namedEntry
	cur := Value(paramList)
	for {
		l, ok := resolveThunks(cur).(*List)
		if !ok || l == nil {
			break
		}
		entry := resolveThunks(l.Head)
		switch e := entry.(type) {
		case Symbol:
			entries = append(entries, namedEntry{name: e})
		case *List:
			if e == nil {
				return fmt.Errorf("parameter list must contain names, not ()")
			}
			pair := flattenList(e, 3)
			if len(pair) == 1 {
				return fmt.Errorf("missing default value for %s", p.repr(resolveThunks(pair[0])))
			}
			if len(pair) > 2 {
				return fmt.Errorf("too many elements in parameter default value specification list")
			}
			name, ok := resolveThunks(pair[0]).(Symbol)
			if !ok {
				return fmt.Errorf("parameter list must contain names, not %s", typeName(resolveThunks(pair[0])))
			}
			entries = append(entries, namedEntry{name: name, hasDflt: true, dflt: pair[1]})
		default:
			return fmt.Errorf("parameter list must contain names, not %s", typeName(entry))
		}
		cur = l.Tail
	}

	var args []Value
	if isMacro {
		consIter(rawArgs, func(elem Value) bool {
			args = append(args, elem)
			return true
		})
	} else {
		var evalErr error
		consIter(rawArgs, func(elem Value) bool {
			v, err := p.eval(elem, false)
			if err != nil {
				evalErr = err
				return false
			}
			args = append(args, v)
			return true
		})
		if evalErr != nil {
			return evalErr
		}
	}

	requiredSeen := 0
	optionalSeen := 0
	argCount := 0
	seenOptional := false
	for i, e := range entries {
		if e.hasDflt {
			seenOptional = true
			if p.Env.HasGlobal(e.name) {
				p.warn("%s parameter name shadows global name %s", kind, e.name)
			}
			if i < len(args) {
				frame[e.name] = args[i]
				argCount++
			} else {
				v, err := p.eval(e.dflt, false)
				if err != nil {
					return err
				}
				frame[e.name] = v
			}
			optionalSeen++
		} else {
			if seenOptional {
				return fmt.Errorf("required parameter %s must come before optional parameters", e.name)
			}
			if p.Env.HasGlobal(e.name) {
				p.warn("%s parameter name shadows global name %s", kind, e.name)
			}
			if i < len(args) {
				frame[e.name] = args[i]
				argCount++
			}
			requiredSeen++
		}
	}
	if len(args) > len(entries) {
		argCount = len(args)
	}

	minCount := requiredSeen
	maxCount := requiredSeen + optionalSeen
	if argCount < minCount {
		return fmt.Errorf("%s takes at least %d arguments, got %d", kind, minCount, argCount)
	}
	if argCount > maxCount {
		return fmt.Errorf("%s takes at most %d arguments, got %d", kind, maxCount, argCount)
	}
	return nil
}

// flattenList collects up to max elements of a (possibly thunk-tailed)
// list's spine, without forcing further than necessary — used to detect
// "too many elements" without walking an arbitrarily long or infinite
// list.
func flattenList(v Value, max int) []Value {
	var out []Value
	consIter(v, func(elem Value) bool {
		out = append(out, elem)
		return len(out) < max
	})
	return out
}
