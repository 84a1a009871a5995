package core

import "github.com/dloscutoff/go-appleseed/pkg/types"

// macroBuiltins constructs the macros: def, if, q (quote), object,
// has-property?, get-property, copy, and load.
//
// Grounded on original_source/execution.py's asl_def/asl_if/asl_quote/
// asl_object/asl_has_property/asl_get_property/asl_copy/asl_load.
func macroBuiltins(prog *Program) []*Builtin {
	return []*Builtin{
		macroFn("def", 2, 2, func(args []Value) (Value, error) {
			name, ok := resolveThunks(args[0]).(Symbol)
			if !ok {
				return prog.reportError("cannot define %s %s", typeName(args[0]), prog.repr(args[0])), nil
			}
			if prog.Env.HasGlobal(name) {
				return prog.reportError("name %s already in use", name), nil
			}
			v, err := prog.eval(args[1], false)
			if err != nil {
				return nil, err
			}
			if err := prog.Env.Define(name, v); err != nil {
				return prog.reportError("%s", err.Error()), nil
			}
			return name, nil
		}),
		// `if` is handled directly by the macro rewriter (resolveMacros)
		// so the condition can be evaluated before deciding which branch
		// to rewrite to; this entry exists only so `if` is a nameable,
		// shadow-checkable, printable value like any other builtin.
		macroFn("if", 3, 3, func(args []Value) (Value, error) {
			cond, err := prog.eval(args[0], false)
			if err != nil {
				return nil, err
			}
			if Truthy(cond) {
				return prog.eval(args[1], false)
			}
			return prog.eval(args[2], false)
		}),
		macroFn("q", 1, 1, func(args []Value) (Value, error) {
			return args[0], nil
		}),
		macroFn("object", 0, -1, func(args []Value) (Value, error) {
			obj := types.NewObject()
			for _, prop := range args {
				pair := flattenList(prop, 3)
				if len(pair) != 2 {
					if len(pair) > 2 {
						return prog.reportError("(name value) lists in object constructor must have 2 elements, not more"), nil
					}
					return prog.reportError("(name value) lists in object constructor must have 2 elements, not %d", len(pair)), nil
				}
				name, ok := resolveThunks(pair[0]).(Symbol)
				if !ok {
					return prog.reportError("object property name must be a symbol, not %s", typeName(pair[0])), nil
				}
				v, err := prog.eval(pair[1], false)
				if err != nil {
					return nil, err
				}
				obj.Set(string(name), v)
			}
			return obj, nil
		}),
		macroFn("has-property?", 2, 2, func(args []Value) (Value, error) {
			objVal, err := prog.eval(args[0], false)
			if err != nil {
				return nil, err
			}
			obj, ok := resolveThunks(objVal).(*Object)
			if !ok {
				return prog.reportError("%s does not have properties", typeName(objVal)), nil
			}
			name, ok := resolveThunks(args[1]).(Symbol)
			if !ok {
				return prog.reportError("property name must be a symbol, not %s", typeName(args[1])), nil
			}
			return Bool(obj.Has(string(name))), nil
		}),
		macroFn("get-property", 2, 3, func(args []Value) (Value, error) {
			objVal, err := prog.eval(args[0], false)
			if err != nil {
				return nil, err
			}
			obj, ok := resolveThunks(objVal).(*Object)
			if !ok {
				return prog.reportError("cannot get property of %s", typeName(objVal)), nil
			}
			name, ok := resolveThunks(args[1]).(Symbol)
			if !ok {
				return prog.reportError("property name must be a symbol, not %s", typeName(args[1])), nil
			}
			if v, ok := obj.Get(string(name)); ok {
				return v, nil
			}
			if len(args) == 3 {
				return prog.eval(args[2], false)
			}
			return prog.reportError("object does not have property %s", name), nil
		}),
		macroFn("copy", 1, -1, func(args []Value) (Value, error) {
			objVal, err := prog.eval(args[0], false)
			if err != nil {
				return nil, err
			}
			obj, ok := resolveThunks(objVal).(*Object)
			if !ok {
				if len(args) > 1 {
					prog.warn("cannot set properties of %s", typeName(objVal))
				}
				return objVal, nil
			}
			newObj := obj.Copy()
			for _, prop := range args[1:] {
				pair := flattenList(prop, 3)
				if len(pair) != 2 {
					if len(pair) > 2 {
						return prog.reportError("(name value) lists in object copy must have 2 elements, not more"), nil
					}
					return prog.reportError("(name value) lists in object copy must have 2 elements, not %d", len(pair)), nil
				}
				name, ok := resolveThunks(pair[0]).(Symbol)
				if !ok {
					return prog.reportError("object property name must be a symbol, not %s", typeName(pair[0])), nil
				}
				v, err := prog.eval(pair[1], false)
				if err != nil {
					return nil, err
				}
				newObj.Set(string(name), v)
			}
			return newObj, nil
		}),
		macroFn("load", 1, 1, func(args []Value) (Value, error) {
			name, ok := resolveThunks(args[0]).(Symbol)
			if !ok {
				if s, ok := resolveThunks(args[0]).(String); ok {
					name = Symbol(s)
				} else {
					return prog.reportError("load requires module name, not %s", prog.repr(args[0])), nil
				}
			}
			return prog.Load(string(name)), nil
		}),
	}
}

