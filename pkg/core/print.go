package core

import "strings"

const specialChars = " \t\n\r();`\""

// repr renders v as the language's own `repr` builtin would: round-
// trippable syntax, with long lists elided at Options.MaxListItems and
// extended-token quoting for symbols containing special characters.
//
// Grounded on original_source/execution.py's Program.asl_repr.
func (p *Program) repr(v Value) string {
	v = resolveThunks(v)
	switch x := v.(type) {
	case nil:
		return "()"
	case *List:
		if x == nil {
			return "()"
		}
		var sb strings.Builder
		sb.WriteByte('(')
		first := true
		index := 0
		consIter(x, func(elem Value) bool {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			if p.Options.MaxListItems > 0 && index >= p.Options.MaxListItems {
				sb.WriteString("...")
				return false
			}
			sb.WriteString(p.repr(elem))
			index++
			return true
		})
		sb.WriteByte(')')
		return sb.String()
	case Bool:
		if x {
			return "true"
		}
		return "false"
	case Int:
		return x.String()
	case Symbol:
		return quoteSymbol(string(x))
	case String:
		return quoteString(string(x))
	case *Object:
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for _, k := range x.Keys() {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			val, _ := x.Get(k)
			sb.WriteString("(" + quoteSymbol(k) + " " + p.repr(val) + ")")
		}
		sb.WriteByte('}')
		return sb.String()
	case *Builtin:
		kind := "function"
		if x.Macro {
			kind = "macro"
		}
		return "<builtin " + kind + " " + x.Name + ">"
	default:
		return v.String()
	}
}

// Resolve forces v through the thunk trampoline. pkg/driver uses this to
// inspect action/event objects without reaching into unexported
// machinery.
func (p *Program) Resolve(v Value) Value {
	return resolveThunks(v)
}

// PrintRaw renders v the way the `print!`/`write!` actions do: like
// repr, but strings and symbols are written as raw text rather than
// quoted syntax. Matches original_source/builtin_events.py's asl_print.
//
// Note: printing an infinite lazy list never finishes, same as the
// original; unlike repr, PrintRaw ignores Options.MaxListItems.
func (p *Program) PrintRaw(v Value) string {
	v = resolveThunks(v)
	switch x := v.(type) {
	case nil:
		return "()"
	case *List:
		if x == nil {
			return "()"
		}
		var sb strings.Builder
		sb.WriteByte('(')
		first := true
		consIter(x, func(elem Value) bool {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(p.PrintRaw(elem))
			return true
		})
		sb.WriteByte(')')
		return sb.String()
	case Bool:
		if x {
			return "true"
		}
		return "false"
	case Int:
		return x.String()
	case String:
		return string(x)
	case Symbol:
		return string(x)
	case *Object:
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for _, k := range x.Keys() {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			val, _ := x.Get(k)
			sb.WriteString("(" + k + " " + p.PrintRaw(val) + ")")
		}
		sb.WriteByte('}')
		return sb.String()
	case *Builtin:
		kind := "function"
		if x.Macro {
			kind = "macro"
		}
		return "<builtin " + kind + " " + x.Name + ">"
	default:
		return v.String()
	}
}

func quoteSymbol(s string) string {
	if strings.ContainsAny(s, specialChars) {
		escaped := strings.ReplaceAll(s, "`", "``")
		return "`" + escaped + "`"
	}
	return s
}

// quoteString renders a String value the way a double-quoted literal
// would read back in: escaping backslashes, quotes, newlines and tabs.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
