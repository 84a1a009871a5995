package core

// UserQuit is returned (via panic/recover, see pkg/driver) when the
// `quit` macro runs; it is not an evaluation error, just an unwind
// signal back to the REPL loop, matching original_source/cfg.py's
// UserQuit exception.
type UserQuit struct{}

func (UserQuit) Error() string { return "quit" }

// replBuiltins constructs the REPL-only macros: help, restart, quit.
// These are gated by isREPLOnly in eval.go (spec §6: usable only when
// Options.REPL is set, and only at top level).
//
// Grounded on original_source/execution.py's asl_help/asl_restart/
// asl_quit.
func replBuiltins(prog *Program) []*Builtin {
	return []*Builtin{
		macroFn("help", 0, 0, func(args []Value) (Value, error) {
			prog.inform("%s", helpText)
			return Nil, nil
		}),
		macroFn("restart", 0, 0, func(args []Value) (Value, error) {
			prog.Restart()
			prog.inform("Restarting...")
			return Nil, nil
		}),
		macroFn("quit", 0, 0, func(args []Value) (Value, error) {
			panic(UserQuit{})
		}),
	}
}
