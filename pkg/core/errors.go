package core

// ErrorSink receives diagnostics from the evaluator. Kinds mirror spec §7:
// parse/shape/type/arity/name/resource errors are all reported through
// Errorf (never by unwinding the Go stack) and the caller falls back to nil;
// warnings and informational notices (module already loaded, etc.) go
// through Warnf. The reader (pkg/reader) has no sink: it repairs
// unterminated strings and unbalanced parentheses without reporting them.
type ErrorSink interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
}

// nopSink discards everything; useful for tests that only care about
// return values, not diagnostic text.
type nopSink struct{}

func (nopSink) Errorf(string, ...any) {}
func (nopSink) Warnf(string, ...any)  {}

// reportError writes a spec-shaped "Error: ..." line and returns the nil
// Value every error path in this evaluator returns, so call sites can
// write `return p.reportError(...)`.
func (p *Program) reportError(format string, args ...any) Value {
	p.Errors.Errorf(format, args...)
	return Nil
}

func (p *Program) warn(format string, args ...any) {
	p.Errors.Warnf(format, args...)
}

// inform writes a REPL-only informational notice (module load status,
// help text, restart acknowledgement) -- suppressed outside REPL mode
// and while an outer load is still in progress, matching
// original_source/execution.py's Program.inform. Unlike warn, which
// always reports (parameter shadowing, etc.), inform is for messages a
// non-interactive script run should never see.
func (p *Program) inform(format string, args ...any) {
	if p.Options.REPL && !p.Env.Quiet() {
		p.Errors.Warnf(format, args...)
	}
}
