package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dloscutoff/go-appleseed/internal/stdlib"
)

// Options configures a Program (spec §4 ambient config — see SPEC_FULL.md
// §4 "Configuration").
type Options struct {
	// MaxListItems bounds how many elements repr (and so REPL display)
	// shows before eliding the rest with "...". Zero means unbounded.
	// PrintRaw, used by the print!/write! actions, never elides.
	MaxListItems int
	// REPL marks that forms are being read interactively, enabling the
	// repl-only macros (help, restart, quit) and the `_` rebinding.
	REPL bool
	// Color enables ANSI color in error/warning output.
	Color bool
}

// DefaultOptions returns the options a freshly started interpreter uses.
func DefaultOptions() Options {
	return Options{MaxListItems: 1000, Color: true}
}

// Program is one running appleseed interpreter: its environment, builtin
// table, diagnostic sink and configuration. It is the receiver for every
// evaluation entry point (spec §4.5) and for the module loader (spec §6).
//
// Grounded on original_source/execution.py's Program class.
type Program struct {
	Env     *Environment
	Errors  ErrorSink
	Options Options
	// Output is where display/print! write; defaults to os.Stdout.
	Output io.Writer

	builtins map[Symbol]*Builtin

	// stdlibLoaded records whether the embedded library module has been
	// loaded into the current environment; Restart clears it so the
	// library is loaded again into the fresh one.
	stdlibLoaded bool
}

// NewProgram creates a Program rooted at startDir (the directory relative
// loads resolve against before any module is loaded) and preloads the
// embedded standard library, matching execution.py's
// `self.asl_load("library")` call inside Program.__init__.
func NewProgram(startDir string, opts Options, sink ErrorSink) *Program {
	if sink == nil {
		sink = nopSink{}
	}
	p := &Program{
		Env:     NewEnvironment(startDir),
		Errors:  sink,
		Options: opts,
		Output:  os.Stdout,
	}
	p.builtins = makeBuiltins(p)
	for name, b := range p.builtins {
		p.Env.global[name] = b
	}
	p.loadStdlib()
	return p
}

// Restart re-initializes program state in place: a fresh global frame with
// the standard library reloaded, matching execution.py's asl_restart. It
// is a REPL-only builtin (see builtin_repl.go).
func (p *Program) Restart() {
	dir := p.Env.ModuleDir()
	p.Env = NewEnvironment(dir)
	for name, b := range p.builtins {
		p.Env.global[name] = b
	}
	p.stdlibLoaded = false
	p.loadStdlib()
}

// RebindREPLUnderscore rebinds the global name `_` to v unconditionally,
// bypassing def's single-assignment check. It is called by pkg/driver
// after each top-level REPL form, matching run.py's
// `environment.global_names["_"] = last_value`.
func (p *Program) RebindREPLUnderscore(v Value) {
	p.Env.rebindGlobalForREPL(Symbol("_"), v)
}

// --- Module loading (spec §6 module loader contract) ---

// Load resolves name to a `.asl` file relative to the current module
// directory, and executes it unless it has already been loaded. A load
// attempted anywhere but top level is a hard error (spec §6 / DESIGN.md
// Open Question resolution).
func (p *Program) Load(name string) Value {
	path := name
	if filepath.Ext(path) == "" {
		path += ".asl"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Env.ModuleDir(), path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return p.reportError("could not resolve module path %s: %s", name, err)
	}
	if p.Env.IsModuleLoaded(abs) {
		p.inform("Already loaded %s", name)
		return Nil
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		return p.reportError("could not load %s: %s", name, err)
	}

	p.Env.RegisterModule(abs, filepath.Dir(abs))
	p.Execute(string(src))
	// Pop before informing: "Loaded" must reflect this load's own
	// nesting level, not one level deeper, so an outermost load still
	// reports even though Quiet() was true throughout its own Execute.
	p.Env.PopModuleDir()
	p.inform("Loaded %s", name)
	return Nil
}

func (p *Program) loadStdlib() {
	if p.stdlibLoaded {
		return
	}
	p.stdlibLoaded = true
	src, err := stdlib.Source()
	if err != nil {
		p.reportError("could not load internal standard library: %s", err)
		return
	}
	p.Env.RegisterModule("<stdlib>/library.asl", p.Env.ModuleDir())
	defer p.Env.PopModuleDir()
	p.Execute(string(src))
}

// String renders v the way display output does (repr): resolving thunks
// as it walks, matching execution.py's `display`.
func (p *Program) String(v Value) string {
	return p.repr(resolveThunks(v))
}
