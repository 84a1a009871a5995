// Command appleseed runs the interpreter: interactively as a REPL, or
// against a source file given on the command line.
//
// Grounded on original_source/run.py (run_file/run_program/repl) and
// leinonen-go-lisp's cmd/*/main.go flag-driven entry points.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dloscutoff/go-appleseed/pkg/core"
	"github.com/dloscutoff/go-appleseed/pkg/driver"
)

func main() {
	maxListItems := flag.Int("max-list-items", 0, "limit how many elements of a list are printed (0 = 20 in the REPL, unbounded when running a file)")
	noColor := flag.Bool("no-color", false, "disable colored error/warning output")
	flag.Parse()

	useColor := !*noColor && isatty.IsTerminal(os.Stdout.Fd())

	args := flag.Args()
	if len(args) == 0 {
		runREPL(*maxListItems, useColor)
		return
	}
	runFile(args[0], *maxListItems, useColor)
}

func runREPL(maxListItems int, useColor bool) {
	cwd, _ := os.Getwd()
	opts := core.Options{MaxListItems: 20, REPL: true, Color: useColor}
	if maxListItems > 0 {
		opts.MaxListItems = maxListItems
	}
	sink := core.NewStderrSink(os.Stderr, useColor)
	prog := core.NewProgram(cwd, opts, sink)
	driver.REPL(prog)
}

func runFile(filename string, maxListItems int, useColor bool) {
	opts := core.Options{MaxListItems: maxListItems, REPL: false, Color: useColor}
	sink := core.NewStderrSink(os.Stderr, useColor)
	dir := workingDirOf(filename)
	prog := core.NewProgram(dir, opts, sink)

	code, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %s: %s\n", filename, err)
		os.Exit(1)
	}

	if !runProgram(prog, string(code)) {
		return
	}
	driver.RunEvents(prog, os.Stdin)
}

// runProgram executes code, recovering the `quit` macro's unwind
// signal, and reports whether the event loop should still run
// afterward.
func runProgram(prog *core.Program, code string) (ranToCompletion bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(core.UserQuit); ok {
				ranToCompletion = false
				return
			}
			panic(r)
		}
	}()
	prog.Execute(code)
	return true
}

func workingDirOf(filename string) string {
	return filepath.Dir(filename)
}
