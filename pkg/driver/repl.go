// Package driver provides the REPL loop and the event/action dispatch
// loop: the external collaborators spec.md §6 keeps out of the core
// evaluator, wired to it only through Program's public methods.
//
// Grounded on original_source/run.py (repl/run_file/run_program) and on
// leinonen-go-lisp's pkg/repl (readline + fatih/color REPL ergonomics).
package driver

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/dloscutoff/go-appleseed/pkg/core"
)

const version = "0.1"

// REPL runs an interactive read-eval-print loop against prog until the
// user quits or sends EOF.
func REPL(prog *core.Program) {
	if !prog.Options.Color {
		color.NoColor = true
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	instructionColor := color.New(color.FgYellow)
	titleColor.Printf("appleseed %s\n", version)
	instructionColor.Println("Type (help) for information, (quit) to exit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "asl> ",
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start line editor: %s\n", err)
		return
	}
	defer rl.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)

	for {
		input, ok := readCompleteForm(rl)
		if !ok {
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		quit := evalREPLLine(prog, input)
		if quit {
			break
		}
	}

	color.New(color.FgMagenta, color.Bold).Println("Bye!")
}

// evalREPLLine runs one top-level chunk of REPL input, rebinding `_` to
// the result and recovering the `quit` macro's unwind signal. It reports
// whether the REPL should stop.
func evalREPLLine(prog *core.Program, input string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(core.UserQuit); ok {
				quit = true
				return
			}
			panic(r)
		}
	}()

	result := prog.Execute(input)
	prog.RebindREPLUnderscore(result)
	return false
}

// readCompleteForm reads lines from rl until parentheses balance,
// matching original_source/run.py's multi-line input handling: a line
// is "done" once it contains at least as many closes as opens summed
// over everything read so far.
func readCompleteForm(rl *readline.Instance) (string, bool) {
	rl.SetPrompt("asl> ")
	var lines []string
	depth := 0
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				return "", true
			}
			return "", false
		}
		lines = append(lines, line)
		depth += strings.Count(line, "(") - strings.Count(line, ")")
		if depth <= 0 {
			break
		}
		rl.SetPrompt("...  ")
	}
	return strings.Join(lines, "\n"), true
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return dir + "/appleseed_history"
}
