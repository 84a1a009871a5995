package core

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// StderrSink writes errors and warnings to an io.Writer (normally
// os.Stderr), color-coded the way leinonen-go-lisp's pkg/repl error
// formatter does, prefixed the way original_source/cfg.py's error/warn
// functions are ("Error: ..." / "Warning: ...").
type StderrSink struct {
	Out   io.Writer
	Color bool
}

// NewStderrSink constructs a sink writing to w.
func NewStderrSink(w io.Writer, useColor bool) *StderrSink {
	return &StderrSink{Out: w, Color: useColor}
}

func (s *StderrSink) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.Color {
		color.New(color.FgRed, color.Bold).Fprint(s.Out, "Error: ")
		fmt.Fprintln(s.Out, msg)
	} else {
		fmt.Fprintln(s.Out, "Error:", msg)
	}
}

func (s *StderrSink) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.Color {
		color.New(color.FgYellow, color.Bold).Fprint(s.Out, "Warning: ")
		fmt.Fprintln(s.Out, msg)
	} else {
		fmt.Fprintln(s.Out, "Warning:", msg)
	}
}
