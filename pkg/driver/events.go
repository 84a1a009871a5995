package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dloscutoff/go-appleseed/pkg/core"
	"github.com/dloscutoff/go-appleseed/pkg/types"
)

// eventHandlerNames lists the events this driver knows how to raise.
// Grounded on original_source/builtin_events.py's builtin_event_names.
var eventHandlerNames = []string{"start!", "receive-line!"}

// RunEvents drives the event/action loop: it fires `start!`, then
// repeatedly looks up and calls whatever handler the program bound to
// each queued event's name, dispatching the handler's returned action
// (or list of actions) until the queue is empty.
//
// Grounded on original_source/builtin_events.py's event_loop.
func RunEvents(prog *core.Program, stdin io.Reader) {
	handlers := map[string]core.Value{}
	for _, name := range eventHandlerNames {
		if v, ok := prog.Env.Lookup(types.Intern(name)); ok {
			handlers[name] = v
		}
	}
	if len(handlers) == 0 {
		return
	}

	reader := bufio.NewReader(stdin)
	queue := []*types.Object{newEvent("start!")}

	for len(queue) > 0 {
		event := queue[0]
		queue = queue[1:]

		nameVal, _ := event.Get("name")
		name := string(nameVal.(types.Symbol))
		handler, ok := handlers[name]
		if !ok {
			continue
		}

		action := prog.CallValue(handler, event)
		queue = append(queue, performAction(prog, reader, action)...)
	}
}

func newEvent(name string) *types.Object {
	obj := types.NewObject()
	obj.Set("type", types.Symbol("Event"))
	obj.Set("name", types.Symbol(name))
	return obj
}

// performAction dispatches one action value — a single action Object, or
// a list of them — and returns any events the dispatch produced.
//
// Grounded on original_source/builtin_events.py's perform_action and the
// act_* handlers.
func performAction(prog *core.Program, stdin *bufio.Reader, action core.Value) []*types.Object {
	action = prog.Resolve(action)

	if l, ok := action.(*types.List); ok {
		var events []*types.Object
		walkList(l, func(elem core.Value) {
			events = append(events, performAction(prog, stdin, elem)...)
		})
		return events
	}

	obj, ok := action.(*types.Object)
	if !ok {
		return nil
	}
	nameVal, hasName := obj.Get("name")
	if !hasName {
		return nil
	}
	name, _ := nameVal.(types.Symbol)

	switch string(name) {
	case "print!":
		printValue(prog, obj, os.Stdout, true)
	case "print-error!":
		printValue(prog, obj, os.Stderr, true)
	case "write!":
		printValue(prog, obj, os.Stdout, false)
	case "write-error!":
		printValue(prog, obj, os.Stderr, false)
	case "ask-line!":
		if prompt, ok := obj.Get("prompt"); ok {
			printRaw(prog, prompt, os.Stdout)
		}
		line, err := stdin.ReadString('\n')
		var lineVal core.Value
		if err != nil && line == "" {
			lineVal = core.Nil
		} else {
			lineVal = types.String(trimNewline(line))
		}
		event := newEvent("receive-line!")
		event.Set("line", lineVal)
		return []*types.Object{event}
	case "exit!":
		code := 0
		if v, ok := obj.Get("exit-code"); ok {
			if i, ok := v.(core.Int); ok {
				code = int(i.V.Int64())
			}
		}
		os.Exit(code)
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown action: %s\n", name)
	}
	return nil
}

func printValue(prog *core.Program, obj *types.Object, w io.Writer, newline bool) {
	v, ok := obj.Get("value")
	if !ok {
		return
	}
	printRaw(prog, v, w)
	if newline {
		fmt.Fprintln(w)
	}
}

// printRaw writes value the way `print!`/`write!` do: raw text for
// strings and ints, not repr's quoted syntax.
func printRaw(prog *core.Program, value core.Value, w io.Writer) {
	fmt.Fprint(w, prog.PrintRaw(value))
}

func walkList(l *types.List, fn func(core.Value)) {
	for l != nil {
		fn(l.Head)
		next, ok := l.Tail.(*types.List)
		if !ok {
			return
		}
		l = next
	}
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
