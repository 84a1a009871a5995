package core

import "fmt"

// Environment owns the global frame, the stack of local frames, and the
// module registry (spec §4.1).
//
// Name resolution consults only the topmost local frame, then the global
// frame — intermediate local frames are never searched. A local frame
// exists only for the duration of one user-call Thunk resolution.
type Environment struct {
	global map[Symbol]Value
	locals []map[Symbol]Value

	// Module loading state (spec §6 module loader contract).
	loadedModules map[string]bool
	modulePaths   []string
}

// NewEnvironment creates an environment with an empty global frame and the
// given starting module directory at the bottom of the module-path stack.
func NewEnvironment(startDir string) *Environment {
	return &Environment{
		global:        make(map[Symbol]Value),
		loadedModules: make(map[string]bool),
		modulePaths:   []string{startDir},
	}
}

// PushLocal starts a new local frame (on entry to a user-call resolution)
// and returns it so the caller can bind parameters directly into it.
func (e *Environment) PushLocal() map[Symbol]Value {
	frame := make(map[Symbol]Value)
	e.locals = append(e.locals, frame)
	return frame
}

// PopLocal discards the topmost local frame (on exit, including error
// exits).
func (e *Environment) PopLocal() {
	e.locals = e.locals[:len(e.locals)-1]
}

func (e *Environment) currentLocal() map[Symbol]Value {
	if len(e.locals) == 0 {
		return nil
	}
	return e.locals[len(e.locals)-1]
}

// Lookup resolves a name: topmost local frame first, then global.
func (e *Environment) Lookup(name Symbol) (Value, bool) {
	if frame := e.currentLocal(); frame != nil {
		if v, ok := frame[name]; ok {
			return v, true
		}
	}
	if v, ok := e.global[name]; ok {
		return v, true
	}
	return nil, false
}

// HasGlobal reports whether name is already bound at global scope —
// used by def's redefinition check and the binder's shadowing warning.
func (e *Environment) HasGlobal(name Symbol) bool {
	_, ok := e.global[name]
	return ok
}

// Define binds name in the global frame. Global names are single-
// assignment: redefining an existing name is an error.
func (e *Environment) Define(name Symbol, v Value) error {
	if e.HasGlobal(name) {
		return fmt.Errorf("name %s already in use", name)
	}
	e.global[name] = v
	return nil
}

// rebindGlobalForREPL overwrites a global binding unconditionally. It
// exists only for the REPL's `_` variable (spec.md supplement — see
// SPEC_FULL.md §6), which does not go through the ordinary
// single-assignment `def` path.
func (e *Environment) rebindGlobalForREPL(name Symbol, v Value) {
	e.global[name] = v
}

// --- Module registry (spec §6 module loader contract) ---

// ModuleDir returns the directory relative loads should resolve against:
// the top of the module-path stack.
func (e *Environment) ModuleDir() string {
	return e.modulePaths[len(e.modulePaths)-1]
}

// IsModuleLoaded reports whether absPath has already been registered.
func (e *Environment) IsModuleLoaded(absPath string) bool {
	return e.loadedModules[absPath]
}

// RegisterModule marks absPath as loaded and pushes dir onto the module
// path stack so relative loads inside the module resolve against it.
func (e *Environment) RegisterModule(absPath, dir string) {
	e.loadedModules[absPath] = true
	e.modulePaths = append(e.modulePaths, dir)
}

// PopModuleDir restores the module-path stack after a load completes.
func (e *Environment) PopModuleDir() {
	e.modulePaths = e.modulePaths[:len(e.modulePaths)-1]
}

// Quiet is active whenever a load is in progress (module-path stack depth
// > 1): printed/informational output is suppressed while loading.
func (e *Environment) Quiet() bool {
	return len(e.modulePaths) > 1
}
