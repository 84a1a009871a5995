package core

import "testing"

func TestEnvironmentGlobalDefineAndLookup(t *testing.T) {
	env := NewEnvironment(t.TempDir())
	if err := env.Define(Symbol("x"), NewInt(5)); err != nil {
		t.Fatalf("Define returned error: %v", err)
	}
	v, ok := env.Lookup(Symbol("x"))
	if !ok {
		t.Fatalf("Lookup(x) should succeed after Define")
	}
	if v.(Int).V.Int64() != 5 {
		t.Errorf("Lookup(x) = %v, want 5", v)
	}
}

func TestEnvironmentRedefineGlobalErrors(t *testing.T) {
	env := NewEnvironment(t.TempDir())
	if err := env.Define(Symbol("x"), NewInt(1)); err != nil {
		t.Fatalf("first Define failed: %v", err)
	}
	err := env.Define(Symbol("x"), NewInt(2))
	if err == nil {
		t.Fatalf("redefining a global name should error")
	}
	v, _ := env.Lookup(Symbol("x"))
	if v.(Int).V.Int64() != 1 {
		t.Errorf("a failed redefine should not change the existing binding, got %v", v)
	}
}

func TestEnvironmentLocalShadowsGlobal(t *testing.T) {
	env := NewEnvironment(t.TempDir())
	env.Define(Symbol("x"), NewInt(1))

	frame := env.PushLocal()
	frame[Symbol("x")] = NewInt(2)
	v, ok := env.Lookup(Symbol("x"))
	if !ok || v.(Int).V.Int64() != 2 {
		t.Fatalf("Lookup(x) inside local frame = %v, want the local binding 2", v)
	}
	env.PopLocal()

	v, ok = env.Lookup(Symbol("x"))
	if !ok || v.(Int).V.Int64() != 1 {
		t.Fatalf("Lookup(x) after PopLocal = %v, want the global binding 1 back", v)
	}
}

func TestEnvironmentLookupSkipsIntermediateLocalFrames(t *testing.T) {
	env := NewEnvironment(t.TempDir())
	env.Define(Symbol("x"), NewInt(0))

	outer := env.PushLocal()
	outer[Symbol("x")] = NewInt(1)
	env.PushLocal() // inner frame does not define x

	// Lookup only ever consults the topmost local frame, then falls
	// straight through to global -- never to an intermediate local
	// frame like outer's.
	v, ok := env.Lookup(Symbol("x"))
	if !ok || v.(Int).V.Int64() != 0 {
		t.Fatalf("Lookup(x) = %v, want the global binding 0 (not outer's local binding 1)", v)
	}
}

func TestEnvironmentModuleRegistry(t *testing.T) {
	env := NewEnvironment("/start")
	if env.Quiet() {
		t.Fatalf("a fresh environment should not be Quiet")
	}
	if env.IsModuleLoaded("/mods/a.asl") {
		t.Fatalf("nothing should be loaded yet")
	}
	env.RegisterModule("/mods/a.asl", "/mods")
	if !env.IsModuleLoaded("/mods/a.asl") {
		t.Fatalf("RegisterModule should mark the path loaded")
	}
	if env.ModuleDir() != "/mods" {
		t.Errorf("ModuleDir() = %q, want /mods", env.ModuleDir())
	}
	if !env.Quiet() {
		t.Fatalf("Quiet() should be true while a module load is in progress")
	}
	env.PopModuleDir()
	if env.Quiet() {
		t.Fatalf("Quiet() should be false again after PopModuleDir")
	}
	if env.ModuleDir() != "/start" {
		t.Errorf("ModuleDir() after pop = %q, want /start", env.ModuleDir())
	}
}
