package runtime

import "testing"

func TestAccessDefaultSplitters(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]

	for _, s := range []string{"x", "y"} {
		v, err := w.Access(s)
		if err != nil {
			t.Fatalf("Access(%q): %v", s, err)
		}
		if v.Value != InitSplitterValue {
			t.Errorf("Access(%q).Value = %q, want %q", s, v.Value, InitSplitterValue)
		}
	}
}

func TestAccessUnknownSplitterFails(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]
	if _, err := w.Access("z"); err != ErrUnknownSplitter {
		t.Fatalf("Access(z): err = %v, want ErrUnknownSplitter", err)
	}
}

func TestSetMutatesVisibleValue(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]

	if err := w.Set("x", "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := w.Access("x")
	if err != nil {
		t.Fatalf("Access: %v", err)
	}
	if v.Value != "hello" {
		t.Errorf("Access(x).Value = %q, want hello", v.Value)
	}
}

func TestSetUnknownSplitterFails(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]
	if err := w.Set("z", "v"); err != ErrUnknownSplitter {
		t.Fatalf("Set(z): err = %v, want ErrUnknownSplitter", err)
	}
}

func TestPushShadowsThenPopRestores(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]

	if err := w.Push("x"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := w.Set("x", "shadowed"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _ := w.Access("x")
	if v.Value != "shadowed" {
		t.Fatalf("Access(x).Value = %q, want shadowed", v.Value)
	}

	if err := w.Pop("x"); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	v, _ = w.Access("x")
	if v.Value != InitSplitterValue {
		t.Fatalf("after Pop, Access(x).Value = %q, want %q", v.Value, InitSplitterValue)
	}
}

func TestPopWithoutPushFails(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]
	if err := w.Pop("x"); err != ErrPopOutOfScope {
		t.Fatalf("Pop without Push: err = %v, want ErrPopOutOfScope", err)
	}
}

func TestWriteIsAliasForSet(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]
	if err := w.Write("y", "written"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, _ := w.Access("y")
	if v.Value != "written" {
		t.Fatalf("Access(y).Value = %q, want written", v.Value)
	}
}

func TestReturnRejectsUnpoppedSplitter(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]

	if err := w.Spawn(); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if err := w.Push("x"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := w.Return(); err != ErrUnpoppedOnReturn {
		t.Fatalf("Return with an unpopped splitter: err = %v, want ErrUnpoppedOnReturn", err)
	}
}

func TestSetOnInheritedSplitterIsVisibleAcrossStacklets(t *testing.T) {
	sys := NewSystem(1)
	w := sys.Workers[0]

	if err := w.Spawn(); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	// x was never locally pushed in the spawned frame's chunk; Set should
	// mutate the inherited view in place rather than opening a local scope.
	if err := w.Set("x", "mutated"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := w.Pop("x"); err != ErrPopOutOfScope {
		t.Fatalf("Pop after a Set with no matching Push: err = %v, want ErrPopOutOfScope", err)
	}
	v, _ := w.Access("x")
	if v.Value != "mutated" {
		t.Fatalf("Access(x).Value = %q, want mutated", v.Value)
	}
}
