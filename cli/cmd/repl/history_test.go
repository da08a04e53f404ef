package repl

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestHistoryLoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: unexpected error: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryWriteAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)
	for _, line := range []string{"x = 1", "x + 1", "vars"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q): unexpected error: %v", line, err)
		}
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): unexpected error: %v", err)
	}

	want := []string{"x = 1", "x + 1", "vars"}

	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.utf8")

	h := NewHistory(path)
	for _, line := range []string{"a = 1", "b = 2", "a = 1"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q): unexpected error: %v", line, err)
		}
	}

	want := []string{"b = 2", "a = 1"}

	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// The rewritten file must match the in-memory order.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): unexpected error: %v", err)
	}

	if reloaded.Len() != len(want) {
		t.Errorf("reloaded Len() = %d, want %d", reloaded.Len(), len(want))
	}
}

func TestHistorySkipsBlankAndRepeatedLines(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	inputs := []string{"", "   ", "x = 1", "x = 1"}
	for _, line := range inputs {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q): unexpected error: %v", line, err)
		}
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistoryGetLineBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.utf8"))

	if _, err := h.Write("x = 1"); err != nil {
		t.Fatalf("Write: unexpected error: %v", err)
	}

	if line, err := h.GetLine(0); err != nil || line != "x = 1" {
		t.Errorf("GetLine(0) = %q, %v, want \"x = 1\", nil", line, err)
	}

	for _, i := range []int{-1, 1, 100} {
		if _, err := h.GetLine(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetLine(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}
