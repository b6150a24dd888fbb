package keypad_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/XJIeI5/rpncalc/internal/brain"
	"github.com/XJIeI5/rpncalc/internal/keypad"
)

func newSession() (*keypad.Session, *bytes.Buffer) {
	var out bytes.Buffer
	return keypad.NewSession(brain.New(), &out), &out
}

func compare(t *testing.T, s *keypad.Session, line, display, history string) {
	t.Helper()
	s.Enter(line)
	if s.Display() != display {
		t.Errorf("after %q display is %q, want %q", line, s.Display(), display)
	}
	if s.History() != history {
		t.Errorf("after %q history is %q, want %q", line, s.History(), history)
	}
}

func TestEnterLine(t *testing.T) {
	s, out := newSession()
	compare(t, s, "3 4 +", "7", "3+4 =")
	if got := out.String(); got != "7\t3+4 =\n" {
		t.Errorf("printed %q", got)
	}
	compare(t, s, "5 *", "35", "(3+4)×5 =")
	compare(t, s, "undo", "5", "3+4,5 =")
	compare(t, s, "clear", "0", " =")
}

func TestAliases(t *testing.T) {
	s, _ := newSession()
	compare(t, s, "pi 2 /", "1.5707963267948966", "π÷2 =")
	compare(t, s, "clear 9 sqrt neg", "-3", "±(√(9)) =")
}

func TestErrorsOnDisplay(t *testing.T) {
	s, _ := newSession()
	compare(t, s, "10 0 /", "Divide by Zero", "10÷0 =")
	compare(t, s, "clear -4 sqrt", "Sqrt of a negative num", "√(-4) =")
	compare(t, s, "clear M", "Variable not set", "M =")
	compare(t, s, "clear +", "Not enough operands", "?+? =")
}

func TestBindVariable(t *testing.T) {
	s, _ := newSession()
	compare(t, s, "M 2 *", "Not enough operands", "M×2 =")
	compare(t, s, "clear", "0", " =")
	compare(t, s, "4 >M", "4", "4 =")
	compare(t, s, "M *", "16", "4×M =")
	compare(t, s, "clearvars", "Not enough operands", "4×M =")
}

func TestBlankLinePrintsNothing(t *testing.T) {
	s, out := newSession()
	s.Enter("   ")
	if out.Len() != 0 {
		t.Errorf("blank line printed %q", out.String())
	}
}

func TestExportAndHelp(t *testing.T) {
	s, out := newSession()
	s.Enter("3 4 + export")
	if !strings.HasPrefix(out.String(), `["3","4","+"]`+"\n") {
		t.Errorf("export printed %q", out.String())
	}
	out.Reset()
	s.Enter("help")
	if !strings.Contains(out.String(), "π × ÷ + - √ sin cos ±") {
		t.Errorf("help printed %q", out.String())
	}
}

func TestSaveAndLoadProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.json")
	s, _ := newSession()
	s.Enter("3 4 + √")
	if err := s.SaveProgram(path); err != nil {
		t.Fatal(err)
	}

	restored, _ := newSession()
	if err := restored.LoadProgram(path); err != nil {
		t.Fatal(err)
	}
	if restored.History() != s.History() || restored.Display() != s.Display() {
		t.Errorf("restored %q/%q, saved %q/%q", restored.History(), restored.Display(), s.History(), s.Display())
	}

	missing, _ := newSession()
	if err := missing.LoadProgram(filepath.Join(t.TempDir(), "none.json")); err != nil {
		t.Errorf("missing program file: %s", err)
	}
}
