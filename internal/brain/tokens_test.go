package brain_test

import (
	"reflect"
	"testing"

	"github.com/XJIeI5/rpncalc/internal/brain"
)

func TestRoundTrip(t *testing.T) {
	programs := [][]string{
		{"3", "4", "+"},
		{"10", "0", "÷"},
		{"π", "2", "×", "√", "-2.5", "±", "-"},
		{"+", "3"},
		{"1", "sin", "1", "cos", "×"},
	}
	for _, tokens := range programs {
		src := load(tokens...)
		exported := src.ExportTokens()
		if !reflect.DeepEqual(exported, tokens) {
			t.Errorf("export of %q gave %q", tokens, exported)
		}

		dst := brain.New()
		dst.ImportTokens(exported)
		v1, ok1 := src.Evaluate()
		v2, ok2 := dst.Evaluate()
		if v1 != v2 || ok1 != ok2 {
			t.Errorf("%q evaluates to %v,%v after import, %v,%v before", tokens, v2, ok2, v1, ok1)
		}
		_, err1 := src.EvaluateReporting()
		_, err2 := dst.EvaluateReporting()
		if err1 != err2 {
			t.Errorf("%q reports %v after import, %v before", tokens, err2, err1)
		}
		if src.Description() != dst.Description() {
			t.Errorf("%q describes as %q after import, %q before", tokens, dst.Description(), src.Description())
		}
	}
}

func TestImportDropsUnknownTokens(t *testing.T) {
	b := brain.New()
	b.ImportTokens([]string{"3", "M", "foo", "4", "", "+"})
	want := []string{"3", "4", "+"}
	if got := b.ExportTokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("import kept %q, want %q", got, want)
	}
}

func TestImportReplacesProgramKeepsVariables(t *testing.T) {
	b := load("1", "2", "3")
	b.SetVariable("M", "4")
	b.ImportTokens([]string{"5"})
	if got := b.ExportTokens(); !reflect.DeepEqual(got, []string{"5"}) {
		t.Errorf("program after import is %q", got)
	}
	if v, ok := b.Variable("M"); !ok || v != 4 {
		t.Errorf("import touched variables")
	}
	b.ImportTokens(nil)
	if b.Len() != 0 {
		t.Errorf("importing nothing left %q", b.ExportTokens())
	}
}
