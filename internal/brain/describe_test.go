package brain_test

import "testing"

func TestDescription(t *testing.T) {
	cases := []struct {
		tokens []string
		want   string
	}{
		{nil, " ="},
		{[]string{"3", "4", "+"}, "3+4 ="},
		{[]string{"3", "4", "+", "5", "×"}, "(3+4)×5 ="},
		{[]string{"3", "4", "×", "5", "+"}, "3×4+5 ="},
		{[]string{"3", "4", "5", "+", "×"}, "3×(4+5) ="},
		{[]string{"+"}, "?+? ="},
		{[]string{"3", "+"}, "?+3 ="},
		{[]string{"3", "4"}, "3,4 ="},
		{[]string{"3", "4", "+", "5", "6"}, "3+4,5,6 ="},
		{[]string{"3", "4", "+", "√"}, "√((3+4)) ="},
		{[]string{"9", "√", "cos"}, "cos(√(9)) ="},
		{[]string{"M", "±"}, "±(M) ="},
		{[]string{"π", "2", "×"}, "π×2 ="},
		{[]string{"√"}, "√(?) ="},
		// equal precedence is not parenthesized, even when it matters
		{[]string{"5", "3", "2", "-", "-"}, "5-3-2 ="},
		{[]string{"5", "3", "-", "2", "-"}, "5-3-2 ="},
	}
	for _, c := range cases {
		if got := load(c.tokens...).Description(); got != c.want {
			t.Errorf("description of %q is %q, want %q", c.tokens, got, c.want)
		}
	}
}
