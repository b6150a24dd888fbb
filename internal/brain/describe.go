package brain

import (
	"strings"

	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/informitas/stack"
)

const missingOperand = "?"

// Description renders the program as infix text: every complete
// sub-expression in the order it was entered, separated by commas and
// followed by " =". A missing operand is shown as "?".
//
// Operators of equal precedence are never parenthesized against each
// other, so "5 3 2 - -" reads "5-3-2".
func (b *Brain) Description() string {
	peeled := stack.NewStack[string]()
	for end := len(b.program); end > 0; {
		var text string
		text, end = b.describe(end, 0)
		peeled.Push(text)
	}

	var sb strings.Builder
	for !peeled.IsEmpty() {
		text, _ := peeled.Pop()
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(text)
	}
	sb.WriteString(" =")
	return sb.String()
}

// describe renders the sub-expression ending just before end in the context
// of an enclosing operator of precedence outer, and returns the index at
// which the sub-expression starts.
func (b *Brain) describe(end, outer int) (string, int) {
	if end <= 0 {
		return missingOperand, end
	}
	switch o := b.program[end-1].(type) {
	case op.UnaryOperation:
		inner, rest := b.describe(end-1, o.Precedence())
		return o.Symbol() + "(" + inner + ")", rest
	case op.BinaryOperation:
		right, rest := b.describe(end-1, o.Precedence())
		left, rest := b.describe(rest, o.Precedence())
		text := left + o.Symbol() + right
		if outer > o.Precedence() {
			text = "(" + text + ")"
		}
		return text, rest
	default:
		return o.Symbol(), end - 1
	}
}
