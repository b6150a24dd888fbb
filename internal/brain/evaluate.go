package brain

import (
	"errors"

	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/XJIeI5/rpncalc/internal/parser"
)

var (
	ErrNotEnoughOperands = errors.New("Not enough operands")
	ErrVariableNotSet    = errors.New("Variable not set")
)

// Evaluate returns the value of the program, or false if any part of it
// cannot be computed: a missing operand, an unbound variable or an operand
// rejected by the operation's validator.
func (b *Brain) Evaluate() (float64, bool) {
	v, _, ok := b.evaluate(len(b.program))
	return v, ok
}

// EvaluateReporting is Evaluate with the reason for a missing value.
// The error is ErrNotEnoughOperands, ErrVariableNotSet or the error of the
// operation's validator.
//
// Operands of the outermost operation are computed with Evaluate, so a
// failure nested below it is reported as ErrNotEnoughOperands. Nothing of
// the partially consumed program is exposed to the caller.
func (b *Brain) EvaluateReporting() (float64, error) {
	end := len(b.program)
	if end == 0 {
		return 0, ErrNotEnoughOperands
	}
	switch o := b.program[end-1].(type) {
	case op.Operand:
		if v, ok := b.resolve(o.Token); ok {
			return v, nil
		}
		return 0, ErrVariableNotSet
	case op.ConstantOperand:
		return o.Value, nil
	case op.UnaryOperation:
		x, _, ok := b.evaluate(end - 1)
		if !ok {
			return 0, ErrNotEnoughOperands
		}
		if err := o.Check(x); err != nil {
			return 0, err
		}
		return o.Apply(x), nil
	case op.BinaryOperation:
		y, rest, ok := b.evaluate(end - 1)
		if !ok {
			return 0, ErrNotEnoughOperands
		}
		x, _, ok := b.evaluate(rest)
		if !ok {
			return 0, ErrNotEnoughOperands
		}
		if err := o.Check(x, y); err != nil {
			return 0, err
		}
		return o.Apply(x, y), nil
	}
	return 0, ErrNotEnoughOperands
}

// evaluate computes the sub-expression that ends just before index end and
// returns its value together with the index at which it starts. On failure
// end is returned unchanged.
func (b *Brain) evaluate(end int) (float64, int, bool) {
	if end <= 0 {
		return 0, end, false
	}
	switch o := b.program[end-1].(type) {
	case op.Operand:
		if v, ok := b.resolve(o.Token); ok {
			return v, end - 1, true
		}
	case op.ConstantOperand:
		return o.Value, end - 1, true
	case op.UnaryOperation:
		if x, rest, ok := b.evaluate(end - 1); ok && o.Check(x) == nil {
			return o.Apply(x), rest, true
		}
	case op.BinaryOperation:
		y, rest, ok := b.evaluate(end - 1)
		if !ok {
			break
		}
		if x, rest, ok := b.evaluate(rest); ok && o.Check(x, y) == nil {
			return o.Apply(x, y), rest, true
		}
	}
	return 0, end, false
}

// resolve reads a numeric literal, falling back to a bound variable.
func (b *Brain) resolve(token string) (float64, bool) {
	if v, ok := parser.Number(token); ok {
		return v, true
	}
	v, ok := b.variables[token]
	return v, ok
}
