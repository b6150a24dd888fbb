// Package brain holds the calculator's postfix program and variables and
// evaluates and describes the program on demand.
//
// A Brain is not safe for concurrent use.
package brain

import (
	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/XJIeI5/rpncalc/internal/parser"
)

type Brain struct {
	registry  *op.Registry
	program   []op.Operation
	variables map[string]float64
}

// New returns an empty brain that knows the built-in operations.
func New() *Brain {
	return NewWithRegistry(op.Default)
}

// NewWithRegistry returns an empty brain that knows the operations of
// registry.
func NewWithRegistry(registry *op.Registry) *Brain {
	return &Brain{
		registry:  registry,
		variables: make(map[string]float64),
	}
}

// Registry returns the operations the brain knows.
func (b *Brain) Registry() *op.Registry { return b.registry }

// Len reports the number of operations in the program.
func (b *Brain) Len() int { return len(b.program) }

// PushOperand appends a number or variable name and evaluates the program.
func (b *Brain) PushOperand(token string) (float64, bool) {
	b.program = append(b.program, op.Operand{Token: token})
	return b.Evaluate()
}

// PerformOperation appends the operation registered under symbol, if there
// is one, and evaluates the program.
func (b *Brain) PerformOperation(symbol string) (float64, bool) {
	if o, ok := b.registry.Lookup(symbol); ok {
		b.program = append(b.program, o)
	}
	return b.Evaluate()
}

// Push appends token as an operation when it names one and as an operand
// otherwise. The empty token is treated as absent: nothing is pushed and
// no value is returned.
func (b *Brain) Push(token string) (float64, bool) {
	if token == "" {
		return 0, false
	}
	if b.registry.Has(token) {
		return b.PerformOperation(token)
	}
	return b.PushOperand(token)
}

// RemoveLastElement drops the newest operation, if any, and evaluates what
// is left.
func (b *Brain) RemoveLastElement() (float64, bool) {
	if len(b.program) > 0 {
		b.program = b.program[:len(b.program)-1]
	}
	return b.Evaluate()
}

// SetVariable binds name when valueText is a number. The program is
// evaluated whether or not the binding happened.
func (b *Brain) SetVariable(name, valueText string) (float64, bool) {
	if v, err := parser.ParseNumber(valueText); err == nil {
		b.variables[name] = v
	}
	return b.Evaluate()
}

func (b *Brain) Variable(name string) (float64, bool) {
	v, ok := b.variables[name]
	return v, ok
}

// ClearProgram empties the program and keeps the variables.
func (b *Brain) ClearProgram() {
	b.program = b.program[:0]
}

func (b *Brain) ClearVariables() {
	clear(b.variables)
}

// Clear empties both the program and the variables.
func (b *Brain) Clear() {
	b.ClearProgram()
	b.ClearVariables()
}
