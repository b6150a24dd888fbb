package op

import (
	"errors"
	"math"
)

var (
	ErrDivideByZero = errors.New("Divide by Zero")
	ErrNegativeSqrt = errors.New("Sqrt of a negative num")
)

// Operation is one element of a postfix program. The set of variants is
// closed: Operand, ConstantOperand, UnaryOperation and BinaryOperation.
type Operation interface {
	Symbol() string
	Precedence() int
	operation()
}

const (
	MaxPrecedence  = math.MaxInt
	MultPrecedence = 20
	AddPrecedence  = 10
)

// OPERAND
type Operand struct {
	Token string
}

func (o Operand) operation()      {}
func (o Operand) Symbol() string  { return o.Token }
func (o Operand) Precedence() int { return MaxPrecedence }

// CONSTANT
type ConstantOperand struct {
	Sym   string
	Value float64
}

func (c ConstantOperand) operation()      {}
func (c ConstantOperand) Symbol() string  { return c.Sym }
func (c ConstantOperand) Precedence() int { return MaxPrecedence }

// UNARY
type UnaryOperation struct {
	Sym      string
	Apply    func(x float64) float64
	Validate func(x float64) error
}

func (u UnaryOperation) operation()      {}
func (u UnaryOperation) Symbol() string  { return u.Sym }
func (u UnaryOperation) Precedence() int { return MaxPrecedence }

// Check runs the validator, if any.
func (u UnaryOperation) Check(x float64) error {
	if u.Validate == nil {
		return nil
	}
	return u.Validate(x)
}

// BINARY
//
// Apply and Validate receive the operands in the order they were pushed:
// x before y.
type BinaryOperation struct {
	Sym      string
	Prec     int
	Apply    func(x, y float64) float64
	Validate func(x, y float64) error
}

func (b BinaryOperation) operation()      {}
func (b BinaryOperation) Symbol() string  { return b.Sym }
func (b BinaryOperation) Precedence() int { return b.Prec }

func (b BinaryOperation) Check(x, y float64) error {
	if b.Validate == nil {
		return nil
	}
	return b.Validate(x, y)
}
