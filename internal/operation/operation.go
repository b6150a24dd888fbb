package op

import "math"

var (
	_    Operation
	Pi   = ConstantOperand{Sym: "π", Value: math.Pi}
	Mult = BinaryOperation{
		Sym:   "×",
		Prec:  MultPrecedence,
		Apply: func(x, y float64) float64 { return x * y },
	}
	Div = BinaryOperation{
		Sym:   "÷",
		Prec:  MultPrecedence,
		Apply: func(x, y float64) float64 { return x / y },
		Validate: func(x, y float64) error {
			if y == 0 {
				return ErrDivideByZero
			}
			return nil
		},
	}
	Add = BinaryOperation{
		Sym:   "+",
		Prec:  AddPrecedence,
		Apply: func(x, y float64) float64 { return x + y },
	}
	Sub = BinaryOperation{
		Sym:   "-",
		Prec:  AddPrecedence,
		Apply: func(x, y float64) float64 { return x - y },
	}
	Sqrt = UnaryOperation{
		Sym:   "√",
		Apply: math.Sqrt,
		Validate: func(x float64) error {
			if x < 0 {
				return ErrNegativeSqrt
			}
			return nil
		},
	}
	Sin    = UnaryOperation{Sym: "sin", Apply: math.Sin}
	Cos    = UnaryOperation{Sym: "cos", Apply: math.Cos}
	Negate = UnaryOperation{Sym: "±", Apply: func(x float64) float64 { return -x }}
)

// Builtins is the calculator's fixed operation set in keypad order.
var Builtins = []Operation{Pi, Mult, Div, Add, Sub, Sqrt, Sin, Cos, Negate}

// Registry maps symbols to operations. It is never modified after
// NewRegistry returns, so one registry may be shared freely.
type Registry struct {
	ops     map[string]Operation
	symbols []string
}

// NewRegistry builds a registry from ops. When two operations share a
// symbol the first one wins.
func NewRegistry(ops ...Operation) *Registry {
	r := &Registry{ops: make(map[string]Operation, len(ops))}
	for _, o := range ops {
		if _, ok := r.ops[o.Symbol()]; ok {
			continue
		}
		r.ops[o.Symbol()] = o
		r.symbols = append(r.symbols, o.Symbol())
	}
	return r
}

// Default is the registry of Builtins.
var Default = NewRegistry(Builtins...)

// Lookup returns the operation registered under symbol.
func (r *Registry) Lookup(symbol string) (Operation, bool) {
	o, ok := r.ops[symbol]
	return o, ok
}

// Has reports whether symbol names an operation.
func (r *Registry) Has(symbol string) bool {
	_, ok := r.ops[symbol]
	return ok
}

// Symbols returns the registered symbols in registration order.
func (r *Registry) Symbols() []string {
	return append([]string(nil), r.symbols...)
}
