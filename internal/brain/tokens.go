package brain

import (
	op "github.com/XJIeI5/rpncalc/internal/operation"
	"github.com/XJIeI5/rpncalc/internal/parser"
)

// ExportTokens returns the program as one string per operation.
func (b *Brain) ExportTokens() []string {
	tokens := make([]string, 0, len(b.program))
	for _, o := range b.program {
		tokens = append(tokens, o.Symbol())
	}
	return tokens
}

// ImportTokens replaces the program with the operations named by tokens.
// Tokens that are neither a known symbol nor a number are skipped, so
// variable names do not survive an export/import round trip. Variables are
// left untouched.
func (b *Brain) ImportTokens(tokens []string) {
	program := make([]op.Operation, 0, len(tokens))
	for _, token := range tokens {
		if o, ok := b.registry.Lookup(token); ok {
			program = append(program, o)
		} else if parser.IsNumber(token) {
			program = append(program, op.Operand{Token: token})
		}
	}
	b.program = program
}
