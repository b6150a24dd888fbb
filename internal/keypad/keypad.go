// Package keypad drives a brain from a line-oriented terminal the way the
// calculator's keypad does: every token is entered, then the display and
// the history line are refreshed.
package keypad

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/XJIeI5/rpncalc/internal/brain"
	"github.com/XJIeI5/rpncalc/internal/parser"
)

// Aliases maps what is easy to type to registry symbols.
var Aliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"pi":   "π",
	"sqrt": "√",
	"+/-":  "±",
	"neg":  "±",
}

const (
	cmdUndo      = "undo"
	cmdClear     = "clear"
	cmdClearVars = "clearvars"
	cmdExport    = "export"
	cmdHelp      = "help"
	bindPrefix   = ">"
)

type Session struct {
	brain   *brain.Brain
	out     io.Writer
	display string
}

func NewSession(b *brain.Brain, out io.Writer) *Session {
	return &Session{brain: b, out: out, display: "0"}
}

// Display is the text of the calculator's main display.
func (s *Session) Display() string { return s.display }

// History is the infix rendering of the program.
func (s *Session) History() string { return s.brain.Description() }

// Enter feeds every token of line to the brain and prints the display and
// history once the line is consumed. Blank lines print nothing.
func (s *Session) Enter(line string) {
	tokens := parser.Fields(line)
	if len(tokens) == 0 {
		return
	}
	for _, token := range tokens {
		s.enter(token)
	}
	fmt.Fprintf(s.out, "%s\t%s\n", s.display, s.History())
}

func (s *Session) enter(token string) {
	switch {
	case token == cmdUndo:
		s.show(s.brain.RemoveLastElement())
	case token == cmdClear:
		s.brain.Clear()
		s.display = "0"
	case token == cmdClearVars:
		s.brain.ClearVariables()
		s.show(s.brain.Evaluate())
	case token == cmdExport:
		data, _ := json.Marshal(s.brain.ExportTokens())
		fmt.Fprintln(s.out, string(data))
	case token == cmdHelp:
		s.help()
	case strings.HasPrefix(token, bindPrefix) && len(token) > len(bindPrefix):
		name := strings.TrimPrefix(token, bindPrefix)
		s.show(s.brain.SetVariable(name, s.display))
	default:
		if symbol, ok := Aliases[token]; ok {
			token = symbol
		}
		s.show(s.brain.Push(token))
	}
}

func (s *Session) show(v float64, ok bool) {
	if ok {
		s.display = parser.FormatNumber(v)
		return
	}
	if _, err := s.brain.EvaluateReporting(); err != nil {
		s.display = err.Error()
	}
}

func (s *Session) help() {
	fmt.Fprintf(s.out, "operations: %s\n", strings.Join(s.brain.Registry().Symbols(), " "))
	aliases := make([]string, 0, len(Aliases))
	for alias, symbol := range Aliases {
		aliases = append(aliases, alias+"="+symbol)
	}
	sort.Strings(aliases)
	fmt.Fprintf(s.out, "aliases: %s\n", strings.Join(aliases, " "))
	fmt.Fprintf(s.out, "commands: %s %s %s %s %s >NAME\n", cmdUndo, cmdClear, cmdClearVars, cmdExport, cmdHelp)
}

// LoadProgram replaces the brain's program with the JSON token list in path.
// A missing file is not an error.
func (s *Session) LoadProgram(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("program %s: %w", path, err)
	}
	s.brain.ImportTokens(tokens)
	s.show(s.brain.Evaluate())
	return nil
}

// SaveProgram writes the brain's program to path as a JSON token list.
func (s *Session) SaveProgram(path string) error {
	data, err := json.Marshal(s.brain.ExportTokens())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
