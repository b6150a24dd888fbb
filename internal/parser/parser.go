package parser

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errorNotNumber error = fmt.Errorf("not a number")
	errorEmpty           = fmt.Errorf("empty token")
)

// IsNumber reports whether token is a numeric literal: an optional minus
// sign, then digits with an optional fraction ("12", "12.", "12.5") or a
// bare fraction (".5"). The grammar does not depend on locale.
func IsNumber(token string) bool {
	i := 0
	if i < len(token) && token[i] == '-' {
		i++
	}
	intDigits := 0
	for ; i < len(token) && isDigit(token[i]); i++ {
		intDigits++
	}
	fracDigits := 0
	if i < len(token) && token[i] == '.' {
		i++
		for ; i < len(token) && isDigit(token[i]); i++ {
			fracDigits++
		}
	}
	return i == len(token) && (intDigits > 0 || fracDigits > 0)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// ParseNumber parses token as a numeric literal.
func ParseNumber(token string) (float64, error) {
	if token == "" {
		return 0, errorEmpty
	}
	v, ok := Number(token)
	if !ok {
		return 0, fmt.Errorf("%q: %w", token, errorNotNumber)
	}
	return v, nil
}

// Number is ParseNumber without the error value, for callers on a hot path.
func Number(token string) (float64, bool) {
	if !IsNumber(token) {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	// out of range literals are still numbers: ParseFloat gives ±Inf or 0
	if errors.Is(err, strconv.ErrRange) {
		return v, true
	}
	return v, err == nil
}

// FormatNumber renders v so that ParseNumber accepts the result back.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// Fields splits a line typed on the keypad into its tokens.
func Fields(line string) []string {
	var tokens []string
	sc := bufio.NewScanner(strings.NewReader(line))
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	return tokens
}
