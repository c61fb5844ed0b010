package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

const (
	tokenOpenExpression  = "("
	tokenCloseExpression = ")"
)

var atoms = map[string]*ast.Value{
	"#t":  ast.True,
	"#f":  ast.False,
	"nil": ast.Nil,
}

// ParseForm reads exactly one form from the front of tokens and removes the
// tokens it consumed. On error no tree is returned and the state of tokens
// is unspecified.
func ParseForm(tokens *[]string) (*ast.Value, error) {
	tok, ok := peek(tokens)
	if !ok {
		return nil, ErrEOFReached
	}

	switch tok {
	case tokenOpenExpression:
		next(tokens)
		return parseList(tokens)
	case tokenCloseExpression:
		return nil, fmt.Errorf("%w: unexpected %q", ErrUnbalancedParens, tok)
	}

	next(tokens)
	return parseAtom(tok)
}

func parseList(tokens *[]string) (*ast.Value, error) {
	values := []*ast.Value{}

	for {
		tok, ok := peek(tokens)
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrUnbalancedParens, tokenCloseExpression)
		}
		if tok == tokenCloseExpression {
			next(tokens)
			return ast.NewList(values...), nil
		}

		value, err := ParseForm(tokens)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

func parseAtom(tok string) (*ast.Value, error) {
	if !isAtomToken(tok) {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok)
	}

	if f64, ok := parseNumber(tok); ok {
		return ast.NewNumber(f64), nil
	}

	if value, ok := atoms[tok]; ok {
		return value, nil
	}

	return ast.NewSymbol(tok), nil
}

// parseNumber accepts decimal floats. Out of range literals become ±Inf;
// hexadecimal and underscore-separated spellings are left to be symbols.
func parseNumber(tok string) (float64, bool) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(tok, "_") {
		return 0, false
	}

	f64, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f64, true
}

// isAtomToken rejects tokens the lexer would never produce.
func isAtomToken(tok string) bool {
	if tok == "" {
		return false
	}
	return !strings.ContainsFunc(tok, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')'
	})
}

func peek(tokens *[]string) (string, bool) {
	if len(*tokens) == 0 {
		return "", false
	}
	return (*tokens)[0], true
}

func next(tokens *[]string) string {
	tok := (*tokens)[0]
	*tokens = (*tokens)[1:]
	return tok
}

// Parse tokenizes the input and reads the first form from it.
func Parse(in string) (*ast.Value, error) {
	tokens := lexer.Tokenize(in)
	return ParseForm(&tokens)
}

// ParseAll reads every form in the input. An input without forms is an
// ErrEOFReached error.
func ParseAll(in string) ([]*ast.Value, error) {
	tokens := lexer.Tokenize(in)
	if len(tokens) == 0 {
		return nil, ErrEOFReached
	}

	forms := []*ast.Value{}
	for len(tokens) > 0 {
		form, err := ParseForm(&tokens)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}
