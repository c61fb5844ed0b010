// Package lisp implements a small tree-walking evaluator for a Lisp dialect
// with numbers, symbols, lexically scoped closures and a handful of special
// forms.
package lisp

import (
	"math"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
	"github.com/xiam/lisp/modules/comparison"
	lispmath "github.com/xiam/lisp/modules/math"
	"github.com/xiam/lisp/parser"
)

// DefaultEnv returns a fresh top-level environment with pi and the math and
// comparison modules.
func DefaultEnv() *Env {
	env := NewEnv()
	env.Insert("pi", ast.NewNumber(math.Pi))
	lispmath.AddModule(env)
	comparison.AddModule(env)
	return env
}

// EvaluateSource reads the first form of text and evaluates it in env.
func EvaluateSource(text string, env ast.Scope) (*ast.Value, error) {
	tokens := lexer.Tokenize(text)

	form, err := parser.ParseForm(&tokens)
	if err != nil {
		return nil, err
	}

	return Eval(form, env)
}

// EvaluateAll evaluates every form in text, in order, and returns the value
// of the last one. Nothing is evaluated if text does not parse.
func EvaluateAll(text string, env ast.Scope) (*ast.Value, error) {
	forms, err := parser.ParseAll(text)
	if err != nil {
		return nil, err
	}

	var last *ast.Value
	for i := range forms {
		if last, err = Eval(forms[i], env); err != nil {
			return nil, err
		}
	}
	return last, nil
}
