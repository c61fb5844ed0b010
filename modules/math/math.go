// Package math provides the arithmetic procedures.
package math

import (
	"fmt"

	"github.com/xiam/lisp/ast"
)

// AddModule inserts the arithmetic procedures into b.
func AddModule(b ast.Binder) {
	b.Insert("+", ast.NewProc("+", add))
	b.Insert("-", ast.NewProc("-", sub))
	b.Insert("*", ast.NewProc("*", mul))
	b.Insert("/", ast.NewProc("/", div))
}

func add(args []*ast.Value) (*ast.Value, error) {
	return fold("+", args, func(acc, n float64) (float64, error) {
		return acc + n, nil
	})
}

func sub(args []*ast.Value) (*ast.Value, error) {
	return fold("-", args, func(acc, n float64) (float64, error) {
		return acc - n, nil
	})
}

func mul(args []*ast.Value) (*ast.Value, error) {
	return fold("*", args, func(acc, n float64) (float64, error) {
		return acc * n, nil
	})
}

func div(args []*ast.Value) (*ast.Value, error) {
	return fold("/", args, func(acc, n float64) (float64, error) {
		if n == 0 {
			return 0, fmt.Errorf("%w: %v / 0", ast.ErrDivisionByZero, acc)
		}
		return acc / n, nil
	})
}

// fold uses the first argument as accumulator and applies op to it and each
// of the remaining arguments, in order.
func fold(name string, args []*ast.Value, op func(acc, n float64) (float64, error)) (*ast.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: %s expects at least 2, got %d", ast.ErrArity, name, len(args))
	}

	acc, err := number(args[0])
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		n, err := number(arg)
		if err != nil {
			return nil, err
		}
		if acc, err = op(acc, n); err != nil {
			return nil, err
		}
	}

	return ast.NewNumber(acc), nil
}

func number(v *ast.Value) (float64, error) {
	n, ok := v.Number()
	if !ok {
		return 0, fmt.Errorf("%w: %v", ast.ErrNotANumber, v)
	}
	return n, nil
}
