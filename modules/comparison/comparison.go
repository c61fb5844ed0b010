// Package comparison provides numeric comparison procedures.
package comparison

import (
	"fmt"

	"github.com/xiam/lisp/ast"
)

var operators = []struct {
	name string
	cmp  func(a, b float64) bool
}{
	{">", func(a, b float64) bool { return a > b }},
	{">=", func(a, b float64) bool { return a >= b }},
	{"<", func(a, b float64) bool { return a < b }},
	{"<=", func(a, b float64) bool { return a <= b }},
	{"=", func(a, b float64) bool { return a == b }},
}

// AddModule inserts the comparison procedures into b.
func AddModule(b ast.Binder) {
	for _, op := range operators {
		b.Insert(op.name, ast.NewProc(op.name, compare(op.name, op.cmp)))
	}
}

func compare(name string, cmp func(a, b float64) bool) ast.ProcFunc {
	return func(args []*ast.Value) (*ast.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %s expects 2, got %d", ast.ErrArity, name, len(args))
		}

		var operands [2]float64
		for i := range args {
			n, ok := args[i].Number()
			if !ok {
				return nil, fmt.Errorf("%w: %v, cannot compare", ast.ErrNotANumber, args[i])
			}
			operands[i] = n
		}

		return ast.Bool(cmp(operands[0], operands[1])), nil
	}
}
