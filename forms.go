package lisp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xiam/lisp/ast"
)

type specialForm uint8

const (
	formQuote specialForm = iota
	formIf
	formDef
	formLambda
	formDo
	formList
)

var specialForms = map[string]specialForm{
	"quote":  formQuote,
	"if":     formIf,
	"def!":   formDef,
	"lambda": formLambda,
	"do":     formDo,
	"list":   formList,
}

var specialFormNames = map[specialForm]string{
	formQuote:  "quote",
	formIf:     "if",
	formDef:    "def!",
	formLambda: "lambda",
	formDo:     "do",
	formList:   "list",
}

func (f specialForm) String() string {
	return specialFormNames[f]
}

// eval runs the form over its unevaluated arguments.
func (f specialForm) eval(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	switch f {
	case formQuote:
		return evalQuote(args)
	case formIf:
		return evalIf(args, env)
	case formDef:
		return evalDef(args, env)
	case formLambda:
		return evalLambda(args, env)
	case formDo:
		return evalDo(args, env)
	case formList:
		return evalListForm(args, env)
	}
	panic("unreachable")
}

func arityError(f specialForm, expected string, got int) error {
	return fmt.Errorf("%w: %s expects %s, got %d", ast.ErrArity, f, expected, got)
}

// (quote x)
func evalQuote(args []*ast.Value) (*ast.Value, error) {
	if len(args) != 1 {
		return nil, arityError(formQuote, "1", len(args))
	}
	return args[0], nil
}

// (if cond then [else])
func evalIf(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, arityError(formIf, "2 or 3", len(args))
	}

	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}

	switch cond.Type() {
	case ast.ValueTypeTrue:
		return Eval(args[1], env)
	case ast.ValueTypeFalse:
		if len(args) == 3 {
			return Eval(args[2], env)
		}
	}
	return ast.Nil, nil
}

// (def! name expr)
func evalDef(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	if len(args) != 2 {
		return nil, arityError(formDef, "2", len(args))
	}

	name, ok := args[0].Symbol()
	if !ok {
		return nil, fmt.Errorf("%w: cannot bind %v", ast.ErrNotASymbol, args[0])
	}

	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("def!", "name", name, "value", value.String())
	}
	env.Insert(name, value)

	return ast.Nil, nil
}

// (lambda (p1 p2 ...) body)
func evalLambda(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	if len(args) != 2 {
		return nil, arityError(formLambda, "2", len(args))
	}

	if !args[0].Is(ast.ValueTypeList) {
		return nil, fmt.Errorf("%w: lambda parameters must be a list, got %v", ast.ErrNotASymbol, args[0])
	}

	params := make([]string, 0, len(args[0].List()))
	for _, param := range args[0].List() {
		name, ok := param.Symbol()
		if !ok {
			return nil, fmt.Errorf("%w: invalid lambda parameter %v", ast.ErrNotASymbol, param)
		}
		params = append(params, name)
	}

	return ast.NewClosure(params, args[1], env), nil
}

// (do e1 e2 ... en)
func evalDo(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	if len(args) == 0 {
		return nil, arityError(formDo, "at least 1", 0)
	}

	var last *ast.Value
	for i := range args {
		value, err := Eval(args[i], env)
		if err != nil {
			return nil, err
		}
		last = value
	}
	return last, nil
}

// (list e1 e2 ...)
func evalListForm(args []*ast.Value, env ast.Scope) (*ast.Value, error) {
	values, err := evalEach(args, env)
	if err != nil {
		return nil, err
	}
	return ast.NewList(values...), nil
}
