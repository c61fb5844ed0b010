package lisp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xiam/lisp/ast"
)

// Eval evaluates expr in env.
func Eval(expr *ast.Value, env ast.Scope) (*ast.Value, error) {
	switch expr.Type() {
	case ast.ValueTypeSymbol:
		name, _ := expr.Symbol()
		return env.Lookup(name)
	case ast.ValueTypeList:
		return evalList(expr, env)
	}
	return expr, nil
}

func evalList(expr *ast.Value, env ast.Scope) (*ast.Value, error) {
	list := expr.List()
	if len(list) == 0 {
		return expr, nil
	}

	head, args := list[0], list[1:]

	name, isSymbol := head.Symbol()
	if isSymbol {
		if form, ok := specialForms[name]; ok {
			return form.eval(args, env)
		}
	}

	fn, err := Eval(head, env)
	if err != nil {
		return nil, err
	}

	if !fn.IsCallable() {
		if isSymbol {
			return nil, fmt.Errorf("%w: %s is %v", ast.ErrNotCallable, name, fn)
		}
		// Not a call, the form is data.
		return ast.NewList(append([]*ast.Value{fn}, args...)...), nil
	}

	values, err := evalEach(args, env)
	if err != nil {
		return nil, err
	}

	return apply(fn, values)
}

func evalEach(exprs []*ast.Value, env ast.Scope) ([]*ast.Value, error) {
	values := make([]*ast.Value, 0, len(exprs))
	for i := range exprs {
		value, err := Eval(exprs[i], env)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func apply(fn *ast.Value, args []*ast.Value) (*ast.Value, error) {
	switch fn.Type() {
	case ast.ValueTypeProc:
		return fn.Proc().Call(args)

	case ast.ValueTypeClosure:
		closure := fn.Closure()
		if len(args) != len(closure.Params) {
			return nil, fmt.Errorf("%w: %v expects %d, got %d", ast.ErrArity, fn, len(closure.Params), len(args))
		}

		frame := NewEnvWithOuter(closure.Scope)
		for i, param := range closure.Params {
			frame.Insert(param, args[i])
		}

		if logger.Enabled(context.Background(), slog.LevelDebug) {
			logger.Debug("apply", "closure", fn.String(), "args", ast.NewList(args...).String())
		}

		return Eval(closure.Body, frame)
	}

	return nil, fmt.Errorf("%w: %v", ast.ErrNotCallable, fn)
}
