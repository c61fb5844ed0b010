package ast

import (
	"errors"
)

// Evaluation errors
var (
	ErrUnboundSymbol  = errors.New("unbound symbol")
	ErrArity          = errors.New("invalid number of arguments")
	ErrNotANumber     = errors.New("not a number")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotASymbol     = errors.New("not a symbol")
	ErrNotCallable    = errors.New("not callable")
)
