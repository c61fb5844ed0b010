package parser

import (
	"errors"
)

// Parse errors
var (
	ErrUnbalancedParens  = errors.New("unbalanced parentheses")
	ErrUnrecognizedToken = errors.New("unrecognized token")
	ErrEOFReached        = errors.New("EOF reached")
)
