package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			``,
			[]string{},
		},
		{
			"  \t\n ",
			[]string{},
		},
		{
			`1`,
			[]string{"1"},
		},
		{
			`-1 -2.22`,
			[]string{"-1", "-2.22"},
		},
		{
			`(+ 1 2 3)`,
			[]string{"(", "+", "1", "2", "3", ")"},
		},
		{
			`((lambda (n) (* n n)) 5)`,
			[]string{"(", "(", "lambda", "(", "n", ")", "(", "*", "n", "n", ")", ")", "5", ")"},
		},
		{
			`()`,
			[]string{"(", ")"},
		},
		{
			`(def! x#t(quote nil))`,
			[]string{"(", "def!", "x#t", "(", "quote", "nil", ")", ")"},
		},
		{
			"(if\n\t(> 3 2)\n\t1\n\t0)",
			[]string{"(", "if", "(", ">", "3", "2", ")", "1", "0", ")"},
		},
		{
			`)(`,
			[]string{")", "("},
		},
		{
			`"no strings" ; no comments`,
			[]string{`"no`, `strings"`, ";", "no", "comments"},
		},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Out, tokens)
		assert.Equal(t, testCases[i].Out, TokenizeBytes([]byte(testCases[i].In)))
	}
}

func TestTokenizeNoEmptyTokens(t *testing.T) {
	for _, in := range []string{"((( )))", " ( a  ( b ) ) ", "a\r\nb\f(c)"} {
		for _, tok := range Tokenize(in) {
			assert.NotEmpty(t, tok)
		}
	}
}
