package ast

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		In  *Value
		Out string
	}{
		{Nil, "nil"},
		{True, "#t"},
		{False, "#f"},
		{NewSymbol("def!"), "def!"},
		{NewNumber(3), "3"},
		{NewNumber(-2.25), "-2.25"},
		{NewNumber(0.5), "0.5"},
		{NewList(), "()"},
		{NewList(NewSymbol("+"), NewNumber(1), NewList(NewNumber(2), Nil)), "(+ 1 (2 nil))"},
		{NewProc("+", nil), "#<proc +>"},
		{NewClosure([]string{"x", "y"}, NewSymbol("x"), nil), "#<lambda (x y)>"},
		{NewClosure(nil, Nil, nil), "#<lambda ()>"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestValueIsAtom(t *testing.T) {
	assert.True(t, Nil.IsAtom())
	assert.True(t, True.IsAtom())
	assert.True(t, NewSymbol("a").IsAtom())
	assert.True(t, NewNumber(1).IsAtom())
	assert.True(t, NewProc("f", nil).IsAtom())
	assert.True(t, NewClosure(nil, Nil, nil).IsAtom())

	assert.False(t, NewList().IsAtom())
	assert.False(t, NewList(NewNumber(1)).IsAtom())
}

func TestValueAccessors(t *testing.T) {
	{
		name, ok := NewSymbol("foo").Symbol()
		assert.True(t, ok)
		assert.Equal(t, "foo", name)

		_, ok = NewNumber(1).Symbol()
		assert.False(t, ok)
	}

	{
		n, ok := NewNumber(1.5).Number()
		assert.True(t, ok)
		assert.Equal(t, 1.5, n)

		_, ok = NewSymbol("1.5").Number()
		assert.False(t, ok)
	}

	{
		assert.True(t, NewProc("f", nil).IsCallable())
		assert.True(t, NewClosure(nil, Nil, nil).IsCallable())
		assert.False(t, NewSymbol("f").IsCallable())
		assert.False(t, NewList().IsCallable())
	}

	{
		assert.Equal(t, True, Bool(true))
		assert.Equal(t, False, Bool(false))
	}
}

func TestEqual(t *testing.T) {
	closure := NewClosure([]string{"x"}, NewSymbol("x"), nil)

	testCases := []struct {
		A     *Value
		B     *Value
		Equal bool
	}{
		{Nil, Nil, true},
		{Nil, False, false},
		{NewNumber(1), NewNumber(1), true},
		{NewNumber(1), NewNumber(2), false},
		{NewNumber(math.NaN()), NewNumber(math.NaN()), true},
		{NewNumber(math.NaN()), NewNumber(1), false},
		{NewNumber(math.Inf(1)), NewNumber(math.Inf(1)), true},
		{NewNumber(math.Inf(1)), NewNumber(math.Inf(-1)), false},
		{NewSymbol("a"), NewSymbol("a"), true},
		{NewSymbol("a"), NewSymbol("b"), false},
		{NewList(), NewList(), true},
		{NewList(NewNumber(1), NewSymbol("a")), NewList(NewNumber(1), NewSymbol("a")), true},
		{NewList(NewNumber(1)), NewList(NewNumber(1), NewNumber(1)), false},
		{NewList(NewList(NewNumber(1))), NewList(NewList(NewNumber(2))), false},
		{NewProc("+", nil), NewProc("+", nil), true},
		{NewProc("+", nil), NewProc("-", nil), false},
		{closure, closure, true},
		{closure, NewClosure([]string{"x"}, NewSymbol("x"), nil), false},
		{NewNumber(1), NewSymbol("1"), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].A, testCases[i].B), "case %d", i)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	Print(&buf, NewList(NewSymbol("+"), NewNumber(1), NewList(NewNumber(2))))

	expected := "(list)[3]\n" +
		"    (symbol): +\n" +
		"    (number): 1\n" +
		"    (list)[1]\n" +
		"        (number): 2\n"

	assert.Equal(t, expected, buf.String())
}
