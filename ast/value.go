package ast

import (
	"math"
	"strconv"
	"strings"
)

// Value represents any runtime value of the language. The zero value is not
// valid, use the constructors or the Nil, True and False singletons.
type Value struct {
	t ValueType

	name string
	num  float64
	list []*Value

	proc    *Proc
	closure *Closure
}

var (
	Nil   = &Value{t: ValueTypeNil}
	True  = &Value{t: ValueTypeTrue}
	False = &Value{t: ValueTypeFalse}
)

// NewSymbol creates a symbol value with the given name
func NewSymbol(name string) *Value {
	return &Value{t: ValueTypeSymbol, name: name}
}

// NewNumber creates a numeric value
func NewNumber(n float64) *Value {
	return &Value{t: ValueTypeNumber, num: n}
}

// NewList creates a list value holding the given elements. The slice is
// owned by the value after this call.
func NewList(values ...*Value) *Value {
	if values == nil {
		values = []*Value{}
	}
	return &Value{t: ValueTypeList, list: values}
}

// NewProc wraps a native procedure
func NewProc(name string, fn ProcFunc) *Value {
	return &Value{t: ValueTypeProc, proc: &Proc{Name: name, Fn: fn}}
}

// NewClosure creates a closure value capturing scope
func NewClosure(params []string, body *Value, scope Scope) *Value {
	return &Value{
		t: ValueTypeClosure,
		closure: &Closure{
			Params: params,
			Body:   body,
			Scope:  scope,
		},
	}
}

// Bool maps a Go boolean to True or False
func Bool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// Type returns the variant of the value
func (v *Value) Type() ValueType {
	return v.t
}

// Is returns true if the value is of the given type
func (v *Value) Is(vt ValueType) bool {
	return v.t == vt
}

// IsAtom returns true for every value but lists
func (v *Value) IsAtom() bool {
	return v.t != ValueTypeList
}

// IsCallable returns true for procs and closures
func (v *Value) IsCallable() bool {
	return v.t == ValueTypeProc || v.t == ValueTypeClosure
}

// Symbol returns the name of a symbol value
func (v *Value) Symbol() (string, bool) {
	if v.t != ValueTypeSymbol {
		return "", false
	}
	return v.name, true
}

// Number returns the float held by a number value
func (v *Value) Number() (float64, bool) {
	if v.t != ValueTypeNumber {
		return 0, false
	}
	return v.num, true
}

// List returns the elements of a list value. Callers must not modify the
// returned slice.
func (v *Value) List() []*Value {
	return v.list
}

// Proc returns the native procedure of a proc value
func (v *Value) Proc() *Proc {
	return v.proc
}

// Closure returns the closure of a closure value
func (v *Value) Closure() *Closure {
	return v.closure
}

func (v *Value) String() string {
	switch v.t {
	case ValueTypeNil:
		return "nil"
	case ValueTypeTrue:
		return "#t"
	case ValueTypeFalse:
		return "#f"
	case ValueTypeSymbol:
		return v.name
	case ValueTypeNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueTypeProc:
		return "#<proc " + v.proc.Name + ">"
	case ValueTypeClosure:
		return "#<lambda (" + strings.Join(v.closure.Params, " ") + ")>"
	case ValueTypeList:
		values := make([]string, 0, len(v.list))
		for i := range v.list {
			values = append(values, v.list[i].String())
		}
		return "(" + strings.Join(values, " ") + ")"
	}
	panic("unreachable")
}

// Equal reports whether a and b are structurally equal. NaN equals NaN,
// procs are compared by name and closures by identity.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.t != b.t {
		return false
	}
	switch a.t {
	case ValueTypeNil, ValueTypeTrue, ValueTypeFalse:
		return true
	case ValueTypeSymbol:
		return a.name == b.name
	case ValueTypeNumber:
		return a.num == b.num || (math.IsNaN(a.num) && math.IsNaN(b.num))
	case ValueTypeProc:
		return a.proc.Name == b.proc.Name
	case ValueTypeClosure:
		return a.closure == b.closure
	case ValueTypeList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}
