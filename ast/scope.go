package ast

// Binder is implemented by anything new bindings can be inserted into
type Binder interface {
	Insert(name string, value *Value)
}

// Scope represents a lexical environment as seen by the values that capture
// it.
type Scope interface {
	Binder

	// Lookup resolves name in this scope or any of its outer scopes.
	Lookup(name string) (*Value, error)
}

// ProcFunc is the signature of a native procedure
type ProcFunc func(args []*Value) (*Value, error)

// Proc is a native procedure
type Proc struct {
	Name string
	Fn   ProcFunc
}

// Call invokes the procedure with already evaluated arguments
func (p *Proc) Call(args []*Value) (*Value, error) {
	return p.Fn(args)
}

// Closure is a user-defined procedure along with the scope it was created
// in.
type Closure struct {
	Params []string
	Body   *Value
	Scope  Scope
}
