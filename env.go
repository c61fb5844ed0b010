package lisp

import (
	"fmt"
	"sort"

	"github.com/xiam/lisp/ast"
)

// Env is a scope frame. Lookups that miss the frame continue on the outer
// scope; insertions always land on the frame itself.
type Env struct {
	outer ast.Scope
	vars  map[string]*ast.Value
}

// NewEnv creates an empty environment with no outer scope
func NewEnv() *Env {
	return NewEnvWithOuter(nil)
}

// NewEnvWithOuter creates an empty environment that falls back to outer
func NewEnvWithOuter(outer ast.Scope) *Env {
	return &Env{
		outer: outer,
		vars:  make(map[string]*ast.Value),
	}
}

// Lookup returns the value bound to name in this frame or the closest outer
// one.
func (env *Env) Lookup(name string) (*ast.Value, error) {
	if value, ok := env.vars[name]; ok {
		return value, nil
	}
	if env.outer != nil {
		return env.outer.Lookup(name)
	}
	return nil, fmt.Errorf("%w: no value for key %q", ast.ErrUnboundSymbol, name)
}

// Insert binds name in this frame, replacing any previous binding of the
// same frame. Outer frames are never modified.
func (env *Env) Insert(name string, value *ast.Value) {
	env.vars[name] = value
}

// Has reports whether name is bound in this frame
func (env *Env) Has(name string) bool {
	_, ok := env.vars[name]
	return ok
}

// Names returns the sorted names bound in this frame
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.vars))
	for name := range env.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Outer returns the scope this frame falls back to, if any
func (env *Env) Outer() ast.Scope {
	return env.outer
}

var _ = ast.Scope(&Env{})
