package lang

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/noam/runtime"
)

// Function is a declared function. Its parameters and all variables assigned
// in its body live in the function's scope, which is shared by all
// invocations of the function.
type Function struct {
	Name   string
	Params []string
	Body   []Statement
}

// SymbolTable holds everything a parser learns about a program: the tree of
// scopes and the registry of functions. A symbol table may be used for more
// than one call to Parse.
type SymbolTable struct {
	scopes *runtime.ScopeTree
	funcs  *linkedhashmap.Map // name -> *Function, in order of first declaration
}

// NewSymbolTable creates a symbol table with an empty global scope.
func NewSymbolTable() *SymbolTable {
	symtab := &SymbolTable{
		scopes: runtime.NewScopeTree(),
		funcs:  linkedhashmap.New(),
	}
	symtab.scopes.SetReleaseHook(func(tag *runtime.Tag) {
		tracer().Debugf("binding of %s released", tag.Name())
	})
	return symtab
}

// Root returns the global scope.
func (symtab *SymbolTable) Root() *runtime.Scope {
	return symtab.scopes.Globals()
}

// Scopes returns the tree of scopes.
func (symtab *SymbolTable) Scopes() *runtime.ScopeTree {
	return symtab.scopes
}

// Function returns the function registered under name, or nil.
func (symtab *SymbolTable) Function(name string) *Function {
	if f, found := symtab.funcs.Get(name); found {
		return f.(*Function)
	}
	return nil
}

// FunctionScope returns the scope of the function registered under name,
// or nil.
func (symtab *SymbolTable) FunctionScope(name string) *runtime.Scope {
	return symtab.scopes.Named(name)
}

// Functions returns all registered functions.
func (symtab *SymbolTable) Functions() []*Function {
	funcs := make([]*Function, 0, symtab.funcs.Size())
	for _, f := range symtab.funcs.Values() {
		funcs = append(funcs, f.(*Function))
	}
	return funcs
}

// define registers a function together with its scope. A function of the
// same name is replaced.
func (symtab *SymbolTable) define(f *Function, scope *runtime.Scope) {
	if symtab.Function(f.Name) != nil {
		tracer().Infof("function %s redefined", f.Name)
	}
	symtab.funcs.Put(f.Name, f)
	symtab.scopes.Register(scope)
}
