package lang

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	symtab := NewSymbolTable()
	stmts, err := Parse("x = 1 + 2\n", symtab)
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, have %d", len(stmts))
	}
	a, ok := stmts[0].(*Assignment)
	if !ok {
		t.Fatalf("expected assignment, have %T", stmts[0])
	}
	if a.Name != "x" || a.Scope != symtab.Root() {
		t.Errorf("expected assignment to x in global scope, have %s in %s", a.Name, a.Scope)
	}
	if op, ok := a.Expr.(*BinaryOp); !ok || op.Op != "+" {
		t.Errorf("expected binary operation +, have %s", a.Expr)
	}
	if a.Expr.String() != "(1 + 2)" {
		t.Errorf("expected (1 + 2), have %s", a.Expr)
	}
}

func TestParseConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	stmts, err := Parse("if a { print 1 }\nelse if b {\n}\nelse { print 2\n print 3 }", NewSymbolTable())
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, have %d", len(stmts))
	}
	c, ok := stmts[0].(*Conditional)
	if !ok {
		t.Fatalf("expected conditional, have %T", stmts[0])
	}
	if len(c.Conditions) != 2 || len(c.Blocks) != 3 || !c.WithElse {
		t.Errorf("expected 2 conditions and 3 blocks, have %d and %d", len(c.Conditions), len(c.Blocks))
	}
	if len(c.Blocks[1]) != 0 || len(c.Blocks[2]) != 2 {
		t.Errorf("expected blocks of size 0 and 2, have %d and %d", len(c.Blocks[1]), len(c.Blocks[2]))
	}
}

func TestParseBlockScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	symtab := NewSymbolTable()
	stmts, err := Parse("x = 1\n{\n  x = 2\n  { y = x }\n}\nprint x", symtab)
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 4 {
		t.Fatalf("expected blocks to be flattened into 4 statements, have %d", len(stmts))
	}
	inner := stmts[1].(*Assignment).Scope
	innermost := stmts[2].(*Assignment).Scope
	if inner.Parent != symtab.Root() || innermost.Parent != inner {
		t.Errorf("expected nested scopes root ← %s ← %s", inner, innermost)
	}
	if v := stmts[2].(*Assignment).Expr.(*Variable); v.Scope != innermost {
		t.Errorf("expected variable reference to start lookup in innermost scope")
	}
	if symtab.Scopes().Current() != symtab.Root() {
		t.Errorf("expected all block scopes to be closed")
	}
}

func TestParseFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	symtab := NewSymbolTable()
	stmts, err := Parse("print 1\nfunc add(a, b)\n{\n  s = a + b\n  return s\n}\nfunc zero() { return 0 }", symtab)
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Errorf("expected declarations not to be part of the statement list, have %d statements", len(stmts))
	}
	fn := symtab.Function("add")
	if fn == nil {
		t.Fatalf("expected function add to be registered")
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" || len(fn.Body) != 2 {
		t.Errorf("unexpected signature or body for add: %v, %d statements", fn.Params, len(fn.Body))
	}
	scope := symtab.FunctionScope("add")
	if scope == nil || scope.Parent != symtab.Root() || scope.Name != "add" {
		t.Fatalf("expected scope of add to be a child of the global scope, have %v", scope)
	}
	if fn.Body[0].(*Assignment).Scope != scope {
		t.Errorf("expected assignments in function body to bind in the function's scope")
	}
	funcs := symtab.Functions()
	if len(funcs) != 2 || funcs[0].Name != "add" || funcs[1].Name != "zero" {
		t.Errorf("expected functions in order of declaration, have %v", funcs)
	}
	if len(symtab.Function("zero").Params) != 0 {
		t.Errorf("expected zero to take no parameters")
	}
}

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	var ops = []struct {
		op     string
		l, r   Value
		result Value
	}{
		{"+", IntValue(2), IntValue(3), IntValue(5)},
		{"-", IntValue(2), IntValue(3), IntValue(-1)},
		{"*", IntValue(2), IntValue(3), IntValue(6)},
		{"/", IntValue(-7), IntValue(2), IntValue(-3)},
		{"<", IntValue(2), IntValue(3), BoolValue(true)},
		{">", IntValue(2), IntValue(3), BoolValue(false)},
		{"/", FloatValue(1), FloatValue(4), FloatValue(0.25)},
		{"==", FloatValue(1), FloatValue(1), BoolValue(true)},
		{"+", StringValue("a"), StringValue("b"), StringValue("ab")},
		{"!=", BoolValue(true), BoolValue(false), BoolValue(true)},
		{"==", BoolValue(true), BoolValue(false), BoolValue(false)},
	}
	for i, o := range ops {
		v, err := Apply(o.op, o.l, o.r)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if v != o.result {
			t.Errorf("test %d: expected %s %s %s = %v, have %v", i, o.l, o.op, o.r, o.result, v)
		}
	}
	if _, err := Apply("+", IntValue(1), StringValue("1")); err == nil {
		t.Errorf("expected type mismatch for int + string")
	}
}

func TestValueStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.lang")
	defer teardown()
	//
	var values = []struct {
		v Value
		s string
	}{
		{IntValue(-12), "-12"},
		{FloatValue(3.5), "3.500000"},
		{StringValue("a b"), "a b"},
		{BoolValue(false), "false"},
		{Nil, "nil"},
	}
	for i, v := range values {
		if v.v.String() != v.s {
			t.Errorf("test %d: expected %q, have %q", i, v.s, v.v.String())
		}
	}
}
