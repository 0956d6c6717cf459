package lang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/noam"
	"github.com/npillmayer/noam/runtime"
)

// Expression is a node of an expression tree. The set of expression types is
// closed: values, variable references, function calls and binary operations.
type Expression interface {
	fmt.Stringer
	expression()
}

// Variable is a reference to a variable. The scope is the scope which was
// current at the time the reference was parsed. Lookup starts there.
type Variable struct {
	Name  string
	Scope *runtime.Scope
	Span  noam.Span
}

// Call is a function invocation. Functions are resolved by name at evaluation
// time, thus functions may be called before they are declared.
type Call struct {
	Name    string
	Args    []Expression
	Symbols *SymbolTable
	Span    noam.Span
}

// BinaryOp is an expression `left op right`.
type BinaryOp struct {
	Op    string
	Left  Expression
	Right Expression
	Span  noam.Span
}

func (*Variable) expression() {}
func (*Call) expression()     {}
func (*BinaryOp) expression() {}

func (v *Variable) String() string {
	return v.Name
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// --- Values ----------------------------------------------------------------

// ValueKind is the runtime type of a value.
type ValueKind int8

// Kinds of values
const (
	NilType ValueKind = iota
	IntType
	FloatType
	StringType
	BoolType
)

func (k ValueKind) String() string {
	switch k {
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	}
	return "nil"
}

// Value is an expression which evaluates to itself.
// The String method of a value yields the text printed by `print`.
type Value interface {
	Expression
	Kind() ValueKind
}

// IntValue is a 32-bit signed integer. Arithmetic wraps around.
type IntValue int32

// FloatValue is a 32-bit floating point number.
type FloatValue float32

// StringValue is an immutable string.
type StringValue string

// BoolValue is either true or false.
type BoolValue bool

// NilValue is the only value of type nil.
type NilValue struct{}

// Nil is the nil value.
var Nil = NilValue{}

func (IntValue) expression()    {}
func (FloatValue) expression()  {}
func (StringValue) expression() {}
func (BoolValue) expression()   {}
func (NilValue) expression()    {}

func (IntValue) Kind() ValueKind    { return IntType }
func (FloatValue) Kind() ValueKind  { return FloatType }
func (StringValue) Kind() ValueKind { return StringType }
func (BoolValue) Kind() ValueKind   { return BoolType }
func (NilValue) Kind() ValueKind    { return NilType }

func (i IntValue) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Floats print with six fractional digits.
func (f FloatValue) String() string {
	return fmt.Sprintf("%f", float64(f))
}

func (s StringValue) String() string {
	return string(s)
}

func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (NilValue) String() string {
	return "nil"
}

// --- Statements ------------------------------------------------------------

// Statement is a node of a statement sequence.
type Statement interface {
	statement()
}

// Print evaluates an expression and writes it, followed by a newline.
type Print struct {
	Expr Expression
}

// Assignment binds an (unevaluated) expression to a name in a scope.
type Assignment struct {
	Name  string
	Expr  Expression
	Scope *runtime.Scope
}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Expr Expression
}

// Return evaluates an expression and ends execution of the enclosing
// statement sequence, propagating the value outwards.
type Return struct {
	Expr Expression
}

// Conditional is an if/else-if/else chain. Blocks has one entry per
// condition, plus a final entry for the else-branch if WithElse is set.
type Conditional struct {
	Conditions []Expression
	Blocks     [][]Statement
	WithElse   bool
}

func (*Print) statement()               {}
func (*Assignment) statement()          {}
func (*ExpressionStatement) statement() {}
func (*Return) statement()              {}
func (*Conditional) statement()         {}
