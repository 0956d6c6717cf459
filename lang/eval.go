package lang

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/noam"
	"github.com/npillmayer/noam/runtime"
)

// DefaultMaxDepth is the default limit for the nesting of evaluations.
const DefaultMaxDepth = 10000

// Machine executes statements. A machine is not safe for concurrent use,
// but it may be used for consecutive runs, e.g. by a REPL.
type Machine struct {
	out      io.Writer
	maxDepth int
	depth    int
	calls    *runtime.CallStack
}

// Option configures a Machine.
type Option func(*Machine)

// WithOutput directs the output of `print` statements to w.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.out = w
	}
}

// WithMaxDepth limits the nesting of evaluations. Exceeding the limit results
// in a runtime error, which is how endless recursion is reported.
// Values < 1 select DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(m *Machine) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		m.maxDepth = depth
	}
}

// NewMachine creates an interpreter.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		out:      os.Stdout,
		maxDepth: DefaultMaxDepth,
		calls:    runtime.NewCallStack(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes a list of statements in order. If a return statement is
// executed, Run stops and returns the returned value. Otherwise the resulting
// value is nil.
func Run(stmts []Statement) (Value, error) {
	return NewMachine().Run(stmts)
}

// Run executes a list of statements in order. If a return statement is
// executed, Run stops and returns the returned value. Otherwise the resulting
// value is nil.
//
// Errors will be of kind noam.RuntimeError.
func (m *Machine) Run(stmts []Statement) (Value, error) {
	v, returned, err := m.run(stmts)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	if !returned {
		return nil, nil
	}
	return v, nil
}

func (m *Machine) run(stmts []Statement) (Value, bool, error) {
	for _, s := range stmts {
		v, returned, err := m.Exec(s)
		if err != nil || returned {
			return v, returned, err
		}
	}
	return nil, false, nil
}

// Exec executes a single statement. It returns the statement's value (if any)
// and a flag indicating whether a return statement has been executed.
func (m *Machine) Exec(stmt Statement) (Value, bool, error) {
	switch s := stmt.(type) {
	case *Print:
		v, err := m.Eval(s.Expr)
		if err != nil {
			return nil, false, err
		}
		if _, err = fmt.Fprintln(m.out, v.String()); err != nil {
			return nil, false, noam.Errorf(noam.RuntimeError, noam.Span{}, "print: %v", err)
		}
		return v, false, nil
	case *Assignment:
		s.Scope.Bind(s.Name, s.Expr)
		tracer().P("scope", s.Scope.Name).Debugf("%s = %s", s.Name, s.Expr)
		v, err := m.Eval(s.Expr)
		return v, false, err
	case *ExpressionStatement:
		v, err := m.Eval(s.Expr)
		return v, false, err
	case *Return:
		v, err := m.Eval(s.Expr)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case *Conditional:
		for i, c := range s.Conditions {
			v, err := m.Eval(c)
			if err != nil {
				return nil, false, err
			}
			b, ok := v.(BoolValue)
			if !ok {
				return nil, false, m.errorf(spanOf(c), "condition %s is of type %s, expected bool", c, v.Kind())
			}
			if b {
				return m.run(s.Blocks[i])
			}
		}
		if s.WithElse {
			return m.run(s.Blocks[len(s.Blocks)-1])
		}
		return nil, false, nil
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

// Eval evaluates an expression to a value.
func (m *Machine) Eval(expr Expression) (Value, error) {
	m.depth++
	defer func() { m.depth-- }()
	if m.depth > m.maxDepth {
		return nil, m.errorf(spanOf(expr), "maximum evaluation depth of %d exceeded", m.maxDepth)
	}
	switch e := expr.(type) {
	case Value:
		return e, nil
	case *Variable:
		tag, _ := e.Scope.ResolveTag(e.Name)
		if tag == nil {
			return nil, m.errorf(e.Span, "unknown variable %s", e.Name)
		}
		bound, ok := tag.UData.(Expression)
		if !ok {
			return nil, m.errorf(e.Span, "variable %s is not bound", e.Name)
		}
		return m.Eval(bound)
	case *Call:
		return m.call(e)
	case *BinaryOp:
		l, err := m.Eval(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := m.Eval(e.Right)
		if err != nil {
			return nil, err
		}
		v, err := Apply(e.Op, l, r)
		if err != nil {
			return nil, m.wrap(e.Span, err)
		}
		return v, nil
	}
	panic(fmt.Sprintf("unknown expression type %T", expr))
}

// call binds the (unevaluated) arguments to the parameters in the function's
// scope and executes the function's body. As with variables, every read of a
// parameter evaluates its argument expression anew. Functions without a return
// statement evaluate to nil.
func (m *Machine) call(c *Call) (Value, error) {
	fn := c.Symbols.Function(c.Name)
	if fn == nil {
		return nil, m.errorf(c.Span, "unknown function %s", c.Name)
	}
	scope := c.Symbols.FunctionScope(c.Name)
	if scope == nil {
		return nil, m.errorf(c.Span, "no scope for function %s", c.Name)
	}
	if len(c.Args) != len(fn.Params) {
		return nil, m.errorf(c.Span, "function %s expects %d arguments, got %d",
			c.Name, len(fn.Params), len(c.Args))
	}
	if m.calls.FindFrameForScope(scope) != nil {
		tracer().Debugf("re-entering scope of %s, parameters will be overwritten", c.Name)
	}
	for i, p := range fn.Params {
		scope.Bind(p, c.Args[i])
	}
	m.calls.Push(c.Name, scope)
	v, returned, err := m.run(fn.Body)
	if err != nil {
		var nerr *noam.Error
		if errors.As(err, &nerr) && nerr.Frames == nil {
			nerr.Frames = m.calls.Names()
		}
	}
	m.calls.Pop()
	if err != nil {
		return nil, err
	}
	if !returned || v == nil {
		return Nil, nil
	}
	return v, nil
}

func (m *Machine) errorf(span noam.Span, format string, args ...interface{}) error {
	return noam.Errorf(noam.RuntimeError, span, format, args...)
}

func (m *Machine) wrap(span noam.Span, err error) error {
	var nerr *noam.Error
	if errors.As(err, &nerr) && nerr.Span.IsNull() {
		nerr.Span = span
	}
	return err
}

func spanOf(expr Expression) noam.Span {
	switch e := expr.(type) {
	case *Variable:
		return e.Span
	case *Call:
		return e.Span
	case *BinaryOp:
		return e.Span
	}
	return noam.Span{}
}
