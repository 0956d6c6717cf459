package noam

import (
	"errors"
	"fmt"
	"strings"
)

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input. Tokens track which
// byte positions of the source text they cover. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Errors -----------------------------------------------------------

// ErrorKind classifies errors by the stage of the interpreter they
// originate from.
type ErrorKind int

// Every failure of the interpreter is of one of these kinds.
const (
	NoError ErrorKind = iota
	LexicalError
	ParseError
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case ParseError:
		return "parse error"
	case RuntimeError:
		return "runtime error"
	}
	return "no error"
}

// Error is the error type of the interpreter. All errors are fatal for the
// current parse or run; it is up to clients (e.g., an interactive loop) to decide
// whether to continue with fresh input.
//
// Runtime errors carry the names of the functions active at the time the error
// occured, innermost first.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Span   Span
	Frames []string
}

// Errorf creates a new error of kind k.
func Errorf(k ErrorKind, span Span, format string, args ...interface{}) *Error {
	return &Error{
		Kind: k,
		Msg:  fmt.Sprintf(format, args...),
		Span: span,
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if !e.Span.IsNull() {
		b.WriteString(" at ")
		b.WriteString(e.Span.String())
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if len(e.Frames) > 0 {
		b.WriteString(" [in ")
		b.WriteString(strings.Join(e.Frames, " ← "))
		b.WriteString("]")
	}
	return b.String()
}

// Is lets errors.Is match errors by kind:
//
//    errors.Is(err, &noam.Error{Kind: noam.RuntimeError})
//
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// KindOf returns the kind of err if it is an interpreter error, NoError otherwise.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}
