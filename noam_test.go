package noam

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSpanExtend(t *testing.T) {
	s := Span{4, 6}.Extend(Span{2, 5})
	if s.From() != 2 || s.To() != 6 || s.Len() != 4 {
		t.Errorf("expected (2…6), have %v", s)
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(RuntimeError, Span{}, "unknown variable %q", "x")
	err.Frames = []string{"g", "f"}
	msg := err.Error()
	if !strings.HasPrefix(msg, "runtime error: unknown variable") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.HasSuffix(msg, "[in g ← f]") {
		t.Errorf("expected call frames in message, have %q", msg)
	}
	lexErr := Errorf(LexicalError, Span{3, 4}, "unknown token")
	if lexErr.Error() != "lexical error at (3…4): unknown token" {
		t.Errorf("unexpected message %q", lexErr.Error())
	}
}

func TestErrorKinds(t *testing.T) {
	var err error = Errorf(ParseError, Span{1, 2}, "missing '}'")
	wrapped := fmt.Errorf("loading script: %w", err)
	if KindOf(wrapped) != ParseError {
		t.Errorf("expected parse error kind for wrapped error, have %s", KindOf(wrapped))
	}
	if !errors.Is(wrapped, &Error{Kind: ParseError}) {
		t.Errorf("expected errors.Is to match by kind")
	}
	if errors.Is(wrapped, &Error{Kind: RuntimeError}) {
		t.Errorf("expected errors.Is not to match a different kind")
	}
	if KindOf(errors.New("other")) != NoError {
		t.Errorf("expected foreign errors to have no kind")
	}
}
