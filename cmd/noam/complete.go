package main

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the brace lexer.
const (
	tokOpen = iota
	tokClose
)

var braceLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// braces returns a lexer which recognizes braces, but skips over comments
// and strings (including unterminated ones).
func braces() (*lexmachine.Lexer, error) {
	braceLexer.once.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*`), skip)
		lexer.Add([]byte(`"[^"]*"`), skip)
		lexer.Add([]byte(`"[^"]*`), skip)
		lexer.Add([]byte(`\{`), token(tokOpen))
		lexer.Add([]byte(`\}`), token(tokClose))
		lexer.Add([]byte(`[^\{\}"#]+`), skip)
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			braceLexer.err = err
			return
		}
		braceLexer.lexer = lexer
	})
	return braceLexer.lexer, braceLexer.err
}

// braceDepth returns the number of braces in source which are not closed.
func braceDepth(source string) (int, error) {
	lexer, err := braces()
	if err != nil {
		return 0, err
	}
	s, err := lexer.Scanner([]byte(source))
	if err != nil {
		return 0, err
	}
	depth := 0
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
				continue
			}
			return 0, err
		}
		switch tok.(*lexmachine.Token).Type {
		case tokOpen:
			depth++
		case tokClose:
			depth--
		}
	}
	return depth, nil
}

// complete reports whether source is ready to be handed to the parser. If in
// doubt, it is, and the parser will report any errors.
func complete(source string) bool {
	depth, err := braceDepth(source)
	if err != nil {
		tracer().Errorf("checking input for completeness: %v", err)
		return true
	}
	return depth <= 0
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func token(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
