package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/noam"
)

// scstate is the state of the tokenizer's state machine.
type scstate int

const (
	stateDefault scstate = iota
	stateWord
	stateNumber
	stateFraction
	stateString
	stateComment
	stateOperator // operator candidate, longest match pending
)

// lexer is a character-by-character state machine.
type lexer struct {
	source string
	trie   *Trie
	state  scstate
	buf    strings.Builder // lexeme under construction
	start  int             // byte position where the current lexeme started
	tokens []Token
}

// Tokenize splits source into tokens. The token sequence is terminated by an EOF
// token. Tokenize stops at the first malformed input, returning an error
// of kind noam.LexicalError.
func Tokenize(source string) ([]Token, error) {
	lx := &lexer{
		source: source,
		trie:   Keywords(),
	}
	pos := 0
	for pos < len(source) {
		r, size := utf8.DecodeRuneInString(source[pos:])
		consumed, err := lx.step(r, pos, size)
		if err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
		if consumed {
			pos += size
		}
	}
	if err := lx.finish(pos); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	lx.tokens = append(lx.tokens, MakeToken(EOF, "", noam.Span{uint64(pos), uint64(pos)}))
	return lx.tokens, nil
}

// step feeds rune r at byte position pos to the state machine. It returns false
// if r has not been consumed and has to be processed again in default state.
func (lx *lexer) step(r rune, pos int, size int) (bool, error) {
	switch lx.state {
	case stateDefault:
		return true, lx.begin(r, pos, size)
	case stateWord:
		if isLetter(r) || isDigit(r) {
			lx.buf.WriteString(lx.source[pos : pos+size])
			return true, nil
		}
		lx.emitWord(pos)
		return false, nil
	case stateNumber:
		if isDigit(r) {
			lx.buf.WriteString(lx.source[pos : pos+size])
		} else if r == '.' {
			lx.buf.WriteString(lx.source[pos : pos+size])
			lx.state = stateFraction
		} else {
			lx.emit(Int, pos)
			return false, nil
		}
		return true, nil
	case stateFraction:
		if isDigit(r) {
			lx.buf.WriteString(lx.source[pos : pos+size])
			return true, nil
		}
		lx.emit(Float, pos)
		return false, nil
	case stateString:
		if r == '"' {
			lx.emit(String, pos+size)
			return true, nil
		}
		lx.buf.WriteString(lx.source[pos : pos+size])
		return true, nil
	case stateComment:
		if r == '\n' {
			lx.state = stateDefault
			return false, nil // newline token is still due
		}
		return true, nil
	case stateOperator:
		return lx.longestMatch(r, pos, size)
	}
	panic("tokenizer in unknown state")
}

// begin starts a new token in default state.
func (lx *lexer) begin(r rune, pos int, size int) error {
	lx.start = pos
	switch {
	case r == ' ' || r == '\t' || r == '\r':
		// skip
	case r == '\n':
		lx.buf.WriteString(lx.source[pos : pos+size])
		lx.emit(Newline, pos+size)
	case isLetter(r):
		lx.buf.WriteString(lx.source[pos : pos+size])
		lx.state = stateWord
	case isDigit(r):
		lx.buf.WriteString(lx.source[pos : pos+size])
		lx.state = stateNumber
	case r == '"':
		lx.state = stateString
	case r == '#':
		lx.state = stateComment
	default:
		lx.buf.WriteString(lx.source[pos : pos+size])
		if !lx.trie.Contains(lx.buf.String()) {
			lx.buf.Reset()
			return noam.Errorf(noam.LexicalError, noam.Span{uint64(pos), uint64(pos + size)},
				"unknown token %q", r)
		}
		lx.state = stateOperator
	}
	return nil
}

// longestMatch tries to extend the pending operator by r. If the extended text
// is an entry, it is emitted. If it is not even a prefix, the shorter form is
// emitted and r has to be processed again. Otherwise we keep on accumulating.
func (lx *lexer) longestMatch(r rune, pos int, size int) (bool, error) {
	shorter := lx.buf.String()
	candidate := shorter + string(r)
	if kind := lx.trie.Find(candidate); kind != Illegal {
		lx.buf.WriteString(lx.source[pos : pos+size])
		lx.emit(kind, pos+size)
		return true, nil
	}
	if !lx.trie.Contains(candidate) {
		kind := lx.trie.Find(shorter)
		if kind == Illegal {
			return false, noam.Errorf(noam.LexicalError, lx.span(pos),
				"unknown token %q", shorter)
		}
		lx.emit(kind, pos)
		return false, nil
	}
	lx.buf.WriteString(lx.source[pos : pos+size])
	return true, nil
}

// finish flushes a token pending at the end of input.
func (lx *lexer) finish(pos int) error {
	switch lx.state {
	case stateWord:
		lx.emitWord(pos)
	case stateNumber:
		lx.emit(Int, pos)
	case stateFraction:
		lx.emit(Float, pos)
	case stateOperator:
		kind := lx.trie.Find(lx.buf.String())
		if kind == Illegal {
			return noam.Errorf(noam.LexicalError, lx.span(pos),
				"incomplete operator %q at end of input", lx.buf.String())
		}
		lx.emit(kind, pos)
	case stateString:
		return noam.Errorf(noam.LexicalError, lx.span(pos), "unterminated string")
	}
	return nil
}

// emitWord emits an identifier, or a keyword token if the word is an entry of the
// keyword table.
func (lx *lexer) emitWord(end int) {
	if kind := lx.trie.Find(lx.buf.String()); kind != Illegal {
		lx.emit(kind, end)
		return
	}
	lx.emit(Word, end)
}

// emit appends a token for the current lexeme and resets the state machine.
func (lx *lexer) emit(kind Kind, end int) {
	token := MakeToken(kind, lx.buf.String(), lx.span(end))
	tracer().Debugf("token %v at %v", token, token.Span())
	lx.tokens = append(lx.tokens, token)
	lx.buf.Reset()
	lx.state = stateDefault
}

func (lx *lexer) span(end int) noam.Span {
	return noam.Span{uint64(lx.start), uint64(end)}
}

// Words are restricted to ASCII letters and digits.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
