package lang

import (
	"strconv"

	"github.com/npillmayer/noam"
	"github.com/npillmayer/noam/runtime"
	"github.com/npillmayer/noam/scanner"
)

// Parse parses a Noam program and returns its top-level statements.
// Function declarations are not part of the result; they are registered
// in symtab, as are all scopes the program opens.
//
// Parse stops at the first error, which will be of kind noam.LexicalError or
// noam.ParseError. Functions declared before the error remain registered.
func Parse(source string, symtab *SymbolTable) ([]Statement, error) {
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, symtab: symtab}
	stmts, err := p.program()
	if err != nil {
		symtab.scopes.Unwind()
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Debugf("parsed %d top-level statements", len(stmts))
	return stmts, nil
}

// parser is a recursive descent parser operating on a slice of tokens.
// The last token always is an EOF token.
type parser struct {
	tokens []scanner.Token
	pos    int
	symtab *SymbolTable
}

// --- Token cursor ----------------------------------------------------------

func (p *parser) peek() scanner.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) scanner.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *parser) advance() scanner.Token {
	tok := p.tokens[p.pos]
	if tok.Kind() != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) at(kind scanner.Kind) bool {
	return p.peek().Kind() == kind
}

// match consumes the next token if it is of the given kind.
func (p *parser) match(kind scanner.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// matchWord consumes the next token if it is the word w.
func (p *parser) matchWord(w string) bool {
	if p.atWord(w) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) atWord(w string) bool {
	tok := p.peek()
	return tok.Kind() == scanner.Word && tok.Lexeme() == w
}

// matchTokens reports whether the upcoming tokens are of the given kinds,
// without consuming any of them.
func (p *parser) matchTokens(kinds ...scanner.Kind) bool {
	for i, k := range kinds {
		if p.peekAt(i).Kind() != k {
			return false
		}
	}
	return true
}

// consume expects the next token to be of the given kind and returns it.
func (p *parser) consume(kind scanner.Kind, what string) (scanner.Token, error) {
	if !p.at(kind) {
		return p.peek(), p.errorf("expected %s, found %s", what, describe(p.peek()))
	}
	return p.advance(), nil
}

func (p *parser) skipNewlines() {
	for p.match(scanner.Newline) {
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return noam.Errorf(noam.ParseError, p.peek().Span(), format, args...)
}

func (p *parser) scope() *runtime.Scope {
	return p.symtab.scopes.Current()
}

func describe(tok scanner.Token) string {
	switch tok.Kind() {
	case scanner.EOF:
		return "end of input"
	case scanner.Newline:
		return "end of line"
	case scanner.String:
		return strconv.Quote(tok.Lexeme())
	}
	return "'" + tok.Lexeme() + "'"
}

// --- Statements ------------------------------------------------------------

// program := { statement | function }
func (p *parser) program() ([]Statement, error) {
	var stmts []Statement
	for {
		p.skipNewlines()
		if p.at(scanner.EOF) {
			return stmts, nil
		}
		if p.matchWord("func") {
			if err := p.function(); err != nil {
				return nil, err
			}
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s...)
	}
}

// statement := assignment | print | if | block | return | expression
//
// A block is flattened into its statements, thus statement returns a slice.
func (p *parser) statement() ([]Statement, error) {
	switch {
	case p.matchTokens(scanner.Word, scanner.Assign):
		return p.assignment()
	case p.matchWord("print"):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		return []Statement{&Print{Expr: e}}, nil
	case p.matchWord("return"):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		return []Statement{&Return{Expr: e}}, nil
	case p.matchWord("if"):
		return p.conditional()
	case p.atWord("else"):
		return nil, p.errorf("'else' without 'if'")
	case p.atWord("func"):
		return nil, p.errorf("functions may only be declared at top level")
	case p.match(scanner.LBrace):
		p.symtab.scopes.PushNewScope("")
		stmts, err := p.block()
		p.symtab.scopes.PopScope()
		return stmts, err
	}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	return []Statement{&ExpressionStatement{Expr: e}}, nil
}

// assignment := word '=' expression
func (p *parser) assignment() ([]Statement, error) {
	name := p.advance().Lexeme()
	p.advance() // '='
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	return []Statement{&Assignment{Name: name, Expr: e, Scope: p.scope()}}, nil
}

// block parses statements up to and including a closing brace. The opening
// brace has already been consumed. Opening a scope is left to the caller.
func (p *parser) block() ([]Statement, error) {
	var stmts []Statement
	for {
		p.skipNewlines()
		if p.match(scanner.RBrace) {
			return stmts, nil
		}
		if p.at(scanner.EOF) {
			return nil, p.errorf("expected '}', found end of input")
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s...)
	}
}

// branch := '{' statement* '}'
//
// Branches of a conditional do not open a scope of their own.
func (p *parser) branch() ([]Statement, error) {
	p.skipNewlines()
	if _, err := p.consume(scanner.LBrace, "'{'"); err != nil {
		return nil, err
	}
	return p.block()
}

// conditional := 'if' expression branch { 'else' 'if' expression branch } [ 'else' branch ]
func (p *parser) conditional() ([]Statement, error) {
	cond := &Conditional{}
	for {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		b, err := p.branch()
		if err != nil {
			return nil, err
		}
		cond.Conditions = append(cond.Conditions, e)
		cond.Blocks = append(cond.Blocks, b)
		mark := p.pos
		p.skipNewlines()
		if !p.matchWord("else") {
			p.pos = mark
			return []Statement{cond}, nil
		}
		if p.matchWord("if") {
			continue
		}
		b, err = p.branch()
		if err != nil {
			return nil, err
		}
		cond.Blocks = append(cond.Blocks, b)
		cond.WithElse = true
		mark = p.pos
		p.skipNewlines()
		if p.atWord("else") {
			return nil, p.errorf("'else' after final 'else' branch")
		}
		p.pos = mark
		return []Statement{cond}, nil
	}
}

// function := 'func' word '(' [ word { ',' word } ] ')' '{' statement* '}'
//
// The function's scope is a child of the global scope. Function and scope are
// registered only if the declaration is complete.
func (p *parser) function() error {
	nameTok, err := p.consume(scanner.Word, "function name")
	if err != nil {
		return err
	}
	fn := &Function{Name: nameTok.Lexeme()}
	if _, err = p.consume(scanner.LParen, "'('"); err != nil {
		return err
	}
	if !p.match(scanner.RParen) {
		for {
			param, err := p.consume(scanner.Word, "parameter name")
			if err != nil {
				return err
			}
			fn.Params = append(fn.Params, param.Lexeme())
			if p.match(scanner.RParen) {
				break
			}
			if _, err = p.consume(scanner.Comma, "',' or ')'"); err != nil {
				return err
			}
		}
	}
	p.skipNewlines()
	if _, err = p.consume(scanner.LBrace, "'{'"); err != nil {
		return err
	}
	scope := p.symtab.scopes.PushNewScope(fn.Name)
	fn.Body, err = p.block()
	if err != nil {
		return err // scopes will be unwound by Parse
	}
	p.symtab.scopes.PopScope()
	p.symtab.define(fn, scope)
	tracer().Debugf("declared function %s(%d params), %d statements", fn.Name, len(fn.Params), len(fn.Body))
	return nil
}

// --- Expressions -----------------------------------------------------------

// expression := atomic [ operator atomic ]
func (p *parser) expression() (Expression, error) {
	left, err := p.atomic()
	if err != nil {
		return nil, err
	}
	if !p.at(scanner.Operator) {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.atomic()
	if err != nil {
		return nil, err
	}
	if p.at(scanner.Operator) {
		return nil, p.errorf("operator %s cannot be chained, use parentheses", p.peek().Lexeme())
	}
	return &BinaryOp{Op: opTok.Lexeme(), Left: left, Right: right, Span: opTok.Span()}, nil
}

// atomic := literal | word | call | '(' expression ')'
func (p *parser) atomic() (Expression, error) {
	tok := p.peek()
	switch tok.Kind() {
	case scanner.Int:
		p.advance()
		n, err := strconv.ParseInt(tok.Lexeme(), 10, 32)
		if err != nil {
			return nil, noam.Errorf(noam.ParseError, tok.Span(), "integer literal %s out of range", tok.Lexeme())
		}
		return IntValue(n), nil
	case scanner.Float:
		p.advance()
		f, err := strconv.ParseFloat(tok.Lexeme(), 32)
		if err != nil {
			return nil, noam.Errorf(noam.ParseError, tok.Span(), "malformed float literal %s", tok.Lexeme())
		}
		return FloatValue(f), nil
	case scanner.String:
		p.advance()
		return StringValue(tok.Lexeme()), nil
	case scanner.Bool:
		p.advance()
		return BoolValue(tok.Lexeme() == "true"), nil
	case scanner.Nil:
		p.advance()
		return Nil, nil
	case scanner.LParen:
		p.advance()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err = p.consume(scanner.RParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case scanner.Word:
		p.advance()
		if p.match(scanner.LParen) {
			return p.call(tok)
		}
		return &Variable{Name: tok.Lexeme(), Scope: p.scope(), Span: tok.Span()}, nil
	}
	return nil, p.errorf("expected expression, found %s", describe(tok))
}

// call := word '(' [ expression { ',' expression } ] ')'
func (p *parser) call(name scanner.Token) (Expression, error) {
	c := &Call{Name: name.Lexeme(), Symbols: p.symtab, Span: name.Span()}
	if p.match(scanner.RParen) {
		return c, nil
	}
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, arg)
		if p.match(scanner.RParen) {
			return c, nil
		}
		if _, err = p.consume(scanner.Comma, "',' or ')'"); err != nil {
			return nil, err
		}
	}
}
