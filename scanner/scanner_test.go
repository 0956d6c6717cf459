package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/noam"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTrie(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	trie := Keywords()
	for i, test := range []struct {
		s        string
		contains bool
		kind     Kind
	}{
		{s: "=", contains: true, kind: Assign},
		{s: "==", contains: true, kind: Operator},
		{s: "!", contains: true, kind: Illegal},
		{s: "!=", contains: true, kind: Operator},
		{s: "tr", contains: true, kind: Illegal},
		{s: "true", contains: true, kind: Bool},
		{s: "nil", contains: true, kind: Nil},
		{s: "truex", contains: false, kind: Illegal},
		{s: "$", contains: false, kind: Illegal},
		{s: "print", contains: false, kind: Illegal},
	} {
		if c := trie.Contains(test.s); c != test.contains {
			t.Errorf("test %d: expected Contains(%q) to be %v", i, test.s, test.contains)
		}
		if k := trie.Find(test.s); k != test.kind {
			t.Errorf("test %d: expected Find(%q) to be %s, is %s", i, test.s, test.kind, k)
		}
	}
}

func TestTrieInsertOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	trie := NewTrie()
	trie.Insert("ab", Word)
	trie.Insert("ab", Nil)
	if trie.Find("ab") != Nil {
		t.Errorf("expected second insert to overwrite kind")
	}
	if trie.Find("a") != Illegal || !trie.Contains("a") {
		t.Errorf("expected 'a' to be a prefix only")
	}
	if !trie.Contains("") {
		t.Errorf("expected empty string to be contained as the root path")
	}
}

type tok struct {
	kind   Kind
	lexeme string
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		tokens []tok
	}{
		{"x = 1 + 2\n", []tok{{Word, "x"}, {Assign, "="}, {Int, "1"}, {Operator, "+"},
			{Int, "2"}, {Newline, "\n"}, {EOF, ""}}},
		{"==", []tok{{Operator, "=="}, {EOF, ""}}},
		{"= ", []tok{{Assign, "="}, {EOF, ""}}},
		{"a!=b", []tok{{Word, "a"}, {Operator, "!="}, {Word, "b"}, {EOF, ""}}},
		{"===", []tok{{Operator, "=="}, {Assign, "="}, {EOF, ""}}},
		{"a=b", []tok{{Word, "a"}, {Assign, "="}, {Word, "b"}, {EOF, ""}}},
		{"3.14 42", []tok{{Float, "3.14"}, {Int, "42"}, {EOF, ""}}},
		{`"hello world"`, []tok{{String, "hello world"}, {EOF, ""}}},
		{`""`, []tok{{String, ""}, {EOF, ""}}},
		{`"a\n"`, []tok{{String, `a\n`}, {EOF, ""}}},
		{"true false nil", []tok{{Bool, "true"}, {Bool, "false"}, {Nil, "nil"}, {EOF, ""}}},
		{"trueish nilly", []tok{{Word, "trueish"}, {Word, "nilly"}, {EOF, ""}}},
		{"f(a, b2)", []tok{{Word, "f"}, {LParen, "("}, {Word, "a"}, {Comma, ","},
			{Word, "b2"}, {RParen, ")"}, {EOF, ""}}},
		{"{ }", []tok{{LBrace, "{"}, {RBrace, "}"}, {EOF, ""}}},
		{"x # comment = ==\ny", []tok{{Word, "x"}, {Newline, "\n"}, {Word, "y"}, {EOF, ""}}},
		{"# only a comment", []tok{{EOF, ""}}},
		{"a<b>c", []tok{{Word, "a"}, {Operator, "<"}, {Word, "b"}, {Operator, ">"}, {Word, "c"}, {EOF, ""}}},
		{"\tx\r\n", []tok{{Word, "x"}, {Newline, "\n"}, {EOF, ""}}},
		{"1-2", []tok{{Int, "1"}, {Operator, "-"}, {Int, "2"}, {EOF, ""}}},
		{"", []tok{{EOF, ""}}},
		{"\"a\xffb\"", []tok{{String, "a\xffb"}, {EOF, ""}}},
		{"\"ä 100%\"", []tok{{String, "ä 100%"}, {EOF, ""}}},
	} {
		tokens, err := Tokenize(test.input)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if len(tokens) != len(test.tokens) {
			t.Errorf("test %d: expected %d tokens for %q, have %v", i, len(test.tokens), test.input, tokens)
			continue
		}
		for j, token := range tokens {
			if token.Kind() != test.tokens[j].kind || token.Lexeme() != test.tokens[j].lexeme {
				t.Errorf("test %d: expected token #%d to be %v, is %v", i, j, test.tokens[j], token)
			}
		}
	}
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	tokens, err := Tokenize(`ab == "xy"`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []noam.Span{{0, 2}, {3, 5}, {6, 10}, {10, 10}}
	for i, span := range expected {
		if tokens[i].Span() != span {
			t.Errorf("expected span of token #%d to be %v, is %v", i, span, tokens[i].Span())
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	for i, input := range []string{
		"x = 1 $ 2",
		`print "unterminated`,
		"a ! b",
		"a !",
		"1.2.3",
		"x_y",
		"größe = 1",
		"x\xff",
	} {
		tokens, err := Tokenize(input)
		if err == nil {
			t.Errorf("test %d: expected lexical error for %q, have %v", i, input, tokens)
			continue
		}
		if noam.KindOf(err) != noam.LexicalError {
			t.Errorf("test %d: expected lexical error, have %v", i, err)
		}
	}
}

func TestKindString(t *testing.T) {
	if Operator.String() != "Operator" || EOF.String() != "EOF" {
		t.Errorf("unexpected kind names %s, %s", Operator, EOF)
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("unexpected name for unknown kind: %s", Kind(99))
	}
}

func TestTokenizeErrorMessageKeepsPercent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.scanner")
	defer teardown()
	//
	_, err := Tokenize("x = 100%d")
	if err == nil {
		t.Fatalf("expected lexical error for '%%'")
	}
	if !strings.Contains(err.Error(), `unknown token '%'`) {
		t.Errorf("expected message to quote '%%' verbatim, have %q", err.Error())
	}
}
