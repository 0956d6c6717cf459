package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBraceDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	var inputs = []struct {
		source string
		depth  int
	}{
		{"", 0},
		{"x = 1", 0},
		{"func f() {", 1},
		{"func f() {\n  if x { print 1 }\n", 1},
		{"{ {\n}", 1},
		{`print "{"`, 0},
		{"# {\n", 0},
		{"}", -1},
		{`print "abc {`, 0},
		{"{ # }\n", 1},
	}
	for i, input := range inputs {
		d, err := braceDepth(input.source)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if d != input.depth {
			t.Errorf("test %d: expected depth %d for %q, have %d", i, input.depth, input.source, d)
		}
	}
}

func TestInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	var out bytes.Buffer
	intp := newTestIntp(&out)
	lines := []string{
		"func double(a) {",
		"  return a * 2",
		"}",
		"",
		"x = double(21)",
		"print x",
		"print nosuchvar", // error is reported, session continues
		":funcs",
		":scopes",
		":nosuchcommand",
		"print x + 1",
	}
	for i, line := range lines {
		if intp.Input(line) {
			t.Fatalf("line %d: did not expect session to end", i)
		}
	}
	if out.String() != "42\n43\n" {
		t.Errorf("expected output 42 and 43, have %q", out.String())
	}
	if intp.pending.Len() != 0 {
		t.Errorf("expected no pending input")
	}
	if !intp.Input("exit()") {
		t.Errorf("expected exit() to end the session")
	}
	if !intp.Input(":quit") {
		t.Errorf("expected :quit to end the session")
	}
}

func TestRunInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	var out, errout bytes.Buffer
	status := run([]string{"-e", "print 1 + 2"}, strings.NewReader(""), &out, &errout)
	if status != exitOK {
		t.Fatalf("expected exit status 0, have %d: %s", status, errout.String())
	}
	if out.String() != "3\n" {
		t.Errorf("expected 3, have %q", out.String())
	}
}

func TestRunFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	script := filepath.Join(t.TempDir(), "add.noam")
	source := "func add(a, b) {\n  return a + b\n}\nprint add(2, 3)\n"
	if err := os.WriteFile(script, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	var out, errout bytes.Buffer
	status := run([]string{script}, strings.NewReader(""), &out, &errout)
	if status != exitOK {
		t.Fatalf("expected exit status 0, have %d: %s", status, errout.String())
	}
	if out.String() != "5\n" {
		t.Errorf("expected 5, have %q", out.String())
	}
}

func TestRunStdin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	var out, errout bytes.Buffer
	status := run(nil, strings.NewReader("x = \"a\"\nprint x + \"b\"\n"), &out, &errout)
	if status != exitOK {
		t.Fatalf("expected exit status 0, have %d: %s", status, errout.String())
	}
	if out.String() != "ab\n" {
		t.Errorf("expected ab, have %q", out.String())
	}
}

func TestRunFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noam.repl")
	defer teardown()
	//
	var runs = []struct {
		args   []string
		status int
	}{
		{[]string{"-e", "print y"}, exitScript},
		{[]string{"-e", "print 1 + 2 + 3"}, exitScript},
		{[]string{"-e", "print 1 $ 2"}, exitScript},
		{[]string{"-depth", "50", "-e", "func f() { return f() }\nf()"}, exitScript},
		{[]string{filepath.Join(t.TempDir(), "missing.noam")}, exitUsage},
		{[]string{"-nosuchflag"}, exitUsage},
		{[]string{"a.noam", "b.noam"}, exitUsage},
	}
	for i, r := range runs {
		var out, errout bytes.Buffer
		if status := run(r.args, strings.NewReader(""), &out, &errout); status != r.status {
			t.Errorf("test %d: expected exit status %d, have %d", i, r.status, status)
		}
		if errout.Len() == 0 {
			t.Errorf("test %d: expected a message on stderr", i)
		}
	}
}
