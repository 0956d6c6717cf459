package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/noam/lang"
	"github.com/npillmayer/noam/runtime"
	"github.com/pterm/pterm"
)

const (
	prompt             = "noam> "
	continuationPrompt = "  ... "
)

// Intp is our interpreter object. It keeps symbols and functions across
// inputs.
type Intp struct {
	symtab  *lang.SymbolTable
	machine *lang.Machine
	repl    *readline.Instance
	pending strings.Builder // incomplete input, waiting for closing braces
}

// NewIntp creates an interpreter with an empty global scope.
func NewIntp(opts ...lang.Option) *Intp {
	return &Intp{
		symtab:  lang.NewSymbolTable(),
		machine: lang.NewMachine(opts...),
	}
}

// Execute parses and runs source. If the source executes a top-level return
// statement, the returned value is traced.
func (intp *Intp) Execute(source string) error {
	stmts, err := lang.Parse(source, intp.symtab)
	if err != nil {
		return err
	}
	v, err := intp.machine.Run(stmts)
	if err != nil {
		return err
	}
	if v != nil {
		tracer().Infof("returned %s", v)
	}
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if quit := intp.Input(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Input processes a line of interactive input. Lines are collected until all
// braces are balanced, then the collected input is executed. Input returns
// true if the user asked to quit.
func (intp *Intp) Input(line string) bool {
	if intp.pending.Len() == 0 {
		cmd := strings.TrimSpace(line)
		if cmd == "" {
			return false
		}
		if strings.HasPrefix(cmd, ":") {
			return intp.Command(cmd)
		}
	}
	intp.pending.WriteString(line)
	intp.pending.WriteByte('\n')
	if !complete(intp.pending.String()) {
		intp.setPrompt(continuationPrompt)
		return false
	}
	source := intp.pending.String()
	intp.pending.Reset()
	intp.setPrompt(prompt)
	if strings.TrimSpace(source) == "exit()" {
		return true
	}
	if err := intp.Execute(source); err != nil {
		pterm.Error.Println(err.Error())
	}
	return false
}

// Command executes a REPL command. Commands start with a colon.
func (intp *Intp) Command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":funcs":
		for _, f := range intp.symtab.Functions() {
			pterm.Info.Println(signature(f))
		}
	case ":scopes":
		ll := leveledScopes(intp.symtab.Root(), pterm.LeveledList{}, 0)
		pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	default:
		pterm.Error.Println(errors.New("unknown command " + cmd))
	}
	return false
}

func (intp *Intp) setPrompt(p string) {
	if intp.repl != nil {
		intp.repl.SetPrompt(p)
	}
}

func signature(f *lang.Function) string {
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(f.Params, ", "))
}

// leveledScopes flattens a scope tree into a leveled list, suitable for
// display as a tree. Every scope lists its bindings as name=expression.
func leveledScopes(sc *runtime.Scope, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := sc.String()
	var bindings []string
	for _, name := range sc.Names() {
		tag := sc.Tags().ResolveTag(name)
		bindings = append(bindings, fmt.Sprintf("%s=%v", name, tag.UData))
	}
	if len(bindings) > 0 {
		text += ": " + strings.Join(bindings, " ")
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  text,
	})
	for _, ch := range sc.Children() {
		ll = leveledScopes(ch, ll, level+1)
	}
	return ll
}
