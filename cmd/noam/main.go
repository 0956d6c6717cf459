package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/noam/lang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// Exit codes
const (
	exitOK     = 0
	exitScript = 1
	exitUsage  = 2
)

// traceKeys are the tracing keys of all the interpreter's packages.
var traceKeys = []string{"noam.scanner", "noam.lang", "noam.runtime", "noam.repl"}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with arguments args and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("noam", flag.ContinueOnError)
	flags.SetOutput(stderr)
	tlevel := flags.String("trace", "Error", "Trace level [Debug|Info|Error]")
	inline := flags.String("e", "", "Run source `text`")
	interactive := flags.Bool("i", false, "Enter interactive mode after running a script")
	depth := flags.Int("depth", lang.DefaultMaxDepth, "Maximum nesting depth of evaluations")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "noam: at most one script may be given")
		flags.Usage()
		return exitUsage
	}
	intp := NewIntp(lang.WithOutput(stdout), lang.WithMaxDepth(*depth))
	script := false
	if *inline != "" {
		script = true
		if err := intp.Execute(*inline); err != nil {
			fmt.Fprintf(stderr, "noam: %v\n", err)
			return exitScript
		}
	}
	if flags.NArg() == 1 {
		script = true
		filename := flags.Arg(0)
		source, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(stderr, "noam: %v\n", err)
			return exitUsage
		}
		tracer().Infof("running %s", filename)
		if err = intp.Execute(string(source)); err != nil {
			fmt.Fprintf(stderr, "noam: %s: %v\n", filename, err)
			return exitScript
		}
	}
	if script && !*interactive {
		return exitOK
	}
	if !isTerminal(stdin) {
		// input is piped in: treat it as a script
		source, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "noam: %v\n", err)
			return exitUsage
		}
		if err = intp.Execute(string(source)); err != nil {
			fmt.Fprintf(stderr, "noam: %v\n", err)
			return exitScript
		}
		return exitOK
	}
	repl, err := readline.New(prompt)
	if err != nil {
		fmt.Fprintf(stderr, "noam: %v\n", err)
		return exitUsage
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to Noam")
	pterm.Info.Println("Quit with <ctrl>D or :quit")
	intp.REPL()
	return exitOK
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
