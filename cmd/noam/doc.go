/*
Command noam is the interpreter for the Noam scripting language.

Usage:

    noam [flags] [script]

With a script file as argument, noam runs the script and exits. Flag -e runs
source text given on the command line. Without a script, or with flag -i,
noam starts an interactive session (a REPL), where input is executed as soon
as all opened braces are closed. The REPL understands a few commands:

    :funcs    list all declared functions
    :scopes   display the tree of scopes with their variables
    :quit     end the session (as does `exit()` or <ctrl>D)

Exit status is 0 on success, 1 if the script failed with a lexical, parse or
runtime error, and 2 for usage errors and unreadable input.

Flags:

    -trace level   trace level [Debug|Info|Error]
    -e source      run source
    -i             enter interactive mode after running a script
    -depth n       maximum nesting depth of evaluations

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noam.repl'
func tracer() tracing.Trace {
	return tracing.Select("noam.repl")
}
