/*
Package lang implements parsing and evaluation of Noam programs.

Noam is a small dynamically typed scripting language with int, float,
string, bool and nil values, global and nested scopes, functions and
conditionals:

    func max(a, b) {
        if a > b {
            return a
        }
        return b
    }
    print max(3, 7)

Parse turns source text into a sequence of statements, consulting and
updating a SymbolTable. The SymbolTable persists across calls to Parse, which
makes it possible to interpret a program piece by piece (as a REPL does).
A Machine executes statements.

Binary expressions consist of exactly one operator and two operands.
Chains like `1 + 2 + 3` are rejected by the parser; parentheses have to be
used instead.

Variables bind expressions, not values: an assignment stores its
right-hand side unevaluated, and every reference to the variable evaluates
the stored expression anew. Function arguments are bound the same way, thus
reading a parameter evaluates the argument expression again, side effects
included. All invocations of a function share a single scope. A recursive
call like `fact(n - 1)` binds n to an expression referring to n itself and
ends at the evaluation depth limit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noam.lang'.
func tracer() tracing.Trace {
	return tracing.Select("noam.lang")
}
