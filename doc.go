/*
Package noam is a small tree-walking interpreter for the Noam scripting language.

Noam is dynamically typed. It knows variables, integer/float/string/bool/nil
literals, binary arithmetic and comparison operators, `print`, if/else-if/else,
user-defined functions with parameters and `return`, and nested block scopes.

	func add(a, b) {
	    return a + b
	}
	print add(2, 3)    # prints 5

Package structure is as follows:

■ scanner: Package scanner implements the tokenizer, a hand-written state machine
consulting a prefix tree of keywords and operators.

■ runtime: Package runtime provides the supporting data types for the interpreter
runtime: scopes, symbol tables and a stack of call frames.

■ lang: Package lang implements the abstract syntax of Noam, the recursive-descent
parser and the evaluator.

■ cmd/noam: Command noam runs scripts and provides an interactive session.

The base package contains data types which are used throughout all the other packages,
most notably the error type every stage of the interpreter reports failures with.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package noam
