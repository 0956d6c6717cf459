/*
Package scanner implements the tokenizer for Noam.

The tokenizer is a hand-written state machine. Multi-character operators
(`==`, `!=`) and reserved words (`true`, `false`, `nil`) are recognized by
consulting a prefix tree, which enables longest-match recognition without a
fixed lookahead.

Newlines are delivered as tokens of their own, and every token sequence is
terminated by an EOF token. Comments start with '#' and extend to the end of
the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noam.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("noam.scanner")
}
