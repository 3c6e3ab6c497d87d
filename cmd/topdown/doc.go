/*
Command topdown analyses single-character grammars for LL(1)-ness and parses
input strings with a predictive parser.

	topdown analyze [-g grammar-file] [--ebnf] [--html table.html]
	topdown parse   [-g grammar-file] [--dot tree.dot] <input>
	topdown repl    [-g grammar-file]

Without a grammar file, a small expression grammar is used:

	S -> AB
	A -> CD
	B -> +AB | eps
	C -> i | (S)
	D -> *CD | eps

Exit codes are 0 for success (or if no grammar is defined), 2 if the grammar
is not LL(1), 3 if the input could not be parsed and 1 for any other error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.cli'
func tracer() tracing.Trace {
	return tracing.Select("topdown.cli")
}
