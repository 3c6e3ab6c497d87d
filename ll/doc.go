/*
Package ll implements prerequisites for LL(1) parsing.
It is intended for small grammars over a single-character alphabet, where
non-terminals are the upper case letters A…Z and every other character is a
terminal.

Building a Grammar

Grammars are created with a set of non-terminals, a set of terminals and a
start symbol. Clients then register alternatives (right-hand sides) for
non-terminals. The reserved words "epsilon" and "eps" denote the empty
alternative.

Example:

    g, _ := ll.NewGrammar("G", "SABCD", "+*i", 'S')
    g.AddProduction('S', "AB")      // S  ->  A B
    g.AddProduction('A', "CD")      // A  ->  C D
    g.AddProduction('B', "+AB")     // B  ->  + A B
    g.AddProduction('B', "eps")     // B  ->  ε
    g.AddProduction('C', "i")       // C  ->  i
    g.AddProduction('C', "(S)")     // C  ->  ( S )
    g.AddProduction('D', "*CD")     // D  ->  * C D
    g.AddProduction('D', "eps")     // D  ->  ε

Alternatives are prepended to a non-terminal's list, i.e. the most recently
added alternative is examined first. Alternatively, a GrammarBuilder offers
a fluent interface:

    b := ll.NewGrammarBuilder("G")
    b.LHS('B').T('+').N('A').N('B').End()
    b.LHS('B').Epsilon()

Static Grammar Analysis

After the grammar is complete, it has to be analysed. An Analysis object
computes FIRST and FOLLOW sets. Every terminal in FIRST(N) remembers the
alternative of N it has been derived from, which is what the LL(1) table
needs. FOLLOW sets are computed on demand, with a recursion guard: a FOLLOW
set depending on itself marks the grammar as not LL(1).

    ga, err := ll.Analyze(g)
    first, _ := ga.First('C')     // {(, i}
    follow, _ := ga.Follow('S')   // {$, )}

Table Construction

The LL(1) table maps pairs (non-terminal, lookahead) to alternatives. A cell
claimed twice is reported as a *ConflictError and no table will be produced.

    table, err := ll.BuildTable(ga)
    alt, ok := table.Lookup('B', '+')   // B -> +AB

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
