/*
Package topdown is a toolbox for deterministic top-down parsing.

It analyses small context-free grammars, computes FIRST and FOLLOW sets,
builds LL(1) prediction tables and drives a table-based parser producing
parse trees. Package structure is as follows:

■ ll: Package ll implements the grammar model, FIRST/FOLLOW analysis and LL(1)
table construction.

■ ll/predictive: Package predictive implements a table-driven LL(1) parser.

■ ll/parsetree: Package parsetree implements the parse trees created by the parser.

■ ll/scanner: Package scanner defines the tokenizer interface the parser reads from.

■ ll/gramfile: Package gramfile reads grammars from a textual description.

■ cmd/topdown: A command line tool to analyse grammars and parse input, with
an interactive mode.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package topdown
