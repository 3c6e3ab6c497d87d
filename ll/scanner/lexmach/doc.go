/*
Package lexmach provides an adapter to use the lexmachine scanner generator
for the grammar file reader of this module.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The grammar reader lexes single-character symbols, a few literals like "->"
and "|", and the ε keywords. Patterns are added in an init function, literals
and keywords are added by the adapter:

	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
		lexer.Add([]byte(`[^ \t\r\n|]`), lexmach.MakeToken("CHAR", tokChar))
	}
	lm, err := lexmach.New(init, []string{"->", "|"}, []string{"eps"}, tokenIds)

New returns an error if compiling the DFA failed. A tokenizer is created for
each input:

	tok, err := lm.Tokenizer("S -> AB | eps")
	for token := tok.NextToken(); token.TokType() != scanner.EOF; token = tok.NextToken() {
		line := token.Value().(int)
		…
	}

Tokens carry the line number of their match as their value.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
