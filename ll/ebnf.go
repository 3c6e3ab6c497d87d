package ll

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// WriteEBNF writes g in the EBNF notation of package golang.org/x/exp/ebnf.
// Non-terminals become productions, terminals become quoted tokens. An
// ε-alternative turns the remaining alternatives into an option:
//
//    B = [ "+" A B ] .
//
// A non-terminal with nothing but an ε-alternative gets an empty production.
func WriteEBNF(g *Grammar, w io.Writer) error {
	for _, V := range g.NonTerminals() {
		alts := g.alternatives[V]
		if len(alts) == 0 {
			continue
		}
		var rhs []string
		optional := false
		for _, alt := range alts {
			if alt.IsEpsilon() {
				optional = true
				continue
			}
			rhs = append(rhs, ebnfSequence(alt))
		}
		expr := strings.Join(rhs, " | ")
		if optional && len(rhs) > 0 {
			expr = "[ " + expr + " ]"
		}
		var err error
		if expr == "" {
			_, err = fmt.Fprintf(w, "%v = .\n", V)
		} else {
			_, err = fmt.Fprintf(w, "%v = %s .\n", V, expr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func ebnfSequence(alt *Alternative) string {
	terms := make([]string, len(alt.rhs))
	for i, s := range alt.rhs {
		if s.IsNonTerminal() {
			terms[i] = s.String()
		} else {
			terms[i] = strconv.Quote(s.String())
		}
	}
	return strings.Join(terms, " ")
}

// VerifyEBNF exports g to EBNF and lets package ebnf check it. Non-terminals
// referenced without being defined, as well as productions not reachable from
// the start symbol, are reported.
func VerifyEBNF(g *Grammar) error {
	var buf bytes.Buffer
	if err := WriteEBNF(g, &buf); err != nil {
		return err
	}
	tracer().Debugf("EBNF of %s:\n%s", g.Name, buf.String())
	grammar, err := ebnf.Parse(g.Name, &buf)
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, g.Start().String())
}
