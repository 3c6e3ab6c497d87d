package gramfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown/ll"
	"github.com/stretchr/testify/assert"
)

const exprGrammar = `# Expressions with + and *
%name Expressions
%nonterminals SABCD
%terminals +*i
%start S

S -> AB
A -> CD
B -> +AB | eps
C -> i | (S)
D -> *CD | epsilon
`

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := ReadGrammar(strings.NewReader(exprGrammar))
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	assert.Equal(t, "Expressions", g.Name)
	assert.Equal(t, ll.Symbol('S'), g.Start())
	assert.Equal(t, []ll.Symbol{'S', 'A', 'B', 'C', 'D'}, g.NonTerminals())
	assert.Equal(t, 8, g.Size())
	alts, err := g.Alternatives('B')
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "ε", alts[0].String())
	assert.Equal(t, "+AB", alts[1].String())
	//
	ga, err := ll.Analyze(g)
	if err != nil {
		t.Fatal(err)
	}
	table, err := ll.BuildTable(ga)
	if err != nil {
		t.Fatal(err)
	}
	alt, ok := table.Lookup('C', '(')
	if assert.True(t, ok) {
		assert.Equal(t, "(S)", alt.String())
	}
}

func TestReadGrammarDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := ReadGrammar(strings.NewReader("E->aF\nF -> b F|eps"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, DefaultName, g.Name)
	assert.Equal(t, ll.Symbol('E'), g.Start())
	assert.Equal(t, []ll.Symbol{'E', 'F'}, g.NonTerminals())
	assert.Equal(t, []ll.Symbol{'a', 'b'}, g.Terminals())
	assert.Equal(t, 3, g.Size())
}

func TestSpacedEpsilonWordIsTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := ReadGrammar(strings.NewReader("%terminals s p e\nS -> e p s | e p s i l o n | eps\n"))
	if err != nil {
		t.Fatal(err)
	}
	alts, err := g.Alternatives('S')
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, alts, 3) {
		assert.True(t, alts[0].IsEpsilon())
		assert.Equal(t, "epsilon", alts[1].String())
		assert.Equal(t, "eps", alts[2].String())
		assert.Equal(t, []ll.Symbol{'e', 'p', 's'}, alts[2].RHS())
	}
}

func TestReadGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	var tests = []struct {
		input string
		line  int
		err   error
	}{
		{"S -> a\nS a", 2, ErrSyntax},
		{"S -> a\n%foo x", 2, ErrSyntax},
		{"S -> a\n\nS -> eps a", 3, ErrSyntax},
		{"%start SA\nS -> a", 1, ErrSyntax},
		{"S -> a | ", 1, ll.ErrNullRule},
		{"S -> a |\nA -> b", 1, ll.ErrNullRule},
		{"S -> e p s eps", 1, ErrSyntax},
		{"%nonterminals S\nS -> a\nx -> b", 3, ll.ErrIncorrectVariable},
		{"S -> aB", 1, ll.ErrUndefinedProduction},
		{"# nothing but a comment", 1, ErrEmpty},
	}
	for i, test := range tests {
		_, err := ReadGrammar(strings.NewReader(test.input))
		if !errors.Is(err, test.err) {
			t.Errorf("test #%d: expected error %v, got %v", i, test.err, err)
			continue
		}
		var ferr *Error
		if assert.True(t, errors.As(err, &ferr), "test #%d", i) {
			assert.Equal(t, test.line, ferr.Line, "test #%d: %v", i, err)
		}
	}
}
