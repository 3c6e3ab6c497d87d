package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/gramfile"
	"github.com/npillmayer/topdown/ll/predictive"
	"github.com/stretchr/testify/assert"
)

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 2, exitCode(&ll.ConflictError{}))
	assert.Equal(t, 2, exitCode(&ll.FollowCycleError{}))
	assert.Equal(t, 3, exitCode(&predictive.ParseError{}))
	assert.Equal(t, 1, exitCode(errors.New("other")))
}

func TestDefaultGrammarIsLL1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := gramfile.ReadGrammar(strings.NewReader(defaultGrammar))
	if err != nil {
		t.Fatal(err)
	}
	_, table, err := buildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 13, table.Size())
}

func TestGrammarSourceRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g1, err := gramfile.ReadGrammar(strings.NewReader(defaultGrammar))
	if err != nil {
		t.Fatal(err)
	}
	src := strings.Join(grammarSource(g1), "\n")
	g2, err := gramfile.ReadGrammar(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot re-read\n%s\n: %v", src, err)
	}
	assert.Equal(t, g1.Name, g2.Name)
	assert.Equal(t, g1.Terminals(), g2.Terminals())
	for _, V := range g1.NonTerminals() {
		a1, _ := g1.Alternatives(V)
		a2, _ := g2.Alternatives(V)
		assert.Equal(t, len(a1), len(a2), "alternatives of %v", V)
		for i := range a1 {
			assert.Equal(t, a1[i].String(), a2[i].String())
		}
	}
}

func TestInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	intp := &Intp{}
	if err := intp.rebuild(); err != nil {
		t.Fatal(err)
	}
	_, err := intp.Eval("ab")
	assert.Equal(t, errNoTable, err)
	_, err = intp.Eval("S -> aS")
	assert.NoError(t, err)
	_, err = intp.Eval("S -> b")
	assert.NoError(t, err)
	_, err = intp.Eval("x -> b")
	assert.True(t, errors.Is(err, ll.ErrIncorrectVariable), "got %v", err)
	assert.Len(t, intp.source, 2, "erroneous line dropped")
	_, err = intp.Eval("aab")
	assert.NoError(t, err)
	_, err = intp.Eval("aa")
	assert.True(t, errors.Is(err, predictive.ErrSyntax))
	_, err = intp.Eval("S -> ab")
	assert.True(t, errors.Is(err, ll.ErrNotLL1))
	assert.Nil(t, intp.table)
	quit, _ := intp.Eval(":quit")
	assert.True(t, quit)
}

func TestReductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := gramfile.ReadGrammar(strings.NewReader(defaultGrammar))
	if err != nil {
		t.Fatal(err)
	}
	_, table, err := buildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, tableSummary(table), "fingerprint")
	tree, err := predictive.NewParser(table).Parse("i+i")
	if err != nil {
		t.Fatal(err)
	}
	r := newReductions()
	assert.Equal(t, "i+i", tree.Walk(r))
	if assert.Len(t, r.data, 10) {
		assert.Equal(t, []string{"C → i", "i"}, r.data[1][:2])
		assert.Equal(t, []string{"D → ε", ""}, r.data[2][:2])
		assert.Equal(t, []string{"S → AB", "i+i"}, r.data[9][:2])
	}
}
