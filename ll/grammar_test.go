package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// makeExprGrammar creates a small expression grammar, suitable for LL(1) parsing.
//
//     S  ->  A B
//     A  ->  C D
//     B  ->  + A B  |  ε
//     C  ->  i  |  ( S )
//     D  ->  * C D  |  ε
//
func makeExprGrammar(t *testing.T) *Grammar {
	g, err := NewGrammar("Expressions", "SABCD", "+*i", 'S')
	if err != nil {
		t.Fatal(err)
	}
	rules := []struct {
		V   Symbol
		rhs string
	}{
		{'S', "AB"},
		{'A', "CD"},
		{'B', "+AB"},
		{'B', "eps"},
		{'C', "i"},
		{'C', "(S)"},
		{'D', "*CD"},
		{'D', "epsilon"},
	}
	for _, r := range rules {
		if _, err := g.AddProduction(r.V, r.rhs); err != nil {
			t.Fatalf("cannot add %v -> %s: %v", r.V, r.rhs, err)
		}
	}
	return g
}

func TestGrammarConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	g.Dump()
	assert.Equal(t, 8, g.Size())
	assert.Equal(t, Symbol('S'), g.Start())
	assert.Equal(t, []Symbol{'S', 'A', 'B', 'C', 'D'}, g.NonTerminals())
	assert.Equal(t, []Symbol{'+', '*', 'i', '(', ')'}, g.Terminals(), "undeclared terminals appended")
	alts, err := g.Alternatives('C')
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, alts, 2) {
		assert.Equal(t, "(S)", alts[0].String(), "most recent alternative first")
		assert.Equal(t, "i", alts[1].String())
	}
	hasEps, err := g.HasEpsilonAlternative('D')
	assert.NoError(t, err)
	assert.True(t, hasEps)
	hasEps, err = g.HasEpsilonAlternative('A')
	assert.NoError(t, err)
	assert.False(t, hasEps)
	assert.NoError(t, g.Validate())
}

func TestAddProductionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, err := NewGrammar("G", "SA", "ab", 'S')
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		V   Symbol
		rhs string
		err error
	}{
		{'x', "a", ErrIncorrectVariable},
		{'B', "a", ErrIncorrectVariable},
		{'S', "", ErrNullRule},
		{'S', "a$", ErrReservedSymbol},
		{'x', "", ErrIncorrectVariable},
	}
	for i, test := range tests {
		_, err := g.AddProduction(test.V, test.rhs)
		if !errors.Is(err, test.err) {
			t.Errorf("test #%d: expected error %v, got %v", i, test.err, err)
		}
	}
	assert.Equal(t, 0, g.Size(), "failed registrations must not leave alternatives behind")
}

func TestNewGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	_, err := NewGrammar("G", "Sa", "b", 'S')
	assert.True(t, errors.Is(err, ErrIncorrectVariable))
	_, err = NewGrammar("G", "S", "bA", 'S')
	assert.True(t, errors.Is(err, ErrReservedSymbol))
	_, err = NewGrammar("G", "S", "b$", 'S')
	assert.True(t, errors.Is(err, ErrReservedSymbol))
	_, err = NewGrammar("G", "SA", "b", 'B')
	assert.True(t, errors.Is(err, ErrIncorrectVariable))
}

func TestAddAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, _ := NewGrammar("G", "S", "eps", 'S')
	alt, err := g.AddAlternative('S', []Symbol{'e', 'p', 's'})
	if assert.NoError(t, err) {
		assert.False(t, alt.IsEpsilon(), "symbols spelling a keyword are terminals")
		assert.Equal(t, "eps", alt.String())
	}
	alt, err = g.AddAlternative('S', nil)
	if assert.NoError(t, err) {
		assert.True(t, alt.IsEpsilon())
	}
	_, err = g.AddAlternative('S', []Symbol{'a', EndOfInput})
	assert.True(t, errors.Is(err, ErrReservedSymbol))
	assert.Equal(t, 2, g.Size())
}

func TestUndefinedAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, _ := NewGrammar("G", "SA", "a", 'S')
	g.AddProduction('S', "Aa")
	_, err := g.Alternatives('A')
	assert.True(t, errors.Is(err, ErrUndefinedProduction))
	err = g.Validate()
	assert.True(t, errors.Is(err, ErrUndefinedProduction))
}

func TestAlternativeStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	alts, _ := g.Alternatives('B')
	assert.Equal(t, "ε", alts[0].String())
	assert.True(t, alts[0].IsEpsilon())
	assert.Equal(t, "B → +AB", alts[1].Production())
	assert.Equal(t, []Symbol{'+', 'A', 'B'}, alts[1].RHS())
	assert.Equal(t, alts[1], g.AlternativeBySerial(alts[1].Serial))
	var nilAlt *Alternative
	assert.Equal(t, "<none>", nilAlt.String())
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS('S').N('A').N('B').End()
	b.LHS('A').T('a').End()
	b.LHS('B').T('b').N('B').End()
	b.LHS('B').Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, Symbol('S'), g.Start())
	assert.Equal(t, []Symbol{'S', 'A', 'B'}, g.NonTerminals())
	assert.Equal(t, []Symbol{'a', 'b'}, g.Terminals())
	assert.Equal(t, 4, g.Size())
	//
	b = NewGrammarBuilder("Broken")
	b.LHS('S').T('A').End()
	b.LHS('S').End()
	_, err = b.Grammar()
	assert.Error(t, err)
}
