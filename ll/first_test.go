package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	ga := NewAnalysis(makeExprGrammar(t))
	if err := ga.CalculateFirsts(); err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		V        Symbol
		contains []Symbol
		size     int
	}{
		{'S', []Symbol{'i', '('}, 2},
		{'A', []Symbol{'i', '('}, 2},
		{'B', []Symbol{'+', Epsilon}, 2},
		{'C', []Symbol{'i', '('}, 2},
		{'D', []Symbol{'*', Epsilon}, 2},
	}
	for _, test := range tests {
		first, err := ga.First(test.V)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("FIRST(%v) = %v", test.V, first)
		assert.Equal(t, test.size, first.Size(), "size of FIRST(%v)", test.V)
		for _, a := range test.contains {
			assert.True(t, first.Contains(a), "%v ∈ FIRST(%v)", a, test.V)
		}
		assert.Empty(t, first.Shadowed())
	}
	ga.Dump()
}

func TestFirstTagsTopLevelAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	ga := NewAnalysis(makeExprGrammar(t))
	first, err := ga.First('A')
	if err != nil {
		t.Fatal(err)
	}
	alt, ok := first.Alternative('(')
	if assert.True(t, ok) {
		assert.Equal(t, "A → CD", alt.Production())
	}
	first, _ = ga.First('D')
	assert.Equal(t, "D → ε", first.EpsilonAlternative().Production())
}

func TestFirstWithNullablePrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Nullable")
	b.LHS('S').N('A').N('B').T('c').End()
	b.LHS('A').T('a').End()
	b.LHS('A').Epsilon()
	b.LHS('B').T('b').End()
	b.LHS('B').Epsilon()
	b.LHS('E').N('A').N('B').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := NewAnalysis(g)
	first, err := ga.First('S')
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 3, first.Size())
	assert.True(t, first.Contains('a'))
	assert.True(t, first.Contains('b'))
	assert.True(t, first.Contains('c'))
	assert.False(t, first.HasEpsilon(), "S cannot derive ε")
	first, _ = ga.First('E')
	assert.True(t, first.HasEpsilon(), "E derives ε through A B")
	assert.True(t, ga.Nullable('E'))
}

func TestFirstUndefinedProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, _ := NewGrammar("G", "SAB", "ab", 'S')
	g.AddProduction('S', "Ab")
	g.AddProduction('A', "a")
	ga := NewAnalysis(g)
	_, err := ga.First('B')
	assert.True(t, errors.Is(err, ErrUndefinedProduction), "FIRST(B)")
	_, err = ga.Follow('B')
	assert.True(t, errors.Is(err, ErrUndefinedProduction), "FOLLOW(B)")
	//
	g.AddProduction('S', "B")
	ga = NewAnalysis(g)
	_, err = ga.First('S')
	assert.True(t, errors.Is(err, ErrUndefinedProduction), "FIRST(S) through B")
}

func TestFirstLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, _ := NewGrammar("LeftRec", "SAB", "xy", 'S')
	g.AddProduction('S', "A")
	g.AddProduction('A', "Bx")
	g.AddProduction('A', "y")
	g.AddProduction('B', "Ay")
	ga := NewAnalysis(g)
	first, err := ga.First('A')
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []Symbol{'y'}, first.Symbols())
	assert.NotEmpty(t, first.Shadowed(), "left recursion produces y from two alternatives")
}
