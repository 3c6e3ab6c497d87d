package ll

import "fmt"

// Analysis holds the results of analysing a grammar: nullable non-terminals,
// FIRST-sets and FOLLOW-sets. Create one with NewAnalysis or Analyze.
//
// FIRST-sets are computed once and never re-computed. FOLLOW-sets are computed on
// demand and memoized.
type Analysis struct {
	g        *Grammar
	nullable map[Symbol]bool
	firsts   map[Symbol]*FirstSet
	follows  map[Symbol]*followEntry
}

// NewAnalysis creates an analyser for a grammar. Nothing is computed yet.
func NewAnalysis(g *Grammar) *Analysis {
	ga := &Analysis{
		g:       g,
		firsts:  make(map[Symbol]*FirstSet),
		follows: make(map[Symbol]*followEntry),
	}
	ga.nullable = nullables(g)
	return ga
}

// Analyze computes FIRST and FOLLOW for every non-terminal of g which has
// alternatives.
func Analyze(g *Grammar) (*Analysis, error) {
	ga := NewAnalysis(g)
	if err := ga.CalculateFollows(); err != nil {
		return nil, err
	}
	return ga, nil
}

// Grammar returns the grammar under analysis.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// Nullable is true if V derives ε.
func (ga *Analysis) Nullable(V Symbol) bool {
	return ga.nullable[V]
}

// Dump traces FIRST- and FOLLOW-sets computed so far with level Debug.
func (ga *Analysis) Dump() {
	for _, V := range ga.g.NonTerminals() {
		first, follow := "-", "-"
		if fs, ok := ga.firsts[V]; ok {
			first = fs.String()
		}
		if e, ok := ga.follows[V]; ok && e.state == calculated {
			follow = e.set.String()
		}
		tracer().Debugf("%v: FIRST = %s, FOLLOW = %s", V, first, follow)
	}
}

// nullables computes the set of non-terminals deriving ε, as a fixed point.
func nullables(g *Grammar) map[Symbol]bool {
	nullable := make(map[Symbol]bool)
	for changed := true; changed; {
		changed = false
		g.EachAlternative(func(alt *Alternative) {
			if nullable[alt.LHS] {
				return
			}
			if derivesEpsilon(alt.rhs, nullable) {
				nullable[alt.LHS] = true
				changed = true
			}
		})
	}
	return nullable
}

func derivesEpsilon(syms []Symbol, nullable map[Symbol]bool) bool {
	for _, s := range syms {
		if !s.IsNonTerminal() || !nullable[s] {
			return false
		}
	}
	return true
}

func checkNonTerminal(V Symbol) error {
	if !V.IsNonTerminal() {
		return fmt.Errorf("%w: %q", ErrIncorrectVariable, rune(V))
	}
	return nil
}
