package ll

import (
	"fmt"
	"strings"
)

// GrammarBuilder is a fluent interface for creating grammars. The alphabets
// are derived from the rules: non-terminals in order of their first
// occurrence as a left-hand side, terminals in order of their first use.
// Unless set explicitly, the start symbol is the left-hand side of the first
// rule.
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS('S').N('A').N('B').End()       // S  ->  A B
//    b.LHS('B').T('+').N('A').N('B').End() // B  ->  + A B
//    b.LHS('B').Epsilon()                 // B  ->  ε
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name  string
	start Symbol
	rules []*RuleBuilder
	errs  []string
}

// RuleBuilder collects the symbols of one alternative.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// NewGrammarBuilder creates an empty grammar builder for a grammar called name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// Start sets the start symbol.
func (gb *GrammarBuilder) Start(S Symbol) *GrammarBuilder {
	gb.start = S
	return gb
}

// LHS starts a new rule for non-terminal V.
func (gb *GrammarBuilder) LHS(V Symbol) *RuleBuilder {
	if !V.IsNonTerminal() {
		gb.errorf("left-hand side %q is not a non-terminal", rune(V))
	}
	return &RuleBuilder{gb: gb, lhs: V}
}

// N appends a non-terminal to the rule.
func (rb *RuleBuilder) N(V Symbol) *RuleBuilder {
	if !V.IsNonTerminal() {
		rb.gb.errorf("symbol %q in rule for %v is not a non-terminal", rune(V), rb.lhs)
	}
	rb.rhs = append(rb.rhs, V)
	return rb
}

// T appends a terminal to the rule.
func (rb *RuleBuilder) T(a Symbol) *RuleBuilder {
	if !a.IsTerminal() {
		rb.gb.errorf("symbol %q in rule for %v is not a terminal", rune(a), rb.lhs)
	}
	rb.rhs = append(rb.rhs, a)
	return rb
}

// End finishes a rule.
func (rb *RuleBuilder) End() {
	if len(rb.rhs) == 0 {
		rb.gb.errorf("rule for %v has no symbols; use Epsilon() for ε-rules", rb.lhs)
		return
	}
	rb.gb.rules = append(rb.gb.rules, rb)
}

// Epsilon finishes an ε-rule.
func (rb *RuleBuilder) Epsilon() {
	if len(rb.rhs) > 0 {
		rb.gb.errorf("ε-rule for %v must not contain symbols", rb.lhs)
		return
	}
	rb.gb.rules = append(rb.gb.rules, rb)
}

func (gb *GrammarBuilder) errorf(format string, args ...interface{}) {
	gb.errs = append(gb.errs, fmt.Sprintf(format, args...))
}

// Grammar returns the grammar built from the rules, or an error if one of
// the rules has been malformed.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.errs) > 0 {
		return nil, fmt.Errorf("grammar %s: %s", gb.name, strings.Join(gb.errs, "; "))
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %s: %w: no rules", gb.name, ErrNullRule)
	}
	var N, T strings.Builder
	for _, rb := range gb.rules {
		if !strings.ContainsRune(N.String(), rune(rb.lhs)) {
			N.WriteRune(rune(rb.lhs))
		}
	}
	for _, rb := range gb.rules {
		for _, s := range rb.rhs {
			if s.IsTerminal() && !strings.ContainsRune(T.String(), rune(s)) {
				T.WriteRune(rune(s))
			}
		}
	}
	start := gb.start
	if start == 0 {
		start = gb.rules[0].lhs
	}
	g, err := NewGrammar(gb.name, N.String(), T.String(), start)
	if err != nil {
		return nil, err
	}
	for _, rb := range gb.rules {
		if _, err := g.addAlternative(rb.lhs, rb.rhs); err != nil {
			return nil, err
		}
	}
	return g, nil
}
