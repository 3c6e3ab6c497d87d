package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// --- Alternatives ----------------------------------------------------------

// Alternative is a right-hand side of a production. Alternatives are owned by
// their grammar and are immutable after construction. FIRST-sets and table
// cells refer to them by pointer.
type Alternative struct {
	LHS    Symbol   // the non-terminal this alternative belongs to
	Serial int      // registration number, unique within a grammar
	rhs    []Symbol // nil for the ε-alternative
}

// RHS returns a copy of the symbols of the alternative. The ε-alternative
// returns an empty slice.
func (a *Alternative) RHS() []Symbol {
	return append([]Symbol(nil), a.rhs...)
}

// Len returns the number of symbols of the alternative.
func (a *Alternative) Len() int {
	return len(a.rhs)
}

// At returns the symbol at position i.
func (a *Alternative) At(i int) Symbol {
	return a.rhs[i]
}

// IsEpsilon is true for the empty alternative.
func (a *Alternative) IsEpsilon() bool {
	return len(a.rhs) == 0
}

func (a *Alternative) String() string {
	if a == nil {
		return "<none>"
	}
	if a.IsEpsilon() {
		return Epsilon.String()
	}
	var b strings.Builder
	for _, s := range a.rhs {
		b.WriteRune(rune(s))
	}
	return b.String()
}

// Production returns a string "LHS → RHS".
func (a *Alternative) Production() string {
	return fmt.Sprintf("%v → %v", a.LHS, a)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar over single-character symbols.
// Create one with NewGrammar or with a GrammarBuilder.
type Grammar struct {
	Name         string
	nonterminals []Symbol                  // ordered non-terminal alphabet
	terminals    []Symbol                  // declared terminal alphabet
	undeclared   *arraylist.List           // terminals used, but not declared
	start        Symbol                    // start symbol
	alternatives map[Symbol][]*Alternative // most recent alternative first
	serials      []*Alternative            // alternatives by serial number
}

// NewGrammar creates an empty grammar. nonterminals and terminals are the
// alphabets, given as strings of characters. The start symbol has to be an
// element of the non-terminal alphabet.
func NewGrammar(name string, nonterminals string, terminals string, start Symbol) (*Grammar, error) {
	g := &Grammar{
		Name:         name,
		undeclared:   arraylist.New(),
		alternatives: make(map[Symbol][]*Alternative),
	}
	for _, r := range nonterminals {
		V := Symbol(r)
		if !V.IsNonTerminal() {
			return nil, fmt.Errorf("%w: %q is not in range %v…%v", ErrIncorrectVariable,
				r, MinNonTerminal, MaxNonTerminal)
		}
		if !g.hasNonTerminal(V) {
			g.nonterminals = append(g.nonterminals, V)
		}
	}
	for _, r := range terminals {
		a := Symbol(r)
		if a.IsNonTerminal() {
			return nil, fmt.Errorf("%w: terminal %q collides with non-terminals", ErrReservedSymbol, r)
		}
		if a == EndOfInput || a == Epsilon {
			return nil, fmt.Errorf("%w: terminal %q", ErrReservedSymbol, r)
		}
		if !g.isDeclared(a) {
			g.terminals = append(g.terminals, a)
		}
	}
	if !g.hasNonTerminal(start) {
		return nil, fmt.Errorf("%w: start symbol %q is not a non-terminal of the grammar",
			ErrIncorrectVariable, rune(start))
	}
	g.start = start
	return g, nil
}

// AddProduction registers an alternative rhs for non-terminal V. rhs is a
// string of symbols or one of the reserved words "epsilon" and "eps".
// The new alternative is prepended to the list of alternatives of V.
func (g *Grammar) AddProduction(V Symbol, rhs string) (*Alternative, error) {
	if !V.IsNonTerminal() || !g.hasNonTerminal(V) {
		return nil, fmt.Errorf("%w: %q", ErrIncorrectVariable, rune(V))
	}
	if rhs == "" {
		return nil, fmt.Errorf("%w: empty right-hand side for %v", ErrNullRule, V)
	}
	if rhs == EpsilonWord || rhs == EpsilonWordShort {
		return g.addAlternative(V, nil)
	}
	syms := make([]Symbol, 0, len(rhs))
	for _, r := range rhs {
		syms = append(syms, Symbol(r))
	}
	return g.addAlternative(V, syms)
}

// AddAlternative registers an alternative for non-terminal V, given as a
// sequence of symbols. An empty sequence is the ε-alternative.
func (g *Grammar) AddAlternative(V Symbol, rhs []Symbol) (*Alternative, error) {
	if len(rhs) == 0 {
		return g.addAlternative(V, nil)
	}
	return g.addAlternative(V, append([]Symbol(nil), rhs...))
}

func (g *Grammar) addAlternative(V Symbol, rhs []Symbol) (*Alternative, error) {
	if !V.IsNonTerminal() || !g.hasNonTerminal(V) {
		return nil, fmt.Errorf("%w: %q", ErrIncorrectVariable, rune(V))
	}
	for _, s := range rhs {
		if s == EndOfInput || s == Epsilon {
			return nil, fmt.Errorf("%w: %v in right-hand side of %v", ErrReservedSymbol, s, V)
		}
	}
	for _, s := range rhs {
		if !s.IsNonTerminal() && !g.isDeclared(s) && !g.undeclared.Contains(s) {
			tracer().Debugf("terminal %v is used by %v, but not declared", s, V)
			g.undeclared.Add(s)
		}
	}
	alt := &Alternative{
		LHS:    V,
		Serial: len(g.serials),
		rhs:    rhs,
	}
	g.serials = append(g.serials, alt)
	g.alternatives[V] = append([]*Alternative{alt}, g.alternatives[V]...)
	tracer().Debugf("%3d: %s", alt.Serial, alt.Production())
	return alt, nil
}

// Alternatives returns all alternatives for non-terminal V, most recently
// registered first. If V has no alternatives, ErrUndefinedProduction is
// returned.
func (g *Grammar) Alternatives(V Symbol) ([]*Alternative, error) {
	if !V.IsNonTerminal() {
		return nil, fmt.Errorf("%w: %q", ErrIncorrectVariable, rune(V))
	}
	alts := g.alternatives[V]
	if len(alts) == 0 {
		return nil, undefined(V)
	}
	return append([]*Alternative(nil), alts...), nil
}

// HasEpsilonAlternative checks if V has an ε-alternative.
func (g *Grammar) HasEpsilonAlternative(V Symbol) (bool, error) {
	alts, err := g.Alternatives(V)
	if err != nil {
		return false, err
	}
	for _, alt := range alts {
		if alt.IsEpsilon() {
			return true, nil
		}
	}
	return false, nil
}

// Defined is true if V has at least one alternative.
func (g *Grammar) Defined(V Symbol) bool {
	return len(g.alternatives[V]) > 0
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// NonTerminals returns the non-terminal alphabet, in declaration order.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns the declared terminals, followed by terminals which are
// used in alternatives without being declared.
func (g *Grammar) Terminals() []Symbol {
	T := append([]Symbol(nil), g.terminals...)
	for _, x := range g.undeclared.Values() {
		T = append(T, x.(Symbol))
	}
	return T
}

// Size returns the number of alternatives of the grammar.
func (g *Grammar) Size() int {
	return len(g.serials)
}

// AlternativeBySerial returns the alternative with serial number n, or nil.
func (g *Grammar) AlternativeBySerial(n int) *Alternative {
	if n < 0 || n >= len(g.serials) {
		return nil
	}
	return g.serials[n]
}

// EachAlternative calls f for every alternative, ordered by non-terminal
// alphabet and, per non-terminal, most recent alternative first.
func (g *Grammar) EachAlternative(f func(*Alternative)) {
	for _, V := range g.nonterminals {
		for _, alt := range g.alternatives[V] {
			f(alt)
		}
	}
}

// Validate checks that every non-terminal occuring in an alternative has
// alternatives of its own.
func (g *Grammar) Validate() error {
	var missing []Symbol
	g.EachAlternative(func(alt *Alternative) {
		for _, s := range alt.rhs {
			if s.IsNonTerminal() && !g.Defined(s) && !containsSymbol(missing, s) {
				missing = append(missing, s)
			}
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s referenced, but not defined", ErrUndefinedProduction,
			symbolsString(missing))
	}
	return nil
}

// Dump is a debugging helper, tracing the grammar with level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	tracer().Debugf("N = %s, T = %s, start = %v", symbolsString(g.nonterminals),
		symbolsString(g.Terminals()), g.start)
	g.EachAlternative(func(alt *Alternative) {
		tracer().Debugf("%3d: [%v] ::= [%v]", alt.Serial, alt.LHS, alt)
	})
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar) hasNonTerminal(V Symbol) bool {
	return containsSymbol(g.nonterminals, V)
}

func (g *Grammar) isDeclared(a Symbol) bool {
	return containsSymbol(g.terminals, a)
}

func containsSymbol(syms []Symbol, s Symbol) bool {
	for _, x := range syms {
		if x == s {
			return true
		}
	}
	return false
}
