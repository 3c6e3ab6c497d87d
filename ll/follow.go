package ll

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// FollowSet is FOLLOW(V) for a non-terminal V. It may contain EndOfInput.
type FollowSet struct {
	V       Symbol
	symbols *treeset.Set
}

func newFollowSet(V Symbol) *FollowSet {
	return &FollowSet{
		V:       V,
		symbols: treeset.NewWith(symbolComparator),
	}
}

func (fs *FollowSet) add(a Symbol) {
	fs.symbols.Add(a)
}

func (fs *FollowSet) union(other *FollowSet) {
	fs.symbols.Add(other.symbols.Values()...)
}

// Contains checks if a ∈ FOLLOW(V).
func (fs *FollowSet) Contains(a Symbol) bool {
	return fs.symbols.Contains(a)
}

// Symbols returns the terminals of FOLLOW(V), sorted by character value.
func (fs *FollowSet) Symbols() []Symbol {
	syms := make([]Symbol, 0, fs.symbols.Size())
	for _, x := range fs.symbols.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// Size returns the number of terminals in FOLLOW(V).
func (fs *FollowSet) Size() int {
	return fs.symbols.Size()
}

func (fs *FollowSet) String() string {
	return symbolsString(fs.Symbols())
}

// --- Computing FOLLOW ------------------------------------------------------

// Every non-terminal walks through the states
//
//     notCalculated ⟶ calculating ⟶ calculated
//
// The calculating state guards the recursion: re-entering a calculating entry
// means that FOLLOW(V) depends on itself.
type followState int

const (
	notCalculated followState = iota
	calculating
	calculated
)

type followEntry struct {
	state followState
	set   *FollowSet // valid if state == calculated
}

// Follow returns FOLLOW(V), computing it (and the FOLLOW-sets it depends on)
// if necessary. A circular dependency between FOLLOW-sets is reported as a
// *FollowCycleError, which matches ErrNotLL1.
func (ga *Analysis) Follow(V Symbol) (*FollowSet, error) {
	if err := checkNonTerminal(V); err != nil {
		return nil, err
	}
	if err := ga.CalculateFirsts(); err != nil {
		return nil, err
	}
	fs, err := ga.findFollow(V, nil)
	if err != nil {
		ga.abortFollows()
		return nil, err
	}
	return fs, nil
}

// CalculateFollows computes FOLLOW for every non-terminal with alternatives.
// FIRST-sets are calculated first, if necessary. Entries already calculated
// are skipped.
func (ga *Analysis) CalculateFollows() error {
	if err := ga.CalculateFirsts(); err != nil {
		return err
	}
	for _, V := range ga.g.NonTerminals() {
		if !ga.g.Defined(V) {
			continue
		}
		if e, ok := ga.follows[V]; ok && e.state == calculated {
			continue
		}
		if _, err := ga.findFollow(V, nil); err != nil {
			ga.abortFollows()
			return err
		}
	}
	return nil
}

// abortFollows resets every entry left in state calculating.
func (ga *Analysis) abortFollows() {
	for _, e := range ga.follows {
		if e.state == calculating {
			e.state = notCalculated
		}
	}
}

func (ga *Analysis) followEntry(V Symbol) *followEntry {
	e, ok := ga.follows[V]
	if !ok {
		e = &followEntry{state: notCalculated}
		ga.follows[V] = e
	}
	return e
}

// findFollow scans every alternative of the grammar for occurrences of V.
// chain is the list of non-terminals whose FOLLOW-sets are currently being
// calculated and which led to V.
func (ga *Analysis) findFollow(V Symbol, chain []Symbol) (*FollowSet, error) {
	if !ga.g.Defined(V) {
		return nil, undefined(V)
	}
	e := ga.followEntry(V)
	switch e.state {
	case calculated:
		return e.set, nil
	case calculating:
		cycle := append(cyclePath(chain, V), V)
		tracer().Infof("FOLLOW(%v) depends on itself: %v", V, cycle)
		return nil, &FollowCycleError{Chain: cycle}
	}
	e.state = calculating
	fs := newFollowSet(V)
	if V == ga.g.Start() {
		fs.add(EndOfInput)
	}
	chain = append(chain[:len(chain):len(chain)], V)
	for _, N := range ga.g.NonTerminals() {
		for _, alt := range ga.g.alternatives[N] {
			for i, X := range alt.rhs {
				if X != V {
					continue
				}
				if err := ga.followOccurrence(fs, alt, i, chain); err != nil {
					return nil, err
				}
			}
		}
	}
	e.set = fs
	e.state = calculated
	tracer().Debugf("FOLLOW(%v) = %v", V, fs)
	return fs, nil
}

// followOccurrence adds to fs what may follow the symbol at position i of alt.
func (ga *Analysis) followOccurrence(fs *FollowSet, alt *Alternative, i int, chain []Symbol) error {
	V := alt.rhs[i]
	for _, Y := range alt.rhs[i+1:] {
		if !Y.IsNonTerminal() {
			fs.add(Y)
			return nil
		}
		first, err := ga.First(Y)
		if err != nil {
			return err
		}
		for _, a := range first.Symbols() {
			if a != Epsilon {
				fs.add(a)
			}
		}
		if !first.HasEpsilon() {
			return nil
		}
	}
	if alt.LHS == V { // FOLLOW(V) ⊆ FOLLOW(V) adds nothing
		return nil
	}
	lhsFollow, err := ga.findFollow(alt.LHS, chain)
	if err != nil {
		return err
	}
	fs.union(lhsFollow)
	return nil
}

// cyclePath returns the tail of chain starting at V.
func cyclePath(chain []Symbol, V Symbol) []Symbol {
	for i, s := range chain {
		if s == V {
			return append([]Symbol(nil), chain[i:]...)
		}
	}
	return append([]Symbol(nil), chain...)
}
