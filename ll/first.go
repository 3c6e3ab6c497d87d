package ll

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// FirstItem is a pair of a terminal (or ε) and the alternative it originates from.
type FirstItem struct {
	Symbol      Symbol
	Alternative *Alternative
}

// FirstSet is FIRST(V) for a non-terminal V. Every terminal (or ε) is tagged
// with the alternative of V it has been derived from. Membership is keyed by
// the symbol only: the first alternative producing a symbol wins.
// If a different alternative of V produces the same symbol again, the pair is
// kept as a shadowed item. Shadowed items are what makes a FIRST/FIRST conflict
// visible to the table builder.
type FirstSet struct {
	V        Symbol
	entries  *linkedhashmap.Map // Symbol -> *Alternative, in order of discovery
	shadowed []FirstItem
}

func newFirstSet(V Symbol) *FirstSet {
	return &FirstSet{
		V:       V,
		entries: linkedhashmap.New(),
	}
}

func (fs *FirstSet) add(sym Symbol, alt *Alternative) bool {
	if x, found := fs.entries.Get(sym); found {
		if x.(*Alternative) != alt && !fs.isShadowed(sym, alt) {
			tracer().Debugf("FIRST(%v): %v from %v shadowed by %v", fs.V, sym, alt, x)
			fs.shadowed = append(fs.shadowed, FirstItem{Symbol: sym, Alternative: alt})
		}
		return false
	}
	fs.entries.Put(sym, alt)
	return true
}

func (fs *FirstSet) isShadowed(sym Symbol, alt *Alternative) bool {
	for _, item := range fs.shadowed {
		if item.Symbol == sym && item.Alternative == alt {
			return true
		}
	}
	return false
}

// Contains checks if sym ∈ FIRST(V).
func (fs *FirstSet) Contains(sym Symbol) bool {
	_, found := fs.entries.Get(sym)
	return found
}

// Alternative returns the alternative a symbol of FIRST(V) is derived from.
func (fs *FirstSet) Alternative(sym Symbol) (*Alternative, bool) {
	if x, found := fs.entries.Get(sym); found {
		return x.(*Alternative), true
	}
	return nil, false
}

// HasEpsilon checks if ε ∈ FIRST(V).
func (fs *FirstSet) HasEpsilon() bool {
	return fs.Contains(Epsilon)
}

// EpsilonAlternative returns the alternative of V deriving ε, or nil.
func (fs *FirstSet) EpsilonAlternative() *Alternative {
	alt, _ := fs.Alternative(Epsilon)
	return alt
}

// Items returns the pairs of FIRST(V) in order of discovery.
func (fs *FirstSet) Items() []FirstItem {
	items := make([]FirstItem, 0, fs.entries.Size())
	it := fs.entries.Iterator()
	for it.Next() {
		items = append(items, FirstItem{
			Symbol:      it.Key().(Symbol),
			Alternative: it.Value().(*Alternative),
		})
	}
	return items
}

// Symbols returns the terminals (and possibly ε) of FIRST(V) in order of discovery.
func (fs *FirstSet) Symbols() []Symbol {
	syms := make([]Symbol, 0, fs.entries.Size())
	for _, k := range fs.entries.Keys() {
		syms = append(syms, k.(Symbol))
	}
	return syms
}

// Shadowed returns symbols produced by more than one alternative, tagged with
// every alternative but the first one.
func (fs *FirstSet) Shadowed() []FirstItem {
	return append([]FirstItem(nil), fs.shadowed...)
}

// Size returns the number of symbols in FIRST(V).
func (fs *FirstSet) Size() int {
	return fs.entries.Size()
}

func (fs *FirstSet) String() string {
	return symbolsString(fs.Symbols())
}

// --- Computing FIRST -------------------------------------------------------

// First returns FIRST(V). If FIRST(V) has not been calculated yet, it is
// calculated now. For a non-terminal without alternatives,
// ErrUndefinedProduction is returned.
func (ga *Analysis) First(V Symbol) (*FirstSet, error) {
	if err := checkNonTerminal(V); err != nil {
		return nil, err
	}
	if fs, ok := ga.firsts[V]; ok {
		return fs, nil
	}
	fs, err := ga.findFirst(V)
	if err != nil {
		return nil, err
	}
	ga.firsts[V] = fs
	return fs, nil
}

// CalculateFirsts computes FIRST for every non-terminal with alternatives.
// On error, no FIRST-set is retained.
func (ga *Analysis) CalculateFirsts() error {
	for _, V := range ga.g.NonTerminals() {
		if !ga.g.Defined(V) {
			continue
		}
		if _, err := ga.First(V); err != nil {
			ga.firsts = make(map[Symbol]*FirstSet)
			return err
		}
	}
	return nil
}

// findFirst walks the alternatives of V, one at a time. Symbols found are
// tagged with the alternative of V currently walked, regardless of how deep
// into other non-terminals the walk had to descend.
func (ga *Analysis) findFirst(V Symbol) (*FirstSet, error) {
	alts, err := ga.g.Alternatives(V)
	if err != nil {
		return nil, err
	}
	fs := newFirstSet(V)
	for _, alt := range alts {
		if err := ga.walkFirst(fs, alt); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("FIRST(%v) = %v", V, fs)
	return fs, nil
}

// walkFirst uses a worklist of symbol sequences still to inspect. Only the
// leading symbol of a sequence is inspected: a terminal is recorded, a
// non-terminal has its alternatives pushed. If the non-terminal is nullable,
// the remainder of the sequence is pushed for later resumption.
// Every non-terminal is expanded at most once per top-level alternative,
// which bounds the work for recursive grammars.
func (ga *Analysis) walkFirst(fs *FirstSet, top *Alternative) error {
	if !top.IsEpsilon() {
		expanded := make(map[Symbol]bool)
		work := arraystack.New()
		work.Push(top.rhs)
		for !work.Empty() {
			x, _ := work.Pop()
			seq := x.([]Symbol)
			X := seq[0]
			if !X.IsNonTerminal() {
				fs.add(X, top)
				continue
			}
			if ga.nullable[X] && len(seq) > 1 {
				work.Push(seq[1:])
			}
			if expanded[X] {
				continue
			}
			expanded[X] = true
			alts, err := ga.g.Alternatives(X)
			if err != nil {
				return err
			}
			for i := len(alts) - 1; i >= 0; i-- { // first alternative will be popped first
				if !alts[i].IsEpsilon() {
					work.Push(alts[i].rhs)
				}
			}
		}
	}
	if derivesEpsilon(top.rhs, ga.nullable) {
		fs.add(Epsilon, top)
	}
	return nil
}
