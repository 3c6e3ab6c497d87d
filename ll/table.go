package ll

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/topdown/ll/sparse"
)

// Table is an LL(1) prediction table, mapping pairs (non-terminal, lookahead)
// to alternatives. Tables are built by BuildTable and are immutable thereafter.
type Table struct {
	g         *Grammar
	terminals []Symbol       // column order; EndOfInput is the last column
	columns   map[Symbol]int // terminal -> column
	cells     *sparse.IntMatrix
}

func newTable(g *Grammar) *Table {
	t := &Table{
		g:         g,
		terminals: append(g.Terminals(), EndOfInput),
		columns:   make(map[Symbol]int),
	}
	for j, a := range t.terminals {
		t.columns[a] = j
	}
	rows := symbolIndex(MaxNonTerminal) + 1
	t.cells = sparse.NewIntMatrix(rows, len(t.terminals), sparse.DefaultNullValue)
	return t
}

// BuildTable creates the LL(1) table from a grammar analysis. FIRST- and
// FOLLOW-sets are computed, if not yet done.
//
// For every non-terminal V and every pair (a, alt) of FIRST(V), the cell (V, a)
// selects alt. If ε ∈ FIRST(V), every terminal of FOLLOW(V) selects the
// alternative deriving ε. A cell claimed by two different alternatives makes
// BuildTable fail with a *ConflictError; no table is returned in this case.
func BuildTable(ga *Analysis) (*Table, error) {
	if err := ga.CalculateFollows(); err != nil {
		return nil, err
	}
	g := ga.Grammar()
	t := newTable(g)
	tracer().Infof("building LL(1) table for grammar %s with %d terminal columns", g.Name, len(t.terminals))
	for _, V := range g.NonTerminals() {
		if !g.Defined(V) {
			tracer().Infof("non-terminal %v has no alternatives, skipping", V)
			continue
		}
		first, err := ga.First(V)
		if err != nil {
			return nil, err
		}
		for _, item := range first.Items() {
			if item.Symbol == Epsilon {
				continue
			}
			if err := t.insert(V, item.Symbol, item.Alternative); err != nil {
				return nil, err
			}
		}
		for _, item := range first.Shadowed() {
			if item.Symbol == Epsilon {
				return nil, &ConflictError{
					NonTerminal: V,
					Terminal:    Epsilon,
					Existing:    first.EpsilonAlternative(),
					Candidate:   item.Alternative,
				}
			}
			if err := t.insert(V, item.Symbol, item.Alternative); err != nil {
				return nil, err
			}
		}
		if first.HasEpsilon() {
			follow, err := ga.Follow(V)
			if err != nil {
				return nil, err
			}
			for _, la := range follow.Symbols() {
				if err := t.insert(V, la, first.EpsilonAlternative()); err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

// insert sets cell (V, a). Inserting the alternative already present is a no-op.
func (t *Table) insert(V Symbol, a Symbol, alt *Alternative) error {
	j, ok := t.columns[a]
	if !ok {
		return fmt.Errorf("%w: terminal %v has no table column", ErrReservedSymbol, a)
	}
	prev, inserted := t.cells.Insert(symbolIndex(V), j, int32(alt.Serial))
	if !inserted {
		if int(prev) == alt.Serial {
			return nil
		}
		existing := t.g.AlternativeBySerial(int(prev))
		tracer().Infof("conflict for M[%v,%v]: %v vs. %v", V, a, existing, alt)
		return &ConflictError{
			NonTerminal: V,
			Terminal:    a,
			Existing:    existing,
			Candidate:   alt,
		}
	}
	tracer().Debugf("M[%v,%v] = %s", V, a, alt.Production())
	return nil
}

// Lookup returns the alternative selected for non-terminal V and lookahead a.
func (t *Table) Lookup(V Symbol, a Symbol) (*Alternative, bool) {
	j, ok := t.columns[a]
	if !ok || !V.IsNonTerminal() {
		return nil, false
	}
	v := t.cells.Value(symbolIndex(V), j)
	if v == t.cells.NullValue() {
		return nil, false
	}
	return t.g.AlternativeBySerial(int(v)), true
}

// Grammar returns the grammar this table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Start returns the start symbol of the grammar.
func (t *Table) Start() Symbol {
	return t.g.Start()
}

// Terminals returns the column symbols of the table, EndOfInput being the last one.
func (t *Table) Terminals() []Symbol {
	return append([]Symbol(nil), t.terminals...)
}

// Size returns the number of cells set.
func (t *Table) Size() int {
	return t.cells.ValueCount()
}

// Each calls f for every cell set, ordered by non-terminal, then by terminal column.
func (t *Table) Each(f func(V Symbol, a Symbol, alt *Alternative)) {
	t.cells.Each(func(i, j int, v int32) {
		f(MinNonTerminal+Symbol(i), t.terminals[j], t.g.AlternativeBySerial(int(v)))
	})
}

// Cell is a flat representation of a table entry.
type Cell struct {
	NonTerminal string
	Terminal    string
	Alternative string
}

// Cells returns all cells set, in the order of Each.
func (t *Table) Cells() []Cell {
	cells := make([]Cell, 0, t.Size())
	t.Each(func(V Symbol, a Symbol, alt *Alternative) {
		cells = append(cells, Cell{
			NonTerminal: V.String(),
			Terminal:    a.String(),
			Alternative: alt.String(),
		})
	})
	return cells
}

// Fingerprint returns a hash over all cells of the table. Tables built from
// grammars with equal rules have equal fingerprints.
func (t *Table) Fingerprint() (string, error) {
	return structhash.Hash(struct {
		Cells []Cell
	}{
		Cells: t.Cells(),
	}, 1)
}
