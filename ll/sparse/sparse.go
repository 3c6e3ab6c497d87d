/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parser tables, where rows are non-terminals, columns
are lookahead terminals and values identify alternatives. Every position
holds at most one value: inserting into an occupied position is rejected,
and the caller gets to see the value already present.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Insert(2, 3, 4711)           // returns (-1, true)
//     v := M.Value(2, 3)             // returns 4711
//     M.Insert(2, 3, 123)            // rejected, returns (4711, false)
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted.
type IntMatrix struct {
	values  []triplet // sorted by row, then column
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	if k, found := m.search(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Insert stores a value at position (i,j), if the position is still empty.
// If it is occupied, the matrix is left unchanged and Insert returns the
// value present and false. Inserting the null-value is not allowed.
func (m *IntMatrix) Insert(i, j int, value int32) (int32, bool) {
	m.check(i, j)
	if value == m.nullval {
		panic(fmt.Sprintf("sparse.IntMatrix.Insert(%d,%d) with null-value", i, j))
	}
	at, found := m.search(i, j)
	if found {
		return m.values[at].value, false
	}
	tnew := triplet{row: i, col: j, value: value}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m.nullval, true
}

// Each calls f for every value stored, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// search returns the index of (i,j) in values and true, or the index where
// (i,j) would have to be inserted and false.
func (m *IntMatrix) search(i, j int) (int, bool) {
	at := 0
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			return k, t.storedAt(i, j)
		}
		at++
	}
	return at, false
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
