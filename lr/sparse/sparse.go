/*
Package sparse implements a simple type for sparse integer matrices.
It is used for parser tables (GOTO-table and ACTION-table).
Every entry in the table holds a primary int32 value and optionally a second
one. Parser tables use the second value to keep a conflicting action.

Entries are stored as coordinate triplets, sorted by row and column
(a.k.a. COO encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Values cannot be deleted.
type IntMatrix struct {
	entries []entry
	rowcnt  int
	colcnt  int
	nullval int32
}

type entry struct {
	row, col int
	a, b     int32
}

func (e entry) before(i, j int) bool {
	return e.row < i || e.row == i && e.col < j
}

// NewIntMatrix creates a new matrix for int32, size m x n. The 3rd argument is a
// null-value, indicating empty entries (use DefaultNullValue if you haven't any
// specific requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
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

// ValueCount returns the number of occupied positions in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.entries)
}

// find returns the index of position (i,j) in the entry list, or the index
// where it would have to be inserted, and a flag if it is present.
func (m *IntMatrix) find(i, j int) (int, bool) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	k := sort.Search(len(m.entries), func(k int) bool {
		return !m.entries[k].before(i, j)
	})
	return k, k < len(m.entries) && m.entries[k].row == i && m.entries[k].col == j
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, ok := m.find(i, j); ok {
		return m.entries[k].a, m.entries[k].b
	}
	return m.nullval, m.nullval
}

// Set the primary value at position (i,j). A second value is cleared.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	k := m.entryAt(i, j)
	m.entries[k].a, m.entries[k].b = value, m.nullval
	return m
}

// Add a value at position (i,j). If the position is empty, value becomes
// the primary value, otherwise the second one. If both values are already
// occupied, the second one is overwritten.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	k := m.entryAt(i, j)
	if m.entries[k].a == m.nullval {
		m.entries[k].a = value
	} else {
		m.entries[k].b = value
	}
	return m
}

// entryAt returns the index of the entry for (i,j), creating an empty one if
// necessary.
func (m *IntMatrix) entryAt(i, j int) int {
	k, ok := m.find(i, j)
	if !ok {
		m.entries = append(m.entries, entry{})
		copy(m.entries[k+1:], m.entries[k:])
		m.entries[k] = entry{row: i, col: j, a: m.nullval, b: m.nullval}
	}
	return k
}

// Each calls f for every occupied position, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, e := range m.entries {
		f(e.row, e.col, e.a, e.b)
	}
}
