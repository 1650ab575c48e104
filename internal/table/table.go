// Package table holds loosely-structured source tables and resolves
// logical columns against their varying header names.
package table

import "strings"

// Table is an ordered set of named columns over string cells, as read
// from a source file. Rows shorter than the header are padded on access.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of an exact column name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col index), or "" when the row is
// ragged and does not reach the column.
func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Resolve finds the first candidate (in caller priority order) present in
// columns, matching case-insensitively on trimmed names. The second return
// is false when no candidate matches; callers decide whether that is fatal.
func Resolve(columns []string, candidates ...string) (string, bool) {
	byKey := make(map[string]string, len(columns))
	for _, c := range columns {
		k := strings.ToLower(strings.TrimSpace(c))
		if _, seen := byKey[k]; !seen {
			byKey[k] = c
		}
	}
	for _, cand := range candidates {
		if col, ok := byKey[strings.ToLower(strings.TrimSpace(cand))]; ok {
			return col, true
		}
	}
	return "", false
}

// ResolveIndex is Resolve returning the column position, or -1.
func (t *Table) ResolveIndex(candidates ...string) int {
	col, ok := Resolve(t.Columns, candidates...)
	if !ok {
		return -1
	}
	return t.Index(col)
}
