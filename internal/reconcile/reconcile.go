// Package reconcile computes which records exist in one source table but
// not another, by normalized join key.
package reconcile

import (
	"strings"

	"github.com/spendview-dev/spendview/internal/table"
)

// idCols are the known aliases of the join-key column, in priority order.
var idCols = []string{"Transaction Id", "TransactionID", "Transaction_Id"}

// friendlyCols groups the column aliases projected into diff output,
// in display order. Aliases within a group are tried in priority order.
var friendlyCols = [][]string{
	{"Transaction Id", "TransactionID", "Transaction_Id"},
	{"Time", "Created At", "Transaction timestamp UTC"},
	{"Type"},
	{"Financial Transaction Type", "Financial transaction type", "Financial_Type"},
	{"Description", "Reference"},
	{"Amount", "Transaction amount", "Billing amount"},
	{"Debit Net Amount", "Debit Amount"},
	{"Credit Net Amount", "Credit Amount"},
	{"Wallet Currency", "Transaction Currency", "Billing currency", "Currency"},
	{"Employee(s)", "User", "Employee1"},
	{"Expense category", "Category"},
}

// Result holds the two sides of a symmetric difference.
type Result struct {
	AOnly *table.Table
	BOnly *table.Table
}

// normKey lowercases and trims a join key. Empty and "nan" keys are
// invalid: they join nothing and are never reported as missing.
func normKey(s string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(s))
	if k == "" || k == "nan" {
		return "", false
	}
	return k, true
}

// Diff returns the rows of a absent from b and vice versa, matched on the
// normalized transaction id. An empty input or an unresolvable id column
// on either side degrades to two empty outputs rather than an error.
func Diff(a, b *table.Table) Result {
	empty := Result{AOnly: &table.Table{}, BOnly: &table.Table{}}
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return empty
	}

	aIdx := a.ResolveIndex(idCols...)
	bIdx := b.ResolveIndex(idCols...)
	if aIdx < 0 || bIdx < 0 {
		return empty
	}

	aKeys := keySet(a, aIdx)
	bKeys := keySet(b, bIdx)

	return Result{
		AOnly: project(only(a, aIdx, bKeys)),
		BOnly: project(only(b, bIdx, aKeys)),
	}
}

func keySet(t *table.Table, idx int) map[string]bool {
	keys := make(map[string]bool, t.Len())
	for i := 0; i < t.Len(); i++ {
		if k, ok := normKey(t.Cell(i, idx)); ok {
			keys[k] = true
		}
	}
	return keys
}

// only keeps rows of t whose key is valid and not present in other.
func only(t *table.Table, idx int, other map[string]bool) *table.Table {
	out := &table.Table{Columns: t.Columns}
	for i, row := range t.Rows {
		k, ok := normKey(t.Cell(i, idx))
		if !ok || other[k] {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// project reduces a table to the friendly column subset, resolved by
// name. When nothing resolves, all original columns are kept.
func project(t *table.Table) *table.Table {
	var idxs []int
	seen := make(map[int]bool)
	for _, group := range friendlyCols {
		i := t.ResolveIndex(group...)
		if i < 0 || seen[i] {
			continue
		}
		seen[i] = true
		idxs = append(idxs, i)
	}
	if len(idxs) == 0 {
		return t
	}

	out := &table.Table{Columns: make([]string, len(idxs))}
	for j, i := range idxs {
		out.Columns[j] = t.Columns[i]
	}
	for r := range t.Rows {
		row := make([]string, len(idxs))
		for j, i := range idxs {
			row[j] = t.Cell(r, i)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
