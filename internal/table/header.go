package table

import "strings"

// headerScanLimit caps how many leading rows DetectHeader inspects.
const headerScanLimit = 60

var (
	headerDescTokens   = []string{"description", "vendor", "details"}
	headerAmountTokens = []string{"debitaud", "amount", "amt", "value", "debit"}
)

// normToken strips every non-alphanumeric character and lowercases,
// so "Debit (AUD)" and "debitaud" compare equal.
func normToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectHeader scans up to 60 leading rows for the first one that looks
// like a header: a "date" cell, plus one of description/vendor/details,
// plus an amount-like cell. Best-effort; falls back to row 0.
func DetectHeader(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		cells := make(map[string]bool, len(rows[i]))
		for _, c := range rows[i] {
			cells[normToken(c)] = true
		}
		if !cells["date"] {
			continue
		}
		if !anyToken(cells, headerDescTokens) {
			continue
		}
		if anyToken(cells, headerAmountTokens) {
			return i
		}
	}
	return 0
}

func anyToken(cells map[string]bool, tokens []string) bool {
	for _, t := range tokens {
		if cells[t] {
			return true
		}
	}
	return false
}

// FromRows builds a Table using the detected header row; rows above the
// header are discarded, rows below become data. Blank rows are dropped.
func FromRows(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	h := DetectHeader(rows)
	t := &Table{Columns: rows[h]}
	for _, r := range rows[h+1:] {
		if blankRow(r) {
			continue
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// FromHeaderRow builds a Table whose first row is the header, for files
// with no preamble. Blank rows are dropped.
func FromHeaderRow(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	t := &Table{Columns: rows[0]}
	for _, r := range rows[1:] {
		if blankRow(r) {
			continue
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

func blankRow(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
