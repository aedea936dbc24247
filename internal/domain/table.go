package domain

import (
	"fmt"
	"strings"
)

// Table is an ordered set of uniquely named columns stored row by row.
// Every row has exactly len(Headers) values.
type Table struct {
	Headers []string
	Rows    [][]Value
}

// NewTable builds a table from raw header cells. Rows shorter than the
// header are padded with missing values.
func NewTable(headers []string, rows [][]Value) *Table {
	t := &Table{Headers: UniqueHeaders(headers)}

	for _, row := range rows {
		t.AppendRow(row)
	}

	return t
}

// UniqueHeaders names blank headers "Unnamed: i" and suffixes duplicates
// with ".1", ".2" and so on.
func UniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	suffixes := make(map[string]int, len(headers))

	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}

		name := h
		for used[name] {
			suffixes[h]++
			name = fmt.Sprintf("%s.%d", h, suffixes[h])
		}

		used[name] = true
		out[i] = name
	}

	return out
}

func (t *Table) AppendRow(row []Value) {
	padded := make([]Value, len(t.Headers))
	copy(padded, row)
	t.Rows = append(t.Rows, padded)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Width() int {
	return len(t.Headers)
}

func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

func (t *Table) Column(i int) []Value {
	col := make([]Value, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}

// NumericColumns returns indices of columns holding at least one number
// and nothing but numbers or missing values.
func (t *Table) NumericColumns() []int {
	var idx []int

	for c := range t.Headers {
		numbers := 0
		numeric := true

		for _, row := range t.Rows {
			switch row[c].Kind {
			case KindNumber:
				numbers++
			case KindText, KindDate:
				numeric = false
			}
			if !numeric {
				break
			}
		}

		if numeric && numbers > 0 {
			idx = append(idx, c)
		}
	}

	return idx
}

func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}

	return &Table{Headers: t.Headers, Rows: t.Rows[:n]}
}

func (t *Table) Filter(keep func(i int, row []Value) bool) *Table {
	out := &Table{Headers: t.Headers}
	for i, row := range t.Rows {
		if keep(i, row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Select keeps only the given columns, in the given order.
func (t *Table) Select(columns []int) *Table {
	out := &Table{Headers: make([]string, len(columns))}
	for i, c := range columns {
		out.Headers[i] = t.Headers[c]
	}

	for _, row := range t.Rows {
		selected := make([]Value, len(columns))
		for i, c := range columns {
			selected[i] = row[c]
		}
		out.Rows = append(out.Rows, selected)
	}

	return out
}

// SameColumns reports whether both tables have the same set of column
// names regardless of order.
func (t *Table) SameColumns(other *Table) bool {
	if len(t.Headers) != len(other.Headers) {
		return false
	}

	names := make(map[string]struct{}, len(t.Headers))
	for _, h := range t.Headers {
		names[h] = struct{}{}
	}

	for _, h := range other.Headers {
		if _, ok := names[h]; !ok {
			return false
		}
	}

	return true
}

// Concat returns a new table with other's rows appended after t's rows.
// Columns are aligned by name; columns absent from other become missing.
func (t *Table) Concat(other *Table) *Table {
	out := &Table{
		Headers: t.Headers,
		Rows:    make([][]Value, 0, len(t.Rows)+len(other.Rows)),
	}
	out.Rows = append(out.Rows, t.Rows...)

	mapping := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		mapping[i] = other.ColumnIndex(h)
	}

	for _, row := range other.Rows {
		aligned := make([]Value, len(t.Headers))
		for i, src := range mapping {
			if src >= 0 {
				aligned[i] = row[src]
			}
		}
		out.Rows = append(out.Rows, aligned)
	}

	return out
}
