// Package oews extracts wage statistics from OEWS spreadsheet data. Column
// names in the published workbooks vary by year, so columns are resolved by
// substring against normalized names with fixed fallback chains.
package oews

import (
	"strconv"
	"strings"

	"github.com/jonathan/careers-builder/internal/normalize"
	"github.com/jonathan/careers-builder/internal/types"
)

// Cell is a single table cell, kept as its raw textual value.
type Cell struct {
	Raw string
}

// Text returns the trimmed cell content.
func (c Cell) Text() string {
	return strings.TrimSpace(c.Raw)
}

// Float parses the cell as a number, tolerating thousands separators and a
// leading dollar sign. Returns false for blank or non-numeric cells,
// including OEWS placeholder markers like "*" and "#".
func (c Cell) Float() (float64, bool) {
	s := c.Text()
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Table is a parsed tabular dataset: a header row of column names plus data
// rows. Rows may be ragged; missing trailing cells read as blank.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// cellAt returns the cell at idx in row, or a blank cell when the row is too
// short.
func cellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return Cell{}
	}
	return row[idx]
}

// Columns holds the resolved column indexes for extraction. P25 and Median
// are -1 when no column could be resolved; the corresponding wage fields are
// then nil for every row.
type Columns struct {
	Title  int
	P25    int
	Median int
}

// firstContaining returns the index of the first normalized name containing
// every substring, or -1.
func firstContaining(names []string, substrings ...string) int {
	for i, name := range names {
		match := true
		for _, sub := range substrings {
			if !strings.Contains(name, sub) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// ResolveColumns locates the title and wage columns by normalized-name
// substring. The fallback chains are deliberate, documented behavior:
//   - title: first name containing "occupation title", else column 0
//   - 25th percentile: first name containing "annual 25th percentile", else
//     first containing both "25" and "annual"
//   - median: first name containing "annual median", else first containing
//     both "median" and "annual"
func ResolveColumns(t *Table) Columns {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = normalize.Key(c)
	}

	title := firstContaining(names, "occupation title")
	if title < 0 {
		title = 0
	}

	p25 := firstContaining(names, "annual 25th percentile")
	if p25 < 0 {
		p25 = firstContaining(names, "25", "annual")
	}

	median := firstContaining(names, "annual median")
	if median < 0 {
		median = firstContaining(names, "median", "annual")
	}

	return Columns{Title: title, P25: p25, Median: median}
}

// Extract produces a mapping from normalized title key to wage stats. Rows
// whose title cell is blank or numeric are skipped (a numeric cell is not an
// occupation title). Blank or non-numeric wage cells yield nil fields. When
// several rows share a normalized key (state vs. national breakdowns), the
// last row wins; this mirrors observed source behavior.
func Extract(t *Table) map[string]types.WageStats {
	cols := ResolveColumns(t)
	out := make(map[string]types.WageStats)

	for _, row := range t.Rows {
		titleCell := cellAt(row, cols.Title)
		title := titleCell.Text()
		if title == "" {
			continue
		}
		if _, isNumber := titleCell.Float(); isNumber {
			continue
		}

		var stats types.WageStats
		if cols.P25 >= 0 {
			if v, ok := cellAt(row, cols.P25).Float(); ok {
				stats.P25Annual = &v
			}
		}
		if cols.Median >= 0 {
			if v, ok := cellAt(row, cols.Median).Float(); ok {
				stats.MedianAnnual = &v
			}
		}

		out[normalize.Key(title)] = stats
	}

	return out
}
