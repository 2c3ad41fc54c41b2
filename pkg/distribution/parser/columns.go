package parser

import "strings"

// ColumnStrategy attempts to locate a single logical column in the grid.
// Strategies are tried in order; the first one to succeed wins.
type ColumnStrategy func(Grid) (int, bool)

// MarkerColumn locates the column of the first cell, scanning the first
// scanRows rows top to bottom, whose lower-cased text contains marker.
func MarkerColumn(marker string, scanRows int) ColumnStrategy {
	return func(g Grid) (int, bool) {
		limit := scanRows
		if limit > g.Rows() {
			limit = g.Rows()
		}
		for r := 0; r < limit; r++ {
			for c := range g[r] {
				if strings.Contains(g.Cell(r, c).label(), marker) {
					return c, true
				}
			}
		}
		return 0, false
	}
}

// FixedColumn always yields the given index. Used as the terminal
// fallback of every strategy list, so sheets that drop their marker row
// still parse with the historical layout.
func FixedColumn(idx int) ColumnStrategy {
	return func(Grid) (int, bool) {
		return idx, true
	}
}

// LocateColumn resolves a logical column by running strategies in order
// and returning the first hit. The caller is expected to terminate the
// list with FixedColumn; a list with no hit resolves to column 0.
func LocateColumn(g Grid, strategies ...ColumnStrategy) int {
	for _, s := range strategies {
		if idx, ok := s(g); ok {
			return idx
		}
	}
	return 0
}

// QuantityColumn binds a named quantity field to a spreadsheet column.
type QuantityColumn struct {
	Field string
	Col   int
}

// Columns is the resolved column layout of a sheet.
type Columns struct {
	// Municipality is the column carrying municipality names.
	Municipality int
	// School is the column carrying school (kitchen) names.
	School int
	// Quantities are the quantity columns in display order.
	Quantities []QuantityColumn
}

// findLabeledPair scans the first scanRows rows for a row that holds both
// an exact first label and a cell containing second, returning their
// column positions. Both labels must sit on the same row; the first
// matching row wins, with no disambiguation.
func findLabeledPair(g Grid, first, second string, scanRows int) (firstCol, secondCol int, ok bool) {
	limit := scanRows
	if limit > g.Rows() {
		limit = g.Rows()
	}
	for r := 0; r < limit; r++ {
		fCol, sCol := -1, -1
		for c := range g[r] {
			l := g.Cell(r, c).label()
			if fCol < 0 && l == first {
				fCol = c
			}
			if sCol < 0 && strings.Contains(l, second) {
				sCol = c
			}
		}
		if fCol >= 0 && sCol >= 0 {
			return fCol, sCol, true
		}
	}
	return 0, 0, false
}
