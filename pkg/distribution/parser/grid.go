// Package parser implements the heuristic extraction of distribution rows
// from loosely structured spreadsheet grids.
package parser

import (
	"math"
	"strconv"
	"strings"
)

// CellKind discriminates the value held by a CellValue.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellText is a cell holding free text.
	CellText
	// CellNumber is a cell holding a finite number.
	CellNumber
)

// CellValue is a single spreadsheet cell: empty, text, or a number.
// Distinguishing the three explicitly avoids any ambiguity between 0,
// "" and an absent cell.
type CellValue struct {
	kind   CellKind
	text   string
	number float64
}

// EmptyCell returns the empty cell value.
func EmptyCell() CellValue {
	return CellValue{kind: CellEmpty}
}

// TextCell returns a cell holding the given text.
func TextCell(s string) CellValue {
	return CellValue{kind: CellText, text: s}
}

// NumberCell returns a cell holding the given number.
// Non-finite values collapse to the empty cell.
func NumberCell(f float64) CellValue {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return CellValue{kind: CellEmpty}
	}
	return CellValue{kind: CellNumber, number: f}
}

// CellFromString classifies a raw string read from a worksheet.
// Whole and decimal numbers become CellNumber, blank becomes CellEmpty,
// anything else is kept as CellText.
func CellFromString(s string) CellValue {
	if strings.TrimSpace(s) == "" {
		return EmptyCell()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return NumberCell(f)
	}
	return TextCell(s)
}

// Kind returns the cell's kind.
func (c CellValue) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell holds no value.
func (c CellValue) IsEmpty() bool { return c.kind == CellEmpty }

// Text returns the textual form of the cell: the raw text for text cells,
// a decimal rendering for number cells, and "" for empty cells.
func (c CellValue) Text() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// label returns the trimmed, lower-cased text of the cell, the form used
// for all marker and label matching.
func (c CellValue) label() string {
	return strings.ToLower(strings.TrimSpace(c.Text()))
}

// Grid is a rectangular-ish view of a worksheet's cells. Rows may be
// ragged; out-of-range access yields the empty cell.
type Grid [][]CellValue

// GridFromStrings builds a Grid from the string matrix returned by a
// workbook reader.
func GridFromStrings(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]CellValue, len(row))
		for j, s := range row {
			cells[j] = CellFromString(s)
		}
		g[i] = cells
	}
	return g
}

// Cell returns the cell at (row, col), or the empty cell when the
// coordinates fall outside the grid.
func (g Grid) Cell(row, col int) CellValue {
	if row < 0 || row >= len(g) {
		return EmptyCell()
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return EmptyCell()
	}
	return r[col]
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return len(g) }
