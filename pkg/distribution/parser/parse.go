package parser

import (
	"errors"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

// ErrTemplateMismatch indicates the sheet does not carry the template's
// header marker. Nothing is extracted from a mismatched sheet.
var ErrTemplateMismatch = errors.New("sheet does not match the distribution template")

// ErrEmptyResult indicates the sheet matched the template but produced no
// distribution rows. Imports are all-or-nothing per sheet.
var ErrEmptyResult = errors.New("no distribution rows found")

// SheetResult is the outcome of parsing one sheet grid.
type SheetResult struct {
	// HeaderRow is the 0-based row the template marker was found on.
	HeaderRow int
	// HeaderTotal is the parenthesized total from the header row, when
	// present.
	HeaderTotal *float64
	// Rows are the extracted distribution rows in sheet order. Every row
	// has a non-empty municipality and school.
	Rows []models.Row
}

// Parse runs the full extraction over a grid: locate the template header,
// resolve the column layout, then fold over the remaining rows. It is a
// pure function of the grid; parsing the same grid twice yields equal
// results.
func Parse(g Grid, t Template) (*SheetResult, error) {
	header, ok := LocateHeader(g, t.Marker, headerScanRows)
	if !ok {
		return nil, ErrTemplateMismatch
	}
	cols := t.ResolveColumns(g)
	rows := ExtractRows(g, header, t, cols)
	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}
	return &SheetResult{
		HeaderRow:   header.Row,
		HeaderTotal: header.Total,
		Rows:        rows,
	}, nil
}
