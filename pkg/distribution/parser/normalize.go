package parser

import (
	"math"
	"strconv"
	"strings"
)

// Normalize coerces a cell into a numeric amount.
// Numbers pass through when finite. Text is trimmed, thousands separators
// are stripped, and the remainder is parsed as a decimal number. Anything
// else, including empty cells, yields 0 — distribution sheets are
// hand-entered and a ragged cell must not abort the import.
func Normalize(c CellValue) float64 {
	switch c.kind {
	case CellNumber:
		if math.IsNaN(c.number) || math.IsInf(c.number, 0) {
			return 0
		}
		return c.number
	case CellText:
		s := strings.ReplaceAll(strings.TrimSpace(c.text), ",", "")
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// isNumericText reports whether the cell's text parses cleanly as a
// number. Used to reject stray numeric artifacts misread as school names.
func isNumericText(c CellValue) bool {
	if c.kind == CellNumber {
		return true
	}
	if c.kind != CellText {
		return false
	}
	s := strings.ReplaceAll(strings.TrimSpace(c.text), ",", "")
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
