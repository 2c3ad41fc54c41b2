package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// headerTotalRe matches a parenthesized amount next to the commodity name,
// e.g. "RICE (1,389)".
var headerTotalRe = regexp.MustCompile(`\(([0-9][0-9,]*(?:\.[0-9]+)?)\)`)

// Header is the located template header of a sheet.
type Header struct {
	// Row is the 0-based row index the marker was found on.
	Row int
	// Total is the parenthesized amount from the header row, when present.
	Total *float64
}

// LocateHeader scans the first scanRows rows of the grid for a cell whose
// lower-cased text contains marker. The reported header also carries the
// optional parenthesized total from the matching row; its absence is not
// an error, the caller simply falls back to a computed sum.
func LocateHeader(g Grid, marker string, scanRows int) (Header, bool) {
	limit := scanRows
	if limit > g.Rows() {
		limit = g.Rows()
	}
	for r := 0; r < limit; r++ {
		for c := range g[r] {
			if !strings.Contains(g.Cell(r, c).label(), marker) {
				continue
			}
			return Header{Row: r, Total: headerTotal(g[r])}, true
		}
	}
	return Header{}, false
}

// headerTotal extracts the first parenthesized number found in the row.
func headerTotal(row []CellValue) *float64 {
	for _, cell := range row {
		m := headerTotalRe.FindStringSubmatch(cell.Text())
		if m == nil {
			continue
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return &f
	}
	return nil
}
