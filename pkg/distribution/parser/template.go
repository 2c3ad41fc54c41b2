package parser

import "strings"

const (
	// headerScanRows is the window searched for the template marker.
	headerScanRows = 12
	// columnScanRows is the wider window searched for column markers.
	columnScanRows = 20
)

// Template describes one commodity's sheet layout: the header marker that
// identifies the template, the labels that must never be mistaken for
// municipality names, the quantity fields, and how columns are resolved.
// Sheets are maintained by hand and drift in structure, so column
// resolution is heuristic with fixed-offset fallbacks.
type Template struct {
	// Marker is the lower-cased substring that identifies the template,
	// e.g. "rice distribution". Its absence from the header window is a
	// template mismatch.
	Marker string
	// LabelExclusions are lower-cased column-A labels that must not be
	// treated as municipality names.
	LabelExclusions []string
	// NumericSchoolInvalid rejects school cells whose text is purely
	// numeric, guarding against misaligned columns.
	NumericSchoolInvalid bool
	// RequireNonZeroQuantity skips rows whose quantity fields all
	// normalize to zero. Only set for multi-quantity layouts.
	RequireNonZeroQuantity bool
	// ResolveColumns resolves the sheet's column layout.
	ResolveColumns func(Grid) Columns
}

// QuantityFields returns the template's quantity field names in display
// order, taken from a resolution against the empty grid (the field list
// does not depend on the grid, only the column indices do).
func (t Template) QuantityFields() []string {
	cols := t.ResolveColumns(Grid{})
	fields := make([]string, len(cols.Quantities))
	for i, q := range cols.Quantities {
		fields[i] = q.Field
	}
	return fields
}

// isMunicipalityLabel reports whether a column-A cell is a known label
// rather than a municipality name.
func (t Template) isMunicipalityLabel(label string) bool {
	for _, excl := range t.LabelExclusions {
		if label == excl {
			return true
		}
	}
	return strings.Contains(label, t.Marker)
}

// RiceTemplate is the layout of rice distribution sheets. The LGU and
// "BHSS Kitchen" header cells locate the municipality and school columns,
// with the quantity assumed one column right of the kitchen column.
func RiceTemplate() Template {
	return Template{
		Marker:               "rice distribution",
		LabelExclusions:      []string{"lgu", "municipality", "rice"},
		NumericSchoolInvalid: true,
		ResolveColumns: func(g Grid) Columns {
			if lgu, kitchen, ok := findLabeledPair(g, "lgu", "bhss kitchen", columnScanRows); ok {
				return Columns{
					Municipality: lgu,
					School:       kitchen,
					Quantities:   []QuantityColumn{{Field: "rice", Col: kitchen + 1}},
				}
			}
			return Columns{
				Municipality: 0,
				School:       1,
				Quantities:   []QuantityColumn{{Field: "rice", Col: 2}},
			}
		},
	}
}

// WaterTemplate is the layout of water distribution sheets. The column
// layout is fixed; there is no dynamic detection for this variant.
func WaterTemplate() Template {
	return Template{
		Marker:                 "water distribution",
		LabelExclusions:        []string{"lgu", "municipality", "water"},
		RequireNonZeroQuantity: true,
		ResolveColumns: func(Grid) Columns {
			return Columns{
				Municipality: 0,
				School:       1,
				Quantities: []QuantityColumn{
					{Field: "beneficiaries", Col: 2},
					{Field: "water", Col: 3},
					{Field: "week1", Col: 4},
					{Field: "week2", Col: 5},
					{Field: "week3", Col: 6},
					{Field: "week4", Col: 7},
					{Field: "week5", Col: 8},
					{Field: "total", Col: 9},
				},
			}
		},
	}
}

// LPGTemplate is the layout of LPG distribution sheets. The "gasul" and
// kitchen columns are detected independently, each with its own fallback.
func LPGTemplate() Template {
	return Template{
		Marker:               "lpg distribution",
		LabelExclusions:      []string{"lgu", "municipality", "lpg", "gasul"},
		NumericSchoolInvalid: true,
		ResolveColumns: func(g Grid) Columns {
			kitchen := LocateColumn(g,
				MarkerColumn("bhss kitchen", columnScanRows),
				FixedColumn(1),
			)
			gasul := LocateColumn(g,
				MarkerColumn("gasul", columnScanRows),
				FixedColumn(2),
			)
			return Columns{
				Municipality: 0,
				School:       kitchen,
				Quantities:   []QuantityColumn{{Field: "gasul", Col: gasul}},
			}
		},
	}
}
