// Package models defines the structured records produced by distribution
// sheet ingestion.
package models

import (
	"fmt"
	"strings"
)

// Row is a single school's entry in a distribution sheet.
type Row struct {
	// ID is a synthetic identifier derived from municipality, school and
	// the source row index. It is not stable across re-imports of an
	// edited sheet.
	ID string `json:"id"`
	// Municipality is the municipality the school belongs to, carried
	// forward from the most recent municipality cell above the row.
	Municipality string `json:"municipality"`
	// School is the school (BHSS kitchen) name.
	School string `json:"school"`
	// Quantities maps quantity field names to amounts. The field set is
	// fixed per commodity (e.g. "rice", or "beneficiaries".."total" for
	// water sheets); unparseable cells default to 0.
	Quantities map[string]float64 `json:"quantities"`
}

// RowID derives the synthetic row identifier.
func RowID(municipality, school string, rowIndex int) string {
	return fmt.Sprintf("%s:%s:%d", slug(municipality), slug(school), rowIndex)
}

// Quantity returns the named quantity, or 0 when the field is absent.
func (r Row) Quantity(field string) float64 {
	return r.Quantities[field]
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	out := r
	out.Quantities = make(map[string]float64, len(r.Quantities))
	for k, v := range r.Quantities {
		out.Quantities[k] = v
	}
	return out
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
