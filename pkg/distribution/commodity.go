// Package distribution turns uploaded BHSS distribution workbooks into
// structured row batches. It is the import side of the school-feeding
// record keeping: rice, water and LPG sheets maintained by hand are
// parsed heuristically into per-school rows grouped by municipality.
package distribution

import (
	"fmt"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/parser"
)

// Commodity identifies a distribution sheet variant.
type Commodity string

const (
	// Rice is the rice distribution sheet variant.
	Rice Commodity = "rice"
	// Water is the water distribution sheet variant.
	Water Commodity = "water"
	// LPG is the LPG (gasul) distribution sheet variant.
	LPG Commodity = "lpg"
)

// ParseCommodity validates a commodity name, as received in API paths
// and CLI flags.
func ParseCommodity(s string) (Commodity, error) {
	switch Commodity(s) {
	case Rice, Water, LPG:
		return Commodity(s), nil
	}
	return "", fmt.Errorf("unknown commodity %q (must be rice, water or lpg)", s)
}

// Template returns the commodity's sheet template.
func (c Commodity) Template() parser.Template {
	switch c {
	case Water:
		return parser.WaterTemplate()
	case LPG:
		return parser.LPGTemplate()
	default:
		return parser.RiceTemplate()
	}
}

// QuantityFields returns the commodity's quantity field names in display
// order.
func (c Commodity) QuantityFields() []string {
	return c.Template().QuantityFields()
}

// HasQuantityField reports whether field is one of the commodity's
// quantity fields.
func (c Commodity) HasQuantityField(field string) bool {
	for _, f := range c.QuantityFields() {
		if f == field {
			return true
		}
	}
	return false
}

func (c Commodity) String() string { return string(c) }
