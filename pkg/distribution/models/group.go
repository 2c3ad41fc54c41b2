package models

// MunicipalityGroup is a display grouping of rows under one municipality
// with per-field subtotals.
type MunicipalityGroup struct {
	// Municipality is the group's municipality name.
	Municipality string `json:"municipality"`
	// Rows are the group's rows in sheet order.
	Rows []Row `json:"rows"`
	// Subtotals holds the sum of each quantity field across the group.
	Subtotals map[string]float64 `json:"subtotals"`
}

// GroupByMunicipality groups rows by municipality, preserving
// first-appearance order from the sheet rather than sorting.
func GroupByMunicipality(rows []Row) []MunicipalityGroup {
	var groups []MunicipalityGroup
	index := make(map[string]int)
	for _, r := range rows {
		i, ok := index[r.Municipality]
		if !ok {
			i = len(groups)
			index[r.Municipality] = i
			groups = append(groups, MunicipalityGroup{
				Municipality: r.Municipality,
				Subtotals:    make(map[string]float64),
			})
		}
		groups[i].Rows = append(groups[i].Rows, r)
		for field, v := range r.Quantities {
			groups[i].Subtotals[field] += v
		}
	}
	return groups
}

// GrandTotal sums one quantity field across all rows.
func GrandTotal(rows []Row, field string) float64 {
	var total float64
	for _, r := range rows {
		total += r.Quantities[field]
	}
	return total
}
