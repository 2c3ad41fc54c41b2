package parser

import (
	"strings"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

// extractState is the accumulator threaded through the row scan: the
// municipality carried forward from the most recent municipality cell,
// and the rows emitted so far.
type extractState struct {
	municipality string
	rows         []models.Row
}

// ExtractRows walks the grid top to bottom starting below the header row
// and emits one structured row per school.
//
// A non-empty municipality-column cell that is not a known label becomes
// the current municipality; until one is seen, every row is skipped — a
// row is never attributed to an unknown municipality. A row is emitted
// only when a school name is present and does not itself look like a
// kitchen header or a total line.
func ExtractRows(g Grid, header Header, t Template, cols Columns) []models.Row {
	st := extractState{}
	for r := header.Row + 1; r < g.Rows(); r++ {
		st = extractRow(g, r, t, cols, st)
	}
	return st.rows
}

func extractRow(g Grid, r int, t Template, cols Columns, st extractState) extractState {
	muniCell := g.Cell(r, cols.Municipality)
	if label := muniCell.label(); label != "" && !t.isMunicipalityLabel(label) {
		st.municipality = strings.TrimSpace(muniCell.Text())
	}
	if st.municipality == "" {
		return st
	}

	schoolCell := g.Cell(r, cols.School)
	school := strings.TrimSpace(schoolCell.Text())
	if school == "" {
		return st
	}
	label := schoolCell.label()
	if strings.Contains(label, "kitchen") || strings.Contains(label, "total") {
		return st
	}
	if t.NumericSchoolInvalid && isNumericText(schoolCell) {
		return st
	}

	quantities := make(map[string]float64, len(cols.Quantities))
	nonZero := false
	for _, q := range cols.Quantities {
		v := Normalize(g.Cell(r, q.Col))
		quantities[q.Field] = v
		if v != 0 {
			nonZero = true
		}
	}
	if t.RequireNonZeroQuantity && !nonZero {
		return st
	}

	st.rows = append(st.rows, models.Row{
		ID:           models.RowID(st.municipality, school, r),
		Municipality: st.municipality,
		School:       school,
		Quantities:   quantities,
	})
	return st
}
