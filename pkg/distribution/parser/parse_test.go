package parser

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRiceSheet(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION", "", ""},
		{"Abucay", "BHSS Kitchen", ""},
		{"", "School A", "12"},
		{"", "School B", "8"},
		{"", "Total", "20"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}

	r := res.Rows[0]
	if r.Municipality != "Abucay" || r.School != "School A" || r.Quantities["rice"] != 12 {
		t.Errorf("row 0 = %+v, expected Abucay/School A/12", r)
	}
	r = res.Rows[1]
	if r.Municipality != "Abucay" || r.School != "School B" || r.Quantities["rice"] != 8 {
		t.Errorf("row 1 = %+v, expected Abucay/School B/8", r)
	}
}

func TestParseTemplateMismatch(t *testing.T) {
	g := GridFromStrings([][]string{
		{"WATER DISTRIBUTION"},
		{"Abucay", "School A", "12"},
	})

	res, err := Parse(g, RiceTemplate())
	if !errors.Is(err, ErrTemplateMismatch) {
		t.Fatalf("expected ErrTemplateMismatch, got %v", err)
	}
	if res != nil {
		t.Error("expected no partial result on template mismatch")
	}
}

func TestParseEmptyResult(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"LGU", "BHSS Kitchen", "Rice"},
	})

	_, err := Parse(g, RiceTemplate())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestParseMunicipalityCarryForward(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"Abucay", "School A", "12"},
		{"", "School B", "8"},
		{"Bagac", "School C", "5"},
		{"", "School D", "3"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	munis := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		munis[i] = r.Municipality
	}
	expected := []string{"Abucay", "Abucay", "Bagac", "Bagac"}
	if !reflect.DeepEqual(munis, expected) {
		t.Errorf("municipalities = %v, expected %v", munis, expected)
	}
}

func TestParseSkipsRowsBeforeFirstMunicipality(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"", "Orphan School", "7"},
		{"Abucay", "School A", "12"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0].School != "School A" {
		t.Errorf("rows = %+v, expected only School A", res.Rows)
	}
}

func TestParseNumericSchoolExcluded(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"Abucay", "School A", "12"},
		{"", "450", "8"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Errorf("expected numeric school cell to be excluded, got %d rows", len(res.Rows))
	}
}

func TestParseUnparseableQuantityDefaultsToZero(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"Abucay", "School A", "n/a"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Rows[0].Quantities["rice"] != 0 {
		t.Errorf("rice = %v, expected 0 for unparseable cell", res.Rows[0].Quantities["rice"])
	}
}

func TestParseWaterSheet(t *testing.T) {
	g := GridFromStrings([][]string{
		{"WATER DISTRIBUTION"},
		// week3 cell left blank for School A.
		{"Abucay", "School A", "120", "30", "5", "5", "", "5", "5", "20"},
		{"", "School B", "80", "20", "4", "4", "4", "4", "4", "20"},
		// all-zero row is skipped for the multi-quantity variant.
		{"", "School C", "0", "0", "", "", "", "", "", ""},
	})

	res, err := Parse(g, WaterTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}

	a := res.Rows[0]
	if a.Quantities["week3"] != 0 {
		t.Errorf("week3 = %v, expected 0 for missing cell", a.Quantities["week3"])
	}
	// The parser does not auto-sum weeks; total is the sheet's own cell.
	if a.Quantities["total"] != 20 {
		t.Errorf("total = %v, expected the sheet value 20", a.Quantities["total"])
	}
}

func TestParseIdempotent(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION (500)"},
		{"Abucay", "School A", "12"},
		{"Bagac", "School B", "8"},
	})

	first, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	second, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same grid twice should yield equal results")
	}
}

func TestParseInvariantNonEmptyNames(t *testing.T) {
	g := GridFromStrings([][]string{
		{"RICE DISTRIBUTION"},
		{"Abucay", "School A", "12"},
		{"", "", "99"},
		{"Bagac", "BHSS Kitchen", ""},
		{"", "School C", "1"},
	})

	res, err := Parse(g, RiceTemplate())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for _, r := range res.Rows {
		if r.Municipality == "" || r.School == "" {
			t.Errorf("row %+v violates non-empty municipality/school invariant", r)
		}
	}
}
