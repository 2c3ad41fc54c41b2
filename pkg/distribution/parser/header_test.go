package parser

import "testing"

func TestLocateHeader(t *testing.T) {
	g := GridFromStrings([][]string{
		{""},
		{"", "RICE DISTRIBUTION (1,389)"},
		{"LGU", "BHSS Kitchen", "Rice"},
	})

	h, ok := LocateHeader(g, "rice distribution", headerScanRows)
	if !ok {
		t.Fatal("expected header to be found")
	}
	if h.Row != 1 {
		t.Errorf("header row = %d, expected 1", h.Row)
	}
	if h.Total == nil {
		t.Fatal("expected header total to be set")
	}
	if *h.Total != 1389 {
		t.Errorf("header total = %v, expected 1389", *h.Total)
	}
}

func TestLocateHeaderMissingTotal(t *testing.T) {
	g := GridFromStrings([][]string{
		{"Rice Distribution"},
	})

	h, ok := LocateHeader(g, "rice distribution", headerScanRows)
	if !ok {
		t.Fatal("expected header to be found")
	}
	if h.Total != nil {
		t.Errorf("expected unset total, got %v", *h.Total)
	}
}

func TestLocateHeaderAbsent(t *testing.T) {
	g := GridFromStrings([][]string{
		{"WATER DISTRIBUTION"},
		{"Abucay", "School A", "12"},
	})

	if _, ok := LocateHeader(g, "rice distribution", headerScanRows); ok {
		t.Error("expected no header match on a water sheet")
	}
}

func TestLocateHeaderBeyondWindow(t *testing.T) {
	// Marker on row 13 (0-based 12) is outside the 12-row window.
	rows := make([][]string, 13)
	for i := range rows {
		rows[i] = []string{""}
	}
	rows[12] = []string{"RICE DISTRIBUTION"}

	if _, ok := LocateHeader(GridFromStrings(rows), "rice distribution", headerScanRows); ok {
		t.Error("expected marker beyond the scan window to be ignored")
	}
}
