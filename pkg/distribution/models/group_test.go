package models

import "testing"

func sampleRows() []Row {
	return []Row{
		{ID: "1", Municipality: "Abucay", School: "School A", Quantities: map[string]float64{"rice": 12}},
		{ID: "2", Municipality: "Abucay", School: "School B", Quantities: map[string]float64{"rice": 8}},
		{ID: "3", Municipality: "Bagac", School: "School C", Quantities: map[string]float64{"rice": 5}},
		{ID: "4", Municipality: "Abucay", School: "School D", Quantities: map[string]float64{"rice": 2}},
	}
}

func TestGroupByMunicipality(t *testing.T) {
	groups := GroupByMunicipality(sampleRows())

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// First-appearance order, not alphabetical.
	if groups[0].Municipality != "Abucay" || groups[1].Municipality != "Bagac" {
		t.Errorf("group order = %s, %s; expected Abucay, Bagac", groups[0].Municipality, groups[1].Municipality)
	}
	if len(groups[0].Rows) != 3 {
		t.Errorf("Abucay rows = %d, expected 3 (including late row)", len(groups[0].Rows))
	}
	if groups[0].Subtotals["rice"] != 22 {
		t.Errorf("Abucay subtotal = %v, expected 22", groups[0].Subtotals["rice"])
	}
	if groups[1].Subtotals["rice"] != 5 {
		t.Errorf("Bagac subtotal = %v, expected 5", groups[1].Subtotals["rice"])
	}
}

func TestGrandTotal(t *testing.T) {
	if got := GrandTotal(sampleRows(), "rice"); got != 27 {
		t.Errorf("GrandTotal = %v, expected 27", got)
	}
	if got := GrandTotal(nil, "rice"); got != 0 {
		t.Errorf("GrandTotal(nil) = %v, expected 0", got)
	}
}

func TestRowID(t *testing.T) {
	id := RowID("Abucay", "School A", 7)
	if id != "abucay:school-a:7" {
		t.Errorf("RowID = %q, expected %q", id, "abucay:school-a:7")
	}
}

func TestBatchClone(t *testing.T) {
	total := 20.0
	b := &Batch{
		ID:          "b1",
		Commodity:   "rice",
		HeaderTotal: &total,
		Items:       sampleRows(),
	}

	c := b.Clone()
	c.Items[0].Quantities["rice"] = 999
	*c.HeaderTotal = 0

	if b.Items[0].Quantities["rice"] != 12 {
		t.Error("mutating a clone's quantities must not affect the original")
	}
	if *b.HeaderTotal != 20 {
		t.Error("mutating a clone's header total must not affect the original")
	}
}
