package models

import "time"

// Batch is a persisted set of distribution rows imported from one sheet.
// Saving a batch replaces the previous one wholesale; there is no merge
// between an import and previously saved data.
type Batch struct {
	// ID is the server-assigned batch identifier.
	ID string `json:"id"`
	// Commodity is the distribution commodity ("rice", "water", "lpg").
	Commodity string `json:"commodity"`
	// BHSSKitchenName is the kitchen the batch was filed under.
	BHSSKitchenName string `json:"bhssKitchenName"`
	// SheetName is the worksheet tab the rows came from.
	SheetName string `json:"sheetName"`
	// SourceFileName is the uploaded workbook's file name.
	SourceFileName string `json:"sourceFileName"`
	// HeaderTotal is the parenthesized total from the sheet header, when
	// one was present. Nil means the UI computes the sum itself.
	HeaderTotal *float64 `json:"headerTotal,omitempty"`
	// Items are the distribution rows in sheet order.
	Items []Row `json:"items"`
	// CreatedAt is the server-side save time.
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	out := *b
	if b.HeaderTotal != nil {
		t := *b.HeaderTotal
		out.HeaderTotal = &t
	}
	out.Items = make([]Row, len(b.Items))
	for i, r := range b.Items {
		out.Items[i] = r.Clone()
	}
	return &out
}
