package billing

// Totals holds the aggregate amounts of a bill.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	Total    float64 `json:"total"`
}

// ComputeTotals folds lines into totals in bill order. An empty slice
// yields all zeros. Total is the sum of subtotal and both tax halves,
// not an independent sum of line totals.
func ComputeTotals(lines []Line) Totals {
	var t Totals
	for i := range lines {
		t.Subtotal += lines[i].Amounts.Base
		t.CGST += lines[i].Amounts.CGST
		t.SGST += lines[i].Amounts.SGST
	}
	t.Total = t.Subtotal + t.CGST + t.SGST
	return t
}
