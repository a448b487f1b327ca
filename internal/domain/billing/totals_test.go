package billing

import (
	"testing"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Subtotal != 0 || got.CGST != 0 || got.SGST != 0 || got.Total != 0 {
		t.Errorf("empty totals = %+v, want all zeros", got)
	}
}

func TestComputeTotalsTwoLines(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	if err := bill.AddItem(testItem("Jaggery 1kg", 75.00, 5), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := bill.AddItem(testItem("Ghee 500ml", 100.00, 6), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	got := bill.Totals()

	if !almostEqual(got.Subtotal, 350.00) {
		t.Errorf("Subtotal = %.2f, want 350.00", got.Subtotal)
	}
	if !almostEqual(got.CGST, 9.75) {
		t.Errorf("CGST = %.2f, want 9.75", got.CGST)
	}
	if !almostEqual(got.SGST, 9.75) {
		t.Errorf("SGST = %.2f, want 9.75", got.SGST)
	}
	if !almostEqual(got.Total, 369.50) {
		t.Errorf("Total = %.2f, want 369.50", got.Total)
	}
}

func TestComputeTotalsIsSumOfComponents(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	prices := []float64{33.33, 149.99, 7.25}
	rates := []float64{5, 12, 18}
	for i := range prices {
		if err := bill.AddItem(testItem("item", prices[i], rates[i]), i+1); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	got := bill.Totals()
	if !almostEqual(got.Total, got.Subtotal+got.CGST+got.SGST) {
		t.Errorf("Total %.4f != Subtotal+CGST+SGST %.4f", got.Total, got.Subtotal+got.CGST+got.SGST)
	}
}
