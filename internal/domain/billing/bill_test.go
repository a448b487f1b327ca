package billing

import (
	"testing"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
)

func testItem(name string, rate, gstRate float64) *entity.Item {
	return &entity.Item{
		ID:          uuid.New(),
		Name:        name,
		RateExclGST: rate,
		GSTRate:     gstRate,
	}
}

func TestAddItemMergesIntoExistingLine(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	honey := testItem("Honey 500g", 250.00, 18)

	if err := bill.AddItem(honey, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := bill.AddItem(honey, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	lines := bill.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}

	// The merged line must equal a single computation over the combined
	// quantity, not the sum of two partial computations.
	want := ComputeLine(250.00, 5, 18, enum.PriceExclusive)
	if !almostEqual(lines[0].Amounts.Total, want.Total) {
		t.Errorf("merged total = %.2f, want %.2f", lines[0].Amounts.Total, want.Total)
	}
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		item     *entity.Item
		quantity int
		wantErr  error
	}{
		{"zero quantity", testItem("Jaggery", 90, 5), 0, ErrInvalidQuantity},
		{"negative quantity", testItem("Jaggery", 90, 5), -2, ErrInvalidQuantity},
		{"negative gst rate", testItem("Jaggery", 90, -1), 1, ErrInvalidGSTRate},
		{"gst rate above 100", testItem("Jaggery", 90, 120), 1, ErrInvalidGSTRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := NewBill(enum.PriceExclusive)
			if err := bill.AddItem(tt.item, tt.quantity); err != tt.wantErr {
				t.Errorf("AddItem() error = %v, want %v", err, tt.wantErr)
			}
			if !bill.IsEmpty() {
				t.Error("rejected add must leave the bill unchanged")
			}
		})
	}
}

func TestRemoveItemPreservesOrder(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	a := testItem("A", 10, 5)
	b := testItem("B", 20, 5)
	c := testItem("C", 30, 5)

	for _, it := range []*entity.Item{a, b, c} {
		if err := bill.AddItem(it, 1); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	bill.RemoveItem(b.ID)

	lines := bill.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].ItemID != a.ID || lines[1].ItemID != c.ID {
		t.Errorf("order after removal = [%s %s], want [A C]", lines[0].Name, lines[1].Name)
	}
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	if err := bill.AddItem(testItem("A", 10, 5), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	bill.RemoveItem(uuid.New())

	if len(bill.Lines()) != 1 {
		t.Error("removing an absent item must not change the bill")
	}
}

func TestUpdateQuantityRecomputesInPlace(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	a := testItem("A", 10, 5)
	b := testItem("B", 100, 18)

	if err := bill.AddItem(a, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := bill.AddItem(b, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	bill.UpdateQuantity(b.ID, 4)

	lines := bill.Lines()
	if lines[1].ItemID != b.ID {
		t.Fatal("update must not move the line")
	}
	want := ComputeLine(100, 4, 18, enum.PriceExclusive)
	if !almostEqual(lines[1].Amounts.Total, want.Total) {
		t.Errorf("total = %.2f, want %.2f", lines[1].Amounts.Total, want.Total)
	}
}

func TestUpdateQuantityIsIdempotent(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	a := testItem("A", 42.50, 12)
	if err := bill.AddItem(a, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	bill.UpdateQuantity(a.ID, 5)
	once := bill.Lines()[0]

	bill.UpdateQuantity(a.ID, 5)
	twice := bill.Lines()[0]

	if twice != once {
		t.Errorf("second identical update changed the line: %+v vs %+v", twice, once)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	a := testItem("A", 10, 5)
	if err := bill.AddItem(a, 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	bill.UpdateQuantity(a.ID, 0)

	if !bill.IsEmpty() {
		t.Error("quantity zero must behave as removal")
	}
}

func TestClear(t *testing.T) {
	bill := NewBill(enum.PriceExclusive)
	if err := bill.AddItem(testItem("A", 10, 5), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	bill.Clear()

	if !bill.IsEmpty() {
		t.Error("Clear must empty the bill")
	}
	got := bill.Totals()
	if got.Subtotal != 0 || got.Total != 0 {
		t.Errorf("cleared bill totals = %+v, want zeros", got)
	}
}

func TestInclusiveBillPrefersMRP(t *testing.T) {
	mrp := 118.00
	item := testItem("Honey 250g", 100.00, 18)
	item.MRPInclGST = &mrp

	bill := NewBill(enum.PriceInclusive)
	if err := bill.AddItem(item, 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	line := bill.Lines()[0]
	if !almostEqual(line.UnitPrice, 118.00) {
		t.Errorf("unit price = %.2f, want MRP 118.00", line.UnitPrice)
	}
	if !almostEqual(line.Amounts.Base, 100.00) {
		t.Errorf("base = %.2f, want 100.00", line.Amounts.Base)
	}
}
