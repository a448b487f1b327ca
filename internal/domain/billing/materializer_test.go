package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
)

type fakeSink struct {
	saved *entity.Invoice
	err   error
}

func (s *fakeSink) Save(ctx context.Context, invoice *entity.Invoice) error {
	if s.err != nil {
		return s.err
	}
	s.saved = invoice
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testReceiver(name string) *entity.Receiver {
	return &entity.Receiver{DisplayName: name}
}

func billWithLines(t *testing.T) *Bill {
	t.Helper()
	bill := NewBill(enum.PriceExclusive)
	if err := bill.AddItem(testItem("Honey 500g", 250.00, 18), 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := bill.AddItem(testItem("Jaggery 1kg", 75.00, 5), 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	return bill
}

func TestMaterializeEmptyBill(t *testing.T) {
	m := NewMaterializer(&fakeSink{})

	_, err := m.Materialize(context.Background(), nil, testReceiver("Shop"), Extras{}, enum.PaymentStatusUnpaid)
	if !errors.Is(err, ErrEmptyBill) {
		t.Errorf("error = %v, want ErrEmptyBill", err)
	}
}

func TestMaterializeMissingReceiver(t *testing.T) {
	m := NewMaterializer(&fakeSink{})
	lines := billWithLines(t).Lines()

	if _, err := m.Materialize(context.Background(), lines, nil, Extras{}, enum.PaymentStatusUnpaid); !errors.Is(err, ErrMissingReceiver) {
		t.Errorf("nil receiver: error = %v, want ErrMissingReceiver", err)
	}
	if _, err := m.Materialize(context.Background(), lines, testReceiver("   "), Extras{}, enum.PaymentStatusUnpaid); !errors.Is(err, ErrMissingReceiver) {
		t.Errorf("blank display name: error = %v, want ErrMissingReceiver", err)
	}
}

func TestMaterializeInvoiceNumberFromClock(t *testing.T) {
	at := time.UnixMilli(1756702800000)
	sink := &fakeSink{}
	m := NewMaterializerWithClock(sink, fixedClock(at))

	inv, err := m.Materialize(context.Background(), billWithLines(t).Lines(), testReceiver("Ravi Stores"), Extras{}, enum.PaymentStatusUnpaid)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	if inv.InvoiceNumber != "1756702800000" {
		t.Errorf("invoice number = %q, want %q", inv.InvoiceNumber, "1756702800000")
	}
	if !inv.CreatedAt.Equal(at) {
		t.Errorf("created at = %v, want %v", inv.CreatedAt, at)
	}
	if sink.saved != inv {
		t.Error("invoice was not handed to the sink")
	}
}

func TestMaterializeFreezesLinesAndTotals(t *testing.T) {
	bill := billWithLines(t)
	m := NewMaterializerWithClock(&fakeSink{}, fixedClock(time.UnixMilli(1700000000000)))

	orderNo := "PO-42"
	inv, err := m.Materialize(context.Background(), bill.Lines(), testReceiver("Ravi Stores"), Extras{BuyersOrderNo: &orderNo}, enum.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	want := bill.Totals()
	if !almostEqual(inv.Subtotal, want.Subtotal) || !almostEqual(inv.CGST, want.CGST) ||
		!almostEqual(inv.SGST, want.SGST) || !almostEqual(inv.Total, want.Total) {
		t.Errorf("invoice totals = %.2f/%.2f/%.2f/%.2f, want %+v",
			inv.Subtotal, inv.CGST, inv.SGST, inv.Total, want)
	}

	if len(inv.Items) != 2 {
		t.Fatalf("got %d invoice items, want 2", len(inv.Items))
	}
	for i, item := range inv.Items {
		if item.Position != i {
			t.Errorf("item %d position = %d", i, item.Position)
		}
	}
	if inv.BuyersOrderNo == nil || *inv.BuyersOrderNo != "PO-42" {
		t.Error("extras must be copied onto the invoice verbatim")
	}
	if inv.PaymentStatus != enum.PaymentStatusPaid {
		t.Errorf("payment status = %v, want paid", inv.PaymentStatus)
	}
}

func TestMaterializeSnapshotsBothAddresses(t *testing.T) {
	billing := entity.Address{
		Attention: "Accounts Dept",
		Line1:     "14 Market Road",
		City:      "Mysuru",
		State:     "Karnataka",
		Pincode:   "570001",
		Country:   "India",
		Phone:     "0821-2440000",
		Fax:       "0821-2440001",
	}
	shipping := entity.Address{
		Attention: "Warehouse Gate 3",
		Line1:     "Plot 7, Industrial Area",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560058",
		Country:   "India",
	}
	receiver := &entity.Receiver{
		DisplayName:     "Ravi Stores",
		BillingAddress:  billing,
		ShippingAddress: shipping,
	}

	m := NewMaterializer(&fakeSink{})
	inv, err := m.Materialize(context.Background(), billWithLines(t).Lines(), receiver, Extras{}, enum.PaymentStatusUnpaid)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	if inv.Receiver.Address != billing {
		t.Errorf("buyer address = %+v, want %+v", inv.Receiver.Address, billing)
	}
	if inv.Receiver.ShippingAddress != shipping {
		t.Errorf("consignee address = %+v, want %+v", inv.Receiver.ShippingAddress, shipping)
	}
}

func TestMaterializeSinkFailure(t *testing.T) {
	sinkErr := errors.New("connection refused")
	m := NewMaterializer(&fakeSink{err: sinkErr})

	inv, err := m.Materialize(context.Background(), billWithLines(t).Lines(), testReceiver("Ravi Stores"), Extras{}, enum.PaymentStatusUnpaid)
	if inv != nil {
		t.Error("no invoice value must be returned on sink failure")
	}

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if !errors.Is(err, sinkErr) {
		t.Error("sink error must be wrapped, not replaced")
	}
}
