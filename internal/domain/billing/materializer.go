package billing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// InvoiceSink persists a materialized invoice.
type InvoiceSink interface {
	Save(ctx context.Context, invoice *entity.Invoice) error
}

// Extras carries the optional free-text invoice fields copied onto the
// record verbatim.
type Extras struct {
	BuyersOrderNo     *string
	DispatchedThrough *string
	Destination       *string
}

// Materializer converts bill lines into a persisted invoice. The clock
// is injected so invoice numbers and timestamps are testable.
type Materializer struct {
	sink InvoiceSink
	now  func() time.Time
}

// NewMaterializer creates a materializer using the wall clock.
func NewMaterializer(sink InvoiceSink) *Materializer {
	return &Materializer{sink: sink, now: time.Now}
}

// NewMaterializerWithClock creates a materializer with a fixed clock,
// for tests.
func NewMaterializerWithClock(sink InvoiceSink, now func() time.Time) *Materializer {
	return &Materializer{sink: sink, now: now}
}

// Materialize freezes the given lines into an invoice and hands it to
// the sink. The invoice number is the decimal string of the clock
// instant in milliseconds since the Unix epoch; CreatedAt is the same
// instant. Totals are computed here, once, and the persisted values are
// authoritative from then on.
//
// Returns ErrEmptyBill for an empty line set and ErrMissingReceiver
// when the receiver is nil or has a blank display name. A sink failure
// is returned as a *PersistenceError and no invoice value is produced;
// the caller keeps its bill and may retry.
//
// Concurrent callers sharing one clock instant would collide on the
// invoice number; a single billing desk is assumed.
func (m *Materializer) Materialize(
	ctx context.Context,
	lines []Line,
	receiver *entity.Receiver,
	extras Extras,
	status enum.PaymentStatus,
) (*entity.Invoice, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyBill
	}
	if receiver == nil || strings.TrimSpace(receiver.DisplayName) == "" {
		return nil, ErrMissingReceiver
	}

	now := m.now()
	totals := ComputeTotals(lines)

	invoice := &entity.Invoice{
		InvoiceNumber: strconv.FormatInt(now.UnixMilli(), 10),
		Receiver:      snapshotReceiver(receiver),
		Subtotal:      totals.Subtotal,
		CGST:          totals.CGST,
		SGST:          totals.SGST,
		Total:         totals.Total,
		PaymentStatus: status,

		BuyersOrderNo:     extras.BuyersOrderNo,
		DispatchedThrough: extras.DispatchedThrough,
		Destination:       extras.Destination,

		CreatedAt: now,
		UpdatedAt: now,
	}

	invoice.Items = make([]entity.InvoiceItem, 0, len(lines))
	for i, line := range lines {
		itemID := line.ItemID
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			ItemID:   &itemID,
			Name:     line.Name,
			HSNCode:  line.HSNCode,
			Quantity: line.Quantity,
			UnitRate: line.UnitPrice,
			GSTRate:  line.GSTRate,
			Base:     line.Amounts.Base,
			CGST:     line.Amounts.CGST,
			SGST:     line.Amounts.SGST,
			Total:    line.Amounts.Total,
			Position: i,
		})
	}

	if err := m.sink.Save(ctx, invoice); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	return invoice, nil
}

func snapshotReceiver(r *entity.Receiver) entity.ReceiverSnapshot {
	snap := entity.ReceiverSnapshot{
		CustomerType:    r.CustomerType,
		DisplayName:     r.DisplayName,
		GSTIN:           r.GSTIN,
		Phone:           r.Phone,
		Address:         r.BillingAddress,
		ShippingAddress: r.ShippingAddress,
	}
	if r.ID != uuid.Nil {
		id := r.ID
		snap.ReceiverID = &id
	}
	return snap
}
