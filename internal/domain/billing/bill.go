package billing

import (
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// Bill is the in-progress bill: an ordered set of lines, one per
// catalog item, in first-added order. Adding an item that is already
// on the bill merges into its existing line; the merged amounts are
// recomputed from the combined quantity in a single arithmetic pass,
// never by summing two partial computations.
type Bill struct {
	convention enum.PriceConvention
	lines      []Line
}

// NewBill creates an empty bill under the given price convention.
func NewBill(convention enum.PriceConvention) *Bill {
	return &Bill{convention: convention}
}

// Convention returns the price convention the bill computes under.
func (b *Bill) Convention() enum.PriceConvention {
	return b.convention
}

func (b *Bill) indexOf(itemID uuid.UUID) int {
	for i := range b.lines {
		if b.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// unitPrice picks the transactional price for an item under the bill's
// convention. The catalog rate is tax-exclusive; the MRP, when present,
// is the inclusive price.
func (b *Bill) unitPrice(item *entity.Item) float64 {
	if b.convention == enum.PriceInclusive && item.MRPInclGST != nil {
		return *item.MRPInclGST
	}
	return item.RateExclGST
}

// AddItem merges quantity into the item's existing line or appends a
// new line at the end. Quantity must be positive and the item's GST
// rate must be within [0, 100].
func (b *Bill) AddItem(item *entity.Item, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.GSTRate < 0 || item.GSTRate > 100 {
		return ErrInvalidGSTRate
	}

	if i := b.indexOf(item.ID); i >= 0 {
		line := &b.lines[i]
		line.Quantity += quantity
		line.Amounts = ComputeLine(line.UnitPrice, line.Quantity, line.GSTRate, b.convention)
		return nil
	}

	price := b.unitPrice(item)
	b.lines = append(b.lines, Line{
		ItemID:    item.ID,
		Name:      item.Name,
		HSNCode:   item.HSNCode,
		UnitPrice: price,
		GSTRate:   item.GSTRate,
		Quantity:  quantity,
		Amounts:   ComputeLine(price, quantity, item.GSTRate, b.convention),
	})
	return nil
}

// UpdateQuantity replaces a line's quantity and recomputes its amounts
// in place, keeping its position. A quantity of zero or less removes
// the line. Unknown item IDs are a no-op.
func (b *Bill) UpdateQuantity(itemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		b.RemoveItem(itemID)
		return
	}

	if i := b.indexOf(itemID); i >= 0 {
		line := &b.lines[i]
		line.Quantity = quantity
		line.Amounts = ComputeLine(line.UnitPrice, line.Quantity, line.GSTRate, b.convention)
	}
}

// RemoveItem deletes a line, preserving the order of the remaining
// lines. Removing an absent item is a no-op.
func (b *Bill) RemoveItem(itemID uuid.UUID) {
	if i := b.indexOf(itemID); i >= 0 {
		b.lines = append(b.lines[:i], b.lines[i+1:]...)
	}
}

// Clear empties the bill.
func (b *Bill) Clear() {
	b.lines = nil
}

// IsEmpty reports whether the bill has no lines.
func (b *Bill) IsEmpty() bool {
	return len(b.lines) == 0
}

// Lines returns a copy of the bill's lines in display order.
func (b *Bill) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Totals folds the current lines into bill totals.
func (b *Bill) Totals() Totals {
	return ComputeTotals(b.lines)
}
