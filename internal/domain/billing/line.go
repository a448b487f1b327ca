package billing

import (
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// Amounts holds the computed money breakdown of a bill line.
type Amounts struct {
	Base  float64 `json:"base"`
	Tax   float64 `json:"tax"`
	CGST  float64 `json:"cgst"`
	SGST  float64 `json:"sgst"`
	Total float64 `json:"total"`
}

// ComputeLine derives the amounts for one line from a unit price,
// quantity and GST rate (percent).
//
// Under the exclusive convention the price is a pre-tax rate:
//
//	Base = price * qty; Tax = Base * rate/100; Total = Base + Tax
//
// Under the inclusive convention the price is a GST-inclusive MRP:
//
//	Total = price * qty; Base = Total / (1 + rate/100); Tax = Total - Base
//
// CGST and SGST are each half of the tax. A zero rate makes the two
// conventions coincide.
func ComputeLine(unitPrice float64, quantity int, gstRate float64, convention enum.PriceConvention) Amounts {
	qty := float64(quantity)

	var a Amounts
	switch convention {
	case enum.PriceInclusive:
		a.Total = unitPrice * qty
		a.Base = a.Total / (1 + gstRate/100)
		a.Tax = a.Total - a.Base
	default:
		a.Base = unitPrice * qty
		a.Tax = a.Base * gstRate / 100
		a.Total = a.Base + a.Tax
	}

	a.CGST = a.Tax / 2
	a.SGST = a.Tax / 2
	return a
}

// Line is one entry of the current bill: a catalog item snapshot, a
// quantity, and the amounts derived from them. The quantity is never
// changed without recomputing the amounts in the same step.
type Line struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	HSNCode   *string   `json:"hsn_code,omitempty"`
	UnitPrice float64   `json:"unit_price"`
	GSTRate   float64   `json:"gst_rate"`
	Quantity  int       `json:"quantity"`
	Amounts   Amounts   `json:"amounts"`
}
