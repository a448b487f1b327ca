package request

import (
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// AddBillItemRequest adds a catalog item to the current bill
type AddBillItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateBillItemRequest changes the quantity of a bill line.
// A quantity of zero removes the line.
type UpdateBillItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// InlineReceiverRequest supplies receiver details at invoice time
// without requiring a saved receiver. Save marks it for future use.
type InlineReceiverRequest struct {
	ReceiverRequest
	Save bool `json:"save"`
}

// GenerateInvoiceRequest commits the current bill into an invoice
type GenerateInvoiceRequest struct {
	ReceiverID        *uuid.UUID             `json:"receiver_id"`
	Receiver          *InlineReceiverRequest `json:"receiver"`
	PaymentStatus     enum.PaymentStatus     `json:"payment_status"`
	BuyersOrderNo     *string                `json:"buyers_order_no" binding:"omitempty,max=100"`
	DispatchedThrough *string                `json:"dispatched_through" binding:"omitempty,max=100"`
	Destination       *string                `json:"destination" binding:"omitempty,max=255"`
}
