package request

import "github.com/naturenectar/billing-api/internal/domain/enum"

// UpdatePaymentStatusRequest marks an invoice paid or unpaid
type UpdatePaymentStatusRequest struct {
	PaymentStatus *enum.PaymentStatus `json:"payment_status" binding:"required"`
}

// InvoiceListQuery holds the invoice listing filters
type InvoiceListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=paid unpaid"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Search string `form:"search"`
}
