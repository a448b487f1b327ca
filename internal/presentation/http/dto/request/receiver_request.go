package request

import "github.com/naturenectar/billing-api/internal/domain/enum"

// AddressRequest represents a postal address in a request body
type AddressRequest struct {
	Attention string `json:"attention" binding:"omitempty,max=255"`
	Line1     string `json:"line1" binding:"omitempty,max=255"`
	Line2     string `json:"line2" binding:"omitempty,max=255"`
	City      string `json:"city" binding:"omitempty,max=100"`
	State     string `json:"state" binding:"omitempty,max=100"`
	Pincode   string `json:"pincode" binding:"omitempty,max=10"`
	Country   string `json:"country" binding:"omitempty,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Fax       string `json:"fax" binding:"omitempty,max=20"`
}

// ReceiverRequest represents a create/update request for a receiver
type ReceiverRequest struct {
	CustomerType    enum.CustomerType `json:"customer_type"`
	DisplayName     string            `json:"display_name" binding:"required,min=1,max=255"`
	ContactName     *string           `json:"contact_name" binding:"omitempty,max=255"`
	GSTIN           *string           `json:"gstin" binding:"omitempty,len=15"`
	Phone           *string           `json:"phone" binding:"omitempty,max=20"`
	Email           *string           `json:"email" binding:"omitempty,email"`
	BillingAddress  AddressRequest    `json:"billing_address"`
	ShippingAddress AddressRequest    `json:"shipping_address"`
}
