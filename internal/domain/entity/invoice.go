package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// ReceiverSnapshot freezes the recipient details on the invoice at
// generation time. Later edits to the saved receiver never touch it.
type ReceiverSnapshot struct {
	ReceiverID      *uuid.UUID        `gorm:"type:uuid" json:"receiver_id,omitempty"`
	CustomerType    enum.CustomerType `gorm:"not null;default:0" json:"customer_type"`
	DisplayName     string            `gorm:"size:255;not null" json:"display_name"`
	GSTIN           *string           `gorm:"size:15" json:"gstin,omitempty"`
	Phone           *string           `gorm:"size:20" json:"phone,omitempty"`
	Address         Address           `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	ShippingAddress Address           `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
}

// Invoice represents a persisted, immutable GST invoice. Totals are
// computed once at generation time and are authoritative afterwards.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:20;uniqueIndex;not null" json:"invoice_number"`
	Receiver      ReceiverSnapshot   `gorm:"embedded;embeddedPrefix:receiver_" json:"receiver"`
	Items         []InvoiceItem      `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64            `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	CGST          float64            `gorm:"type:decimal(15,2);not null" json:"cgst"`
	SGST          float64            `gorm:"type:decimal(15,2);not null" json:"sgst"`
	Total         float64            `gorm:"type:decimal(15,2);not null" json:"total"`
	PaymentStatus enum.PaymentStatus `gorm:"not null;default:0" json:"payment_status"`

	BuyersOrderNo     *string `gorm:"size:100" json:"buyers_order_no,omitempty"`
	DispatchedThrough *string `gorm:"size:100" json:"dispatched_through,omitempty"`
	Destination       *string `gorm:"size:255" json:"destination,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents one line of a persisted invoice. Item details
// are snapshotted so catalog edits never change past invoices.
type InvoiceItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	ItemID    *uuid.UUID `gorm:"type:uuid" json:"item_id,omitempty"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	HSNCode   *string    `gorm:"size:20" json:"hsn_code,omitempty"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	UnitRate  float64    `gorm:"type:decimal(15,2);not null" json:"unit_rate"`
	GSTRate   float64    `gorm:"type:decimal(5,2);not null" json:"gst_rate"`
	Base      float64    `gorm:"type:decimal(15,2);not null" json:"base"`
	CGST      float64    `gorm:"type:decimal(15,2);not null" json:"cgst"`
	SGST      float64    `gorm:"type:decimal(15,2);not null" json:"sgst"`
	Total     float64    `gorm:"type:decimal(15,2);not null" json:"total"`
	Position  int        `gorm:"not null" json:"position"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
