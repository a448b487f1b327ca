package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturenectar/billing-api/internal/domain/enum"
)

// Address holds a postal address, embedded with a prefix per usage.
// Attention, country, phone and fax appear on the printed buyer and
// consignee blocks when present.
type Address struct {
	Attention string `gorm:"size:255" json:"attention,omitempty"`
	Line1     string `gorm:"size:255" json:"line1,omitempty"`
	Line2     string `gorm:"size:255" json:"line2,omitempty"`
	City      string `gorm:"size:100" json:"city,omitempty"`
	State     string `gorm:"size:100" json:"state,omitempty"`
	Pincode   string `gorm:"size:10" json:"pincode,omitempty"`
	Country   string `gorm:"size:100" json:"country,omitempty"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`
	Fax       string `gorm:"size:20" json:"fax,omitempty"`
}

// Receiver represents a saved invoice recipient (customer)
type Receiver struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerType    enum.CustomerType `gorm:"not null;default:0" json:"customer_type"`
	DisplayName     string            `gorm:"size:255;not null" json:"display_name"`
	ContactName     *string           `gorm:"size:255" json:"contact_name,omitempty"`
	GSTIN           *string           `gorm:"size:15" json:"gstin,omitempty"`
	Phone           *string           `gorm:"size:20" json:"phone,omitempty"`
	Email           *string           `gorm:"size:255" json:"email,omitempty"`
	BillingAddress  Address           `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	ShippingAddress Address           `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receiver
func (r *Receiver) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receiver model
func (Receiver) TableName() string {
	return "receivers"
}
