package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents a sellable catalog item variant
type Item struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Weight      *float64       `gorm:"type:decimal(10,3)" json:"weight,omitempty"`
	WeightUnit  string         `gorm:"size:10;default:'g'" json:"weight_unit"`
	RateExclGST float64        `gorm:"type:decimal(15,2);not null" json:"rate_excl_gst"`
	MRPInclGST  *float64       `gorm:"type:decimal(15,2)" json:"mrp_incl_gst,omitempty"`
	HSNCode     *string        `gorm:"size:20" json:"hsn_code,omitempty"`
	GSTRate     float64        `gorm:"type:decimal(5,2);not null;default:0" json:"gst_rate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
