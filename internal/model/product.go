package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Prices are written as JSON numbers, matching how clients send them.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductStatus controls whether a product is listed as sellable.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// Product is a catalogue entry.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Category    string          `json:"category" gorm:"size:128;not null;index"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	Image       string          `json:"image,omitempty" gorm:"size:1024"`
	Status      ProductStatus   `json:"status" gorm:"size:32;not null;default:'active';index"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID and defaults before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProductActive
	}
	return nil
}
