package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product belongs to a single category. Sku is nullable so that products
// without a SKU never collide on the unique index.
type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryID  string          `gorm:"size:36;index;not null" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Sku         *string         `gorm:"size:100;uniqueIndex" json:"sku"`
	Brand       string          `gorm:"size:100" json:"brand"`
	PartNumber  string          `gorm:"size:100" json:"part_number"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	// PriceDisplay is filled in at the boundary, never persisted.
	PriceDisplay string `gorm:"-" json:"price_display,omitempty"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	IsFeatured  bool            `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// SkuValue returns the SKU or "" when none is set.
func (p *Product) SkuValue() string {
	if p.Sku == nil {
		return ""
	}
	return *p.Sku
}
