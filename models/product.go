package models

import "time"

type Product struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID uint `gorm:"index;not null" json:"store_id"`

	// ExternalID carries the upstream catalog identifier so imports can
	// upsert idempotently. Nil for products created by hand.
	ExternalID *string `gorm:"uniqueIndex" json:"external_id,omitempty"`
	Handle     string  `gorm:"index" json:"handle"`
	Name       string  `gorm:"not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	ImageURL   string  `json:"image_url"`
	Collection string  `json:"collection"`
	InStock    bool    `json:"in_stock"`
	// StockQuantity is nil when stock is untracked (treated as unlimited).
	StockQuantity *int      `json:"stock_quantity,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CanFulfill reports whether an order for qty units would be accepted:
// the product must be in stock and, when stock is tracked, hold at least qty.
func (p *Product) CanFulfill(qty int) bool {
	if !p.InStock {
		return false
	}
	if p.StockQuantity != nil && *p.StockQuantity < qty {
		return false
	}
	return true
}

// RecomputeInStock derives the in-stock flag from the tracked quantity.
// Untracked stock is always in stock.
func (p *Product) RecomputeInStock() {
	p.InStock = p.StockQuantity == nil || *p.StockQuantity > 0
}
