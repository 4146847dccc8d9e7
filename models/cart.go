package models

import "time"

type CartItem struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string    `gorm:"index;uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID       uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	SelectedVariant string    `json:"selected_variant,omitempty"`
	AddedAt         time.Time `json:"added_at"`
}

// CartLine is a cart item joined with the current product snapshot,
// as returned to the UI.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}
