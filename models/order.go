package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting the store owner
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the store owner
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by the store owner
)

type Order struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	StoreID   uint    `gorm:"index;not null" json:"store_id"`
	// CustomerID is nil for guest orders.
	CustomerID    *string     `gorm:"index" json:"customer_id,omitempty"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `gorm:"not null" json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Quantity      int         `gorm:"not null" json:"quantity"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}
