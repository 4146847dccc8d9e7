package models

import "time"

type ActivityType string

const (
	ActivityOrderPlaced    ActivityType = "order_placed"
	ActivityOrderConfirmed ActivityType = "order_confirmed"
	ActivityOrderCancelled ActivityType = "order_cancelled"
	ActivityProductAdded   ActivityType = "product_added"
	ActivityStoreUpdated   ActivityType = "store_updated"
)

// Activity is an immutable audit entry. Rows are only ever inserted.
type Activity struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID     uint         `gorm:"index;not null" json:"store_id"`
	Type        ActivityType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Description string       `gorm:"not null" json:"description"`
	OrderID     *uint        `json:"order_id,omitempty"`
	ProductID   *uint        `json:"product_id,omitempty"`
	Amount      *float64     `json:"amount,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
