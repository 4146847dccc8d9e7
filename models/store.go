package models

import "time"

type Store struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     string    `gorm:"uniqueIndex;not null" json:"owner_id"` // Enforces ONE store per owner
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
