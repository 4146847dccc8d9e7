package models

import "time"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"unique;not null" json:"email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Address        Address   `gorm:"embedded" json:"address"`
	ReceiveUpdates bool      `json:"receive_updates"`
	SaveInfo       bool      `json:"save_info"`
	ShippingMethod string    `json:"shipping_method"`
	ShippingPrice  float64   `json:"shipping_price"`
	CreatedAt      time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Apartment  string `json:"apartment"`
	RoadNumber string `json:"road_number"`
}

// GuestUser is a short-lived anonymous identity used for guest checkout.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
