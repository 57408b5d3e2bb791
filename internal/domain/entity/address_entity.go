package entity

import "time"

// Address is a shipping/billing address, optionally attached to a user.
type Address struct {
	ID        string    `json:"id"`
	Street    string    `json:"street"`
	Number    string    `json:"number"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	UserID    *string   `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
