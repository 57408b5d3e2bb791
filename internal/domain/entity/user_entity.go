package entity

import "time"

// User is the credential store record. Password holds a bcrypt digest, never
// the plaintext.
//
// The registration response intentionally serializes the record as-is,
// digest included; existing clients depend on that shape.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
