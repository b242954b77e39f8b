package entity

import (
	"time"
)

// User is the identity anchor. Every aggregate in the system carries the id of
// the User that owns it; authorization decisions compare against that id.
// Passwords are stored as bcrypt hashes in Password and never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
