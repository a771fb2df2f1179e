package entities

import "time"

// Gender values accepted at signup
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User is a registered traveler account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Gender       string    `json:"gender" db:"gender"`
	Age          int       `json:"age" db:"age"`
	ProfilePhoto string    `json:"profile_photo,omitempty" db:"profile_photo"`
	Interests    []string  `json:"interests" db:"-"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
