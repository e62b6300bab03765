package store

import "time"

// User is a registered account. Accounts stay unverified until the signup
// code has been confirmed.
type User struct {
	ID           string
	Email        string
	Username     string
	Twitter      string
	Github       string
	Linkedin     string
	Portfolio    string
	PasswordHash []byte
	Verified     bool
	CreatedAt    time.Time
}

// OTP is a pending signup code for one user.
type OTP struct {
	Code      int
	ExpiresAt time.Time
}

type Post struct {
	ID          string
	Title       string
	Description string
	AuthorID    string
	CreatedAt   time.Time
}
