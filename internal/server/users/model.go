package users

import "time"

// User is the identity record owned by the credential store. ID is assigned
// by the store and immutable afterwards; PasswordHash is opaque and never the
// plaintext.
type User struct {
	ID           int64
	Login        string
	Email        string
	FullName     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
