// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// AuthUser represents an account that can authenticate against the API.
// It is distinct from the managed User resource: it exists solely to hold
// credentials and is never exposed through the user CRUD endpoints.
type AuthUser struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Name is the account holder's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the address used for authentication.
	// It must be unique across all accounts.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the account password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
