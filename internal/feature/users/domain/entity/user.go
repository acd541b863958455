// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a managed user record.
// Phone and Age are pointers because both are optional; a nil Phone must not
// collide with other nil Phones in the unique index.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name.
	FullName string `gorm:"column:fullName;size:255;not null"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Phone is the user's phone number, unique when present.
	Phone *string `gorm:"uniqueIndex;size:32"`

	// Age is the user's age in years.
	Age *int

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the record was last updated.
	UpdatedAt time.Time
}
