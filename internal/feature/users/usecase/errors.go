// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a write would duplicate an email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when a write would duplicate a phone number.
	ErrPhoneAlreadyExists = errors.New("phone already exists")
)
