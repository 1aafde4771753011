// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrMissingCredentials is returned when a registration request lacks
	// an email address or a password.
	ErrMissingCredentials = errors.New("please provide both email and password")

	// ErrEmailAlreadyExists is returned when attempting to register an email
	// that already belongs to an account.
	ErrEmailAlreadyExists = errors.New("email is already in use")

	// ErrInvalidAddress is returned when the address verification service
	// rejects the supplied address, or when verification cannot be completed.
	ErrInvalidAddress = errors.New("address is not valid")

	// ErrInvalidCredentials is returned on sign-in failure. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
