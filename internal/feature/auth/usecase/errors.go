// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering with a handle or
	// email that is already taken.
	ErrUserAlreadyExists = errors.New("user with email or username already exists")

	// ErrInvalidCredentials is returned on login when email or password
	// is wrong. Deliberately generic to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrFieldsRequired is returned when a required registration field
	// is blank after trimming.
	ErrFieldsRequired = errors.New("all fields are required")

	// ErrSessionNotFound is returned when a refresh session cannot be
	// found by its token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked
	// refresh token.
	ErrSessionRevoked = errors.New("refresh token is expired or used")

	// ErrSamePassword is returned when a password change supplies the
	// old password as the new one.
	ErrSamePassword = errors.New("new password cannot be the same as old password")

	// ErrWrongPassword is returned when the old password of a password
	// change does not verify.
	ErrWrongPassword = errors.New("old password is incorrect")
)
