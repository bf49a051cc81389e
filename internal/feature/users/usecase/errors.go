package usecase

import "errors"

// Sentinel errors returned by the users usecase.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrFieldsRequired    = errors.New("all fields are required")
	ErrUserAlreadyExists = errors.New("user name or email already taken")
	ErrEmptyQuery        = errors.New("empty search query")
)
