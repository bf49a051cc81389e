package usecase

import "errors"

// Sentinel errors returned by the relationships usecase.
var (
	ErrSelfFollow   = errors.New("You cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
)
