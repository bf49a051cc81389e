package usecase

import "errors"

// Sentinel errors returned by the reels usecase.
var (
	ErrReelNotFound    = errors.New("reel not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCaptionRequired = errors.New("caption is required")
)
