package usecase

import "errors"

// Sentinel errors returned by the likes usecase. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrReelNotFound    = errors.New("reel not found")
	ErrCommentNotFound = errors.New("comment not found")
)
