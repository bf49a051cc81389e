// Package usecase implements the business logic for the comments
// feature.
package usecase

import "errors"

var (
	// ErrReelNotFound is returned when the referenced reel does not exist.
	ErrReelNotFound = errors.New("reel not found")

	// ErrCommentNotFound is returned when the referenced comment does
	// not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrParentNotFound is returned when a reply references a parent
	// that does not exist, belongs to another reel, or is itself a
	// reply.
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrEmptyBody is returned when the comment text is blank after
	// trimming.
	ErrEmptyBody = errors.New("comment is missing")
)
