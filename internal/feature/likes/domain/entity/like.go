// Package entity defines the domain entities for the likes feature.
package entity

import "time"

// TargetType discriminates what a like points at.
type TargetType string

const (
	// TargetReel marks a like on a reel.
	TargetReel TargetType = "reel"
	// TargetComment marks a like on a comment or reply.
	TargetComment TargetType = "comment"
)

// Like is a join record expressing that a user likes a reel or a
// comment. The composite unique index makes the like/unlike toggle
// race-free: concurrent creates for the same (actor, target) collapse
// into one row, the loser getting a duplicate-key error.
type Like struct {
	ID uint `gorm:"primaryKey"`

	TargetType TargetType `gorm:"size:16;uniqueIndex:idx_actor_target;not null"`
	TargetID   uint       `gorm:"uniqueIndex:idx_actor_target;index;not null"`

	LikedBy uint `gorm:"uniqueIndex:idx_actor_target,priority:1;not null"`

	CreatedAt time.Time
}
