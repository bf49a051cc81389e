// Package entity defines the domain entities for the relationships
// feature.
package entity

import (
	"time"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
)

// Relationship is a directed follow edge: follower → following.
// The pair is unique so concurrent follow toggles cannot produce
// duplicate edges.
type Relationship struct {
	ID uint `gorm:"primaryKey"`

	// FollowerID is the user doing the following.
	FollowerID uint `gorm:"index;uniqueIndex:idx_follower_following;not null"`

	// FollowingID is the user being followed.
	FollowingID uint `gorm:"uniqueIndex:idx_follower_following;index;not null"`

	CreatedAt time.Time
}

// ListItem is one row of a followers or followings listing: the listed
// user plus whether the current viewer follows them.
type ListItem struct {
	ID          uint               `json:"_id"`
	User        authentity.Summary `json:"user"`
	IsFollowing bool               `json:"is_following"`
}
