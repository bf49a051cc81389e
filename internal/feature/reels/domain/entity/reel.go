// Package entity defines the domain entities for the reels feature.
package entity

import (
	"time"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
)

// Reel is a posted video. Immutable after creation; there is no edit
// endpoint.
type Reel struct {
	ID uint `gorm:"primaryKey"`

	// ReelURL is the object-storage URL of the video.
	ReelURL string `gorm:"size:512;not null"`

	// ThumbnailURL is the object-storage URL of the preview image.
	ThumbnailURL string `gorm:"size:512;not null"`

	Caption string `gorm:"size:2200;not null"`

	// Duration is the video length in seconds.
	Duration float64 `gorm:"not null"`

	OwnerID uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SavedReel is a row in a user's saved set. The pair is unique so a
// reel can be saved at most once per user.
type SavedReel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;uniqueIndex:idx_user_saved_reel;not null"`
	ReelID    uint `gorm:"uniqueIndex:idx_user_saved_reel;not null"`
	CreatedAt time.Time
}

// TableName keeps the original collection name.
func (SavedReel) TableName() string {
	return "saved_reels"
}

// Annotated is a reel enriched with the viewer-relative derived fields
// every listing endpoint returns.
type Annotated struct {
	ID            uint               `json:"_id"`
	ReelURL       string             `json:"reel_url"`
	ThumbnailURL  string             `json:"reel_thumbnail_url"`
	Caption       string             `json:"caption"`
	Duration      float64            `json:"duration"`
	Owner         authentity.Summary `json:"owner"`
	LikesCount    int64              `json:"likes_count"`
	IsLiked       bool               `json:"is_liked"`
	CommentsCount int64              `json:"comments_count"`
	IsSaved       bool               `json:"is_saved"`

	// IsFollowing is absent from the saved-reels projection.
	IsFollowing *bool `json:"is_following,omitempty"`
}
