// Package entity defines the domain entities for the comments feature.
package entity

import (
	"time"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
)

// Comment is a threaded comment on a reel, at most one level deep.
// ParentCommentID is nil for a top-level comment. A reply's parent must
// be a top-level comment of the same reel; the usecase enforces this at
// creation since the schema cannot.
type Comment struct {
	ID uint `gorm:"primaryKey"`

	ReelID uint `gorm:"index;not null"`

	Body string `gorm:"column:comment;size:2200;not null"`

	ParentCommentID *uint `gorm:"index"`

	CommentedBy uint `gorm:"index;not null"`

	IsEdited bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReply reports whether the comment is a reply rather than a
// top-level comment.
func (c *Comment) IsReply() bool {
	return c.ParentCommentID != nil
}

// Threaded is a comment annotated with its author summary and the
// viewer-relative derived fields.
type Threaded struct {
	ID          uint               `json:"_id"`
	Body        string             `json:"comment"`
	IsEdited    bool               `json:"is_Edited"`
	CommentedBy authentity.Summary `json:"commented_by"`
	LikesCount  int64              `json:"likes_count"`
	IsLiked     bool               `json:"is_liked"`

	// RepliesCount is present only on top-level listings; replies
	// cannot themselves have replies.
	RepliesCount *int64 `json:"replies_count,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
