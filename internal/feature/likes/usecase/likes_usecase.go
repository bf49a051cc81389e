// Package usecase implements the like/unlike toggle for reels and
// comments.
package usecase

import (
	"context"

	"github.com/deepak20001/quickflicks-backend/internal/feature/likes/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// LikeRepository abstracts like-row persistence. Following Go
// convention, the interface is defined by the consumer (usecase), not
// the provider (adapters).
type LikeRepository interface {
	// Exists reports whether the actor currently likes the target.
	Exists(ctx context.Context, likedBy uint, targetType entity.TargetType, targetID uint) (bool, error)

	// Create inserts a like row; a uniqueness violation surfaces as
	// toggle.ErrDuplicate.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes the actor's like on the target if present.
	Delete(ctx context.Context, likedBy uint, targetType entity.TargetType, targetID uint) error
}

// ReelFinder checks reel existence.
type ReelFinder interface {
	Exists(ctx context.Context, reelID uint) (bool, error)
}

// CommentFinder checks comment existence.
type CommentFinder interface {
	Exists(ctx context.Context, commentID uint) (bool, error)
}

// likesUsecase implements the like toggles.
type likesUsecase struct {
	likes    LikeRepository
	reels    ReelFinder
	comments CommentFinder
}

// NewLikesUsecase creates a new instance of likesUsecase.
func NewLikesUsecase(likes LikeRepository, reels ReelFinder, comments CommentFinder) *likesUsecase {
	return &likesUsecase{likes: likes, reels: reels, comments: comments}
}

// ToggleReel flips the viewer's like on a reel and reports whether the
// like is active afterwards.
func (u *likesUsecase) ToggleReel(ctx context.Context, viewerID, reelID uint) (bool, error) {
	found, err := u.reels.Exists(ctx, reelID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrReelNotFound
	}
	return u.flip(ctx, viewerID, entity.TargetReel, reelID)
}

// ToggleComment flips the viewer's like on a comment or reply.
func (u *likesUsecase) ToggleComment(ctx context.Context, viewerID, commentID uint) (bool, error) {
	found, err := u.comments.Exists(ctx, commentID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrCommentNotFound
	}
	return u.flip(ctx, viewerID, entity.TargetComment, commentID)
}

func (u *likesUsecase) flip(ctx context.Context, viewerID uint, targetType entity.TargetType, targetID uint) (bool, error) {
	return toggle.Flip(ctx,
		func(ctx context.Context) (bool, error) {
			return u.likes.Exists(ctx, viewerID, targetType, targetID)
		},
		func(ctx context.Context) error {
			return u.likes.Create(ctx, &entity.Like{
				TargetType: targetType,
				TargetID:   targetID,
				LikedBy:    viewerID,
			})
		},
		func(ctx context.Context) error {
			return u.likes.Delete(ctx, viewerID, targetType, targetID)
		},
	)
}
