package usecase

import (
	"context"
	"strings"

	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
)

// CommentRepository abstracts comment persistence and the annotated
// listings. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	// FindByID retrieves a comment; ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create persists a new comment or reply.
	Create(ctx context.Context, c *entity.Comment) error

	// UpdateBody rewrites the body and sets the edited flag.
	UpdateBody(ctx context.Context, id uint, body string) error

	// DeleteThread removes the comment, its direct replies and every
	// like row targeting any of them, in one transaction.
	DeleteThread(ctx context.Context, id uint) error

	// ListThreaded returns the reel's top-level comments in insertion
	// order, annotated for the viewer (0 = anonymous).
	ListThreaded(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error)

	// ListReplies returns a parent's direct replies in insertion order,
	// annotated for the viewer. replies_count is omitted.
	ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error)
}

// ReelFinder is the slice of the reels repository this feature needs
// for existence checks.
type ReelFinder interface {
	Exists(ctx context.Context, reelID uint) (bool, error)
}

// commentsUsecase implements the comment thread service.
type commentsUsecase struct {
	comments CommentRepository
	reels    ReelFinder
}

// NewCommentsUsecase creates a new instance of commentsUsecase.
func NewCommentsUsecase(comments CommentRepository, reels ReelFinder) *commentsUsecase {
	return &commentsUsecase{comments: comments, reels: reels}
}

func (u *commentsUsecase) requireReel(ctx context.Context, reelID uint) error {
	found, err := u.reels.Exists(ctx, reelID)
	if err != nil {
		return err
	}
	if !found {
		return ErrReelNotFound
	}
	return nil
}

// ListForReel returns the reel's top-level comments annotated for the
// viewer.
func (u *commentsUsecase) ListForReel(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
	if err := u.requireReel(ctx, reelID); err != nil {
		return nil, err
	}
	return u.comments.ListThreaded(ctx, reelID, viewerID)
}

// ListReplies returns the direct replies of a top-level comment.
func (u *commentsUsecase) ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error) {
	if _, err := u.comments.FindByID(ctx, parentID); err != nil {
		if err == ErrCommentNotFound {
			return nil, ErrParentNotFound
		}
		return nil, err
	}
	return u.comments.ListReplies(ctx, parentID, viewerID)
}

// Create posts a top-level comment on a reel and returns its id.
func (u *commentsUsecase) Create(ctx context.Context, reelID, authorID uint, body string) (uint, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, ErrEmptyBody
	}
	if err := u.requireReel(ctx, reelID); err != nil {
		return 0, err
	}

	c := &entity.Comment{ReelID: reelID, Body: body, CommentedBy: authorID}
	if err := u.comments.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Reply posts a reply under a top-level comment and returns its id.
// The parent must exist, belong to the same reel, and be top-level;
// anything else reads as ErrParentNotFound so the thread stays at one
// level deep.
func (u *commentsUsecase) Reply(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, ErrEmptyBody
	}
	if err := u.requireReel(ctx, reelID); err != nil {
		return 0, err
	}

	parent, err := u.comments.FindByID(ctx, parentID)
	if err != nil {
		if err == ErrCommentNotFound {
			return 0, ErrParentNotFound
		}
		return 0, err
	}
	if parent.ReelID != reelID || parent.IsReply() {
		return 0, ErrParentNotFound
	}

	c := &entity.Comment{
		ReelID:          reelID,
		Body:            body,
		ParentCommentID: &parent.ID,
		CommentedBy:     authorID,
	}
	if err := u.comments.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Edit rewrites a comment's body and marks it edited.
func (u *commentsUsecase) Edit(ctx context.Context, commentID uint, body string) (uint, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, ErrEmptyBody
	}
	if _, err := u.comments.FindByID(ctx, commentID); err != nil {
		return 0, err
	}
	if err := u.comments.UpdateBody(ctx, commentID, body); err != nil {
		return 0, err
	}
	return commentID, nil
}

// Delete removes a comment together with its direct replies.
func (u *commentsUsecase) Delete(ctx context.Context, commentID uint) (uint, error) {
	if _, err := u.comments.FindByID(ctx, commentID); err != nil {
		return 0, err
	}
	if err := u.comments.DeleteThread(ctx, commentID); err != nil {
		return 0, err
	}
	return commentID, nil
}
