// Package adapters provides the GORM-backed implementation of the
// comments repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/usecase"
	likeentity "github.com/deepak20001/quickflicks-backend/internal/feature/likes/domain/entity"
)

// commentMySQL is a CommentRepository backed by GORM.
type commentMySQL struct {
	db *gorm.DB
}

// NewCommentMySQL creates a new instance of commentMySQL.
func NewCommentMySQL(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

var _ usecase.CommentRepository = (*commentMySQL)(nil)

func (r *commentMySQL) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentMySQL) Create(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Exists reports whether a comment row with the id is present. Other
// features use this for target validation without loading the row.
func (r *commentMySQL) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *commentMySQL) UpdateBody(ctx context.Context, id uint, body string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{"comment": body, "is_edited": true})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}

// DeleteThread removes the comment, its direct replies and the like
// rows targeting any of them in a single transaction, so a failure
// midway leaves the thread intact.
func (r *commentMySQL) DeleteThread(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var replyIDs []uint
		if err := tx.Model(&entity.Comment{}).
			Where("parent_comment_id = ?", id).
			Pluck("id", &replyIDs).Error; err != nil {
			return err
		}

		targetIDs := append(replyIDs, id)
		if err := tx.Where("target_type = ? AND target_id IN ?", likeentity.TargetComment, targetIDs).
			Delete(&likeentity.Like{}).Error; err != nil {
			return err
		}

		if len(replyIDs) > 0 {
			if err := tx.Delete(&entity.Comment{}, replyIDs).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&entity.Comment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCommentNotFound
		}
		return nil
	})
}

func (r *commentMySQL) ListThreaded(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("reel_id = ? AND parent_comment_id IS NULL", reelID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, comments, viewerID, true)
}

func (r *commentMySQL) ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Where("parent_comment_id = ?", parentID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, comments, viewerID, false)
}

// annotate attaches author summaries and the viewer-relative derived
// fields using one batched query per concern instead of a query per
// comment.
func (r *commentMySQL) annotate(ctx context.Context, comments []entity.Comment, viewerID uint, withReplies bool) ([]entity.Threaded, error) {
	out := make([]entity.Threaded, 0, len(comments))
	if len(comments) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(comments))
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
		authorIDs = append(authorIDs, c.CommentedBy)
	}

	authors := map[uint]authentity.Summary{}
	var users []authentity.User
	if err := r.db.WithContext(ctx).
		Select("id", "user_name", "avatar").
		Where("id IN ?", authorIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		authors[u.ID] = u.Summarize()
	}

	type grouped struct {
		ID    uint
		Total int64
	}

	likeCounts := map[uint]int64{}
	var likeRows []grouped
	if err := r.db.WithContext(ctx).
		Model(&likeentity.Like{}).
		Select("target_id AS id, COUNT(*) AS total").
		Where("target_type = ? AND target_id IN ?", likeentity.TargetComment, ids).
		Group("target_id").
		Find(&likeRows).Error; err != nil {
		return nil, err
	}
	for _, row := range likeRows {
		likeCounts[row.ID] = row.Total
	}

	liked := map[uint]bool{}
	if viewerID != 0 {
		var likedIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&likeentity.Like{}).
			Where("liked_by = ? AND target_type = ? AND target_id IN ?", viewerID, likeentity.TargetComment, ids).
			Pluck("target_id", &likedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	replyCounts := map[uint]int64{}
	if withReplies {
		var replyRows []grouped
		if err := r.db.WithContext(ctx).
			Model(&entity.Comment{}).
			Select("parent_comment_id AS id, COUNT(*) AS total").
			Where("parent_comment_id IN ?", ids).
			Group("parent_comment_id").
			Find(&replyRows).Error; err != nil {
			return nil, err
		}
		for _, row := range replyRows {
			replyCounts[row.ID] = row.Total
		}
	}

	for _, c := range comments {
		t := entity.Threaded{
			ID:          c.ID,
			Body:        c.Body,
			IsEdited:    c.IsEdited,
			CommentedBy: authors[c.CommentedBy],
			LikesCount:  likeCounts[c.ID],
			IsLiked:     liked[c.ID],
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
		if withReplies {
			n := replyCounts[c.ID]
			t.RepliesCount = &n
		}
		out = append(out, t)
	}
	return out, nil
}
