// Package adapters provides the GORM-backed implementation of the
// relationship repository.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/relationships/usecase"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// relationshipMySQL is a RelationshipRepository backed by GORM.
type relationshipMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure relationshipMySQL implements
// RelationshipRepository.
var _ usecase.RelationshipRepository = (*relationshipMySQL)(nil)

// NewRelationshipMySQL creates a new instance of relationshipMySQL.
func NewRelationshipMySQL(db *gorm.DB) *relationshipMySQL {
	return &relationshipMySQL{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL errno 1062 is checked alongside GORM's translated sentinel so
// the adapters behave identically under the SQLite test driver.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *relationshipMySQL) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Relationship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts the follow edge. The unique (follower_id,
// following_id) pair rejects a second row; that outcome surfaces as
// toggle.ErrDuplicate.
func (r *relationshipMySQL) Create(ctx context.Context, rel *entity.Relationship) error {
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		if isDuplicateKey(err) {
			return toggle.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *relationshipMySQL) Delete(ctx context.Context, followerID, followingID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entity.Relationship{}).Error
}

func (r *relationshipMySQL) ListFollowers(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entity.Relationship{}).
		Where("following_id = ?", userID).
		Order("id ASC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, ids, viewerID)
}

func (r *relationshipMySQL) ListFollowing(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entity.Relationship{}).
		Where("follower_id = ?", userID).
		Order("id ASC").
		Pluck("following_id", &ids).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, ids, viewerID)
}

// annotate loads the listed users' summaries and marks which of them
// the viewer follows, preserving the edge insertion order of ids.
func (r *relationshipMySQL) annotate(ctx context.Context, ids []uint, viewerID uint) ([]entity.ListItem, error) {
	out := make([]entity.ListItem, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []authentity.User
	if err := r.db.WithContext(ctx).
		Select("id", "user_name", "avatar").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	summaries := make(map[uint]authentity.Summary, len(users))
	for _, u := range users {
		summaries[u.ID] = u.Summarize()
	}

	followed := map[uint]bool{}
	if viewerID != 0 {
		var followedIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&entity.Relationship{}).
			Where("follower_id = ? AND following_id IN ?", viewerID, ids).
			Pluck("following_id", &followedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range followedIDs {
			followed[id] = true
		}
	}

	for _, id := range ids {
		s, ok := summaries[id]
		if !ok {
			continue
		}
		out = append(out, entity.ListItem{
			ID:          id,
			User:        s,
			IsFollowing: followed[id],
		})
	}
	return out, nil
}
