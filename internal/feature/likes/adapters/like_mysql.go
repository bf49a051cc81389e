// Package adapters provides the GORM-backed implementation of the like
// repository.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/deepak20001/quickflicks-backend/internal/feature/likes/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/likes/usecase"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// likeMySQL is a LikeRepository backed by GORM.
type likeMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure likeMySQL implements LikeRepository.
var _ usecase.LikeRepository = (*likeMySQL)(nil)

// NewLikeMySQL creates a new instance of likeMySQL.
func NewLikeMySQL(db *gorm.DB) *likeMySQL {
	return &likeMySQL{db: db}
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

func (r *likeMySQL) Exists(ctx context.Context, likedBy uint, targetType entity.TargetType, targetID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("liked_by = ? AND target_type = ? AND target_id = ?", likedBy, targetType, targetID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts the like row. The composite unique index on
// (liked_by, target_type, target_id) rejects a second row for the same
// edge; that outcome surfaces as toggle.ErrDuplicate.
func (r *likeMySQL) Create(ctx context.Context, like *entity.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isDuplicateKey(err) {
			return toggle.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *likeMySQL) Delete(ctx context.Context, likedBy uint, targetType entity.TargetType, targetID uint) error {
	return r.db.WithContext(ctx).
		Where("liked_by = ? AND target_type = ? AND target_id = ?", likedBy, targetType, targetID).
		Delete(&entity.Like{}).Error
}
