// Package adapters provides the GORM-backed implementation of the
// users repository.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	reelentity "github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	relentity "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/usecase"
)

// userMySQL is a UserRepository backed by GORM.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new instance of userMySQL.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
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

// Exists reports whether a user row with the id is present. Other
// features use this for target validation without loading the row.
func (r *userMySQL) Exists(ctx context.Context, userID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", userID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userMySQL) FindByUserName(ctx context.Context, userName string) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userMySQL) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userMySQL) UserNameExists(ctx context.Context, userName string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("user_name = ?", userName).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userMySQL) Counts(ctx context.Context, userID uint) (usecase.ProfileCounts, error) {
	var counts usecase.ProfileCounts

	if err := r.db.WithContext(ctx).
		Model(&relentity.Relationship{}).
		Where("following_id = ?", userID).
		Count(&counts.Followers).Error; err != nil {
		return counts, err
	}
	if err := r.db.WithContext(ctx).
		Model(&relentity.Relationship{}).
		Where("follower_id = ?", userID).
		Count(&counts.Following).Error; err != nil {
		return counts, err
	}
	if err := r.db.WithContext(ctx).
		Model(&reelentity.Reel{}).
		Where("owner_id = ?", userID).
		Count(&counts.Reels).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *userMySQL) IsFollowing(ctx context.Context, viewerID, userID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&relentity.Relationship{}).
		Where("follower_id = ? AND following_id = ?", viewerID, userID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *userMySQL) MatchByHandlePrefix(ctx context.Context, prefix string) ([]authentity.Summary, error) {
	var users []authentity.User
	if err := r.db.WithContext(ctx).
		Select("id", "user_name", "avatar").
		Where("user_name LIKE ?", prefix+"%").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]authentity.Summary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summarize())
	}
	return summaries, nil
}

func (r *userMySQL) UpdateAccount(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error {
	res := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"full_name":   fullName,
			"user_name":   userName,
			"email":       email,
			"profile_tag": profileTag,
		})
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return usecase.ErrUserAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func (r *userMySQL) UpdateAvatar(ctx context.Context, userID uint, avatarURL string) error {
	res := r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", userID).
		Update("avatar", avatarURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
