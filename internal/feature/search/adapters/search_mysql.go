// Package adapters provides the GORM-backed implementation of the
// search user directory.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	relentity "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/search/usecase"
)

// searchMySQL is a UserDirectory backed by GORM.
type searchMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure searchMySQL implements UserDirectory.
var _ usecase.UserDirectory = (*searchMySQL)(nil)

// NewSearchMySQL creates a new instance of searchMySQL.
func NewSearchMySQL(db *gorm.DB) *searchMySQL {
	return &searchMySQL{db: db}
}

// MatchByHandle matches handles by substring. Handles are stored
// lowercase, so lowering the query keeps the match case-insensitive
// without relying on collation.
func (r *searchMySQL) MatchByHandle(ctx context.Context, query string) ([]authentity.Summary, error) {
	var users []authentity.User
	q := r.db.WithContext(ctx).
		Select("id", "user_name", "avatar").
		Order("id ASC")
	if query != "" {
		q = q.Where("user_name LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]authentity.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summarize())
	}
	return out, nil
}

func (r *searchMySQL) FollowerCounts(ctx context.Context, userIDs []uint) (map[uint]int64, error) {
	counts := map[uint]int64{}
	if len(userIDs) == 0 {
		return counts, nil
	}

	type grouped struct {
		ID    uint
		Total int64
	}
	var rows []grouped
	if err := r.db.WithContext(ctx).
		Model(&relentity.Relationship{}).
		Select("following_id AS id, COUNT(*) AS total").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ID] = row.Total
	}
	return counts, nil
}
