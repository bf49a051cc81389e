// Package adapters provides the GORM-backed implementation of the reel
// repository.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	commententity "github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
	likeentity "github.com/deepak20001/quickflicks-backend/internal/feature/likes/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/usecase"
	relentity "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// reelMySQL is a ReelRepository backed by GORM.
type reelMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure reelMySQL implements ReelRepository.
var _ usecase.ReelRepository = (*reelMySQL)(nil)

// NewReelMySQL creates a new instance of reelMySQL.
func NewReelMySQL(db *gorm.DB) *reelMySQL {
	return &reelMySQL{db: db}
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

func (r *reelMySQL) Create(ctx context.Context, reel *entity.Reel) error {
	return r.db.WithContext(ctx).Create(reel).Error
}

// Exists reports whether a reel row with the id is present. Other
// features use this for target validation without loading the row.
func (r *reelMySQL) Exists(ctx context.Context, reelID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Reel{}).
		Where("id = ?", reelID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *reelMySQL) ListByOwner(ctx context.Context, ownerID, viewerID uint) ([]entity.Annotated, error) {
	var reels []entity.Reel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&reels).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, reels, viewerID, true)
}

func (r *reelMySQL) ListAll(ctx context.Context, viewerID uint) ([]entity.Annotated, error) {
	var reels []entity.Reel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&reels).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, reels, viewerID, true)
}

// ListByOwners returns the owners' reels in insertion order,
// annotated. The search feature uses this for handle-scoped feeds.
func (r *reelMySQL) ListByOwners(ctx context.Context, ownerIDs []uint, viewerID uint) ([]entity.Annotated, error) {
	var reels []entity.Reel
	if err := r.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Order("id ASC").
		Find(&reels).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, reels, viewerID, true)
}

func (r *reelMySQL) ListFollowed(ctx context.Context, viewerID uint) ([]entity.Annotated, error) {
	followed := r.db.Model(&relentity.Relationship{}).
		Select("following_id").
		Where("follower_id = ?", viewerID)

	var reels []entity.Reel
	if err := r.db.WithContext(ctx).
		Where("owner_id IN (?)", followed).
		Order("id ASC").
		Find(&reels).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, reels, viewerID, true)
}

func (r *reelMySQL) ListSaved(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error) {
	var reels []entity.Reel
	if err := r.db.WithContext(ctx).
		Joins("JOIN saved_reels ON saved_reels.reel_id = reels.id").
		Where("saved_reels.user_id = ?", userID).
		Order("saved_reels.id ASC").
		Find(&reels).Error; err != nil {
		return nil, err
	}
	return r.annotate(ctx, reels, viewerID, false)
}

func (r *reelMySQL) IsSaved(ctx context.Context, userID, reelID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.SavedReel{}).
		Where("user_id = ? AND reel_id = ?", userID, reelID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// SaveCreate adds the reel to the user's saved set. The unique
// (user_id, reel_id) pair rejects a second row; that outcome surfaces
// as toggle.ErrDuplicate.
func (r *reelMySQL) SaveCreate(ctx context.Context, s *entity.SavedReel) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isDuplicateKey(err) {
			return toggle.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *reelMySQL) SaveDelete(ctx context.Context, userID, reelID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND reel_id = ?", userID, reelID).
		Delete(&entity.SavedReel{}).Error
}

type savedPair struct {
	UserID uint
	ReelID uint
}

// annotate attaches owner summaries and the derived counters with one
// batched query per concern. is_saved tests the reel owner's saved
// set, not the viewer's, matching the original feed behavior clients
// already rely on.
func (r *reelMySQL) annotate(ctx context.Context, reels []entity.Reel, viewerID uint, withFollowing bool) ([]entity.Annotated, error) {
	out := make([]entity.Annotated, 0, len(reels))
	if len(reels) == 0 {
		return out, nil
	}

	ids := make([]uint, 0, len(reels))
	ownerIDs := make([]uint, 0, len(reels))
	for _, reel := range reels {
		ids = append(ids, reel.ID)
		ownerIDs = append(ownerIDs, reel.OwnerID)
	}

	owners := map[uint]authentity.Summary{}
	var users []authentity.User
	if err := r.db.WithContext(ctx).
		Select("id", "user_name", "avatar").
		Where("id IN ?", ownerIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		owners[u.ID] = u.Summarize()
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
		Where("target_type = ? AND target_id IN ?", likeentity.TargetReel, ids).
		Group("target_id").
		Find(&likeRows).Error; err != nil {
		return nil, err
	}
	for _, row := range likeRows {
		likeCounts[row.ID] = row.Total
	}

	// Comment counts include replies.
	commentCounts := map[uint]int64{}
	var commentRows []grouped
	if err := r.db.WithContext(ctx).
		Model(&commententity.Comment{}).
		Select("reel_id AS id, COUNT(*) AS total").
		Where("reel_id IN ?", ids).
		Group("reel_id").
		Find(&commentRows).Error; err != nil {
		return nil, err
	}
	for _, row := range commentRows {
		commentCounts[row.ID] = row.Total
	}

	liked := map[uint]bool{}
	if viewerID != 0 {
		var likedIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&likeentity.Like{}).
			Where("liked_by = ? AND target_type = ? AND target_id IN ?", viewerID, likeentity.TargetReel, ids).
			Pluck("target_id", &likedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	saved := map[savedPair]bool{}
	var savedRows []savedPair
	if err := r.db.WithContext(ctx).
		Model(&entity.SavedReel{}).
		Select("user_id", "reel_id").
		Where("reel_id IN ?", ids).
		Find(&savedRows).Error; err != nil {
		return nil, err
	}
	for _, row := range savedRows {
		saved[row] = true
	}

	following := map[uint]bool{}
	if withFollowing && viewerID != 0 {
		var followedIDs []uint
		if err := r.db.WithContext(ctx).
			Model(&relentity.Relationship{}).
			Where("follower_id = ? AND following_id IN ?", viewerID, ownerIDs).
			Pluck("following_id", &followedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range followedIDs {
			following[id] = true
		}
	}

	for _, reel := range reels {
		a := entity.Annotated{
			ID:            reel.ID,
			ReelURL:       reel.ReelURL,
			ThumbnailURL:  reel.ThumbnailURL,
			Caption:       reel.Caption,
			Duration:      reel.Duration,
			Owner:         owners[reel.OwnerID],
			LikesCount:    likeCounts[reel.ID],
			IsLiked:       liked[reel.ID],
			CommentsCount: commentCounts[reel.ID],
			IsSaved:       saved[savedPair{UserID: reel.OwnerID, ReelID: reel.ID}],
		}
		if withFollowing {
			f := following[reel.OwnerID]
			a.IsFollowing = &f
		}
		out = append(out, a)
	}
	return out, nil
}
