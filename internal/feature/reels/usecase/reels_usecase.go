// Package usecase implements reel posting, the annotated feed
// listings and the saved-reels toggle.
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// ReelRepository abstracts reel persistence and the annotated
// listings. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type ReelRepository interface {
	// Create persists a new reel.
	Create(ctx context.Context, r *entity.Reel) error

	// Exists reports whether a reel row with the id is present.
	Exists(ctx context.Context, reelID uint) (bool, error)

	// ListByOwner returns the owner's reels in insertion order,
	// annotated for the viewer (0 = anonymous).
	ListByOwner(ctx context.Context, ownerID, viewerID uint) ([]entity.Annotated, error)

	// ListAll returns every reel in insertion order, annotated.
	ListAll(ctx context.Context, viewerID uint) ([]entity.Annotated, error)

	// ListFollowed returns reels owned by users the viewer follows.
	ListFollowed(ctx context.Context, viewerID uint) ([]entity.Annotated, error)

	// ListSaved returns the reels in userID's saved set. The
	// is_following annotation is absent from this projection.
	ListSaved(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error)

	// IsSaved reports whether the reel is in userID's saved set.
	IsSaved(ctx context.Context, userID, reelID uint) (bool, error)

	// SaveCreate adds a reel to a saved set; a uniqueness violation
	// surfaces as toggle.ErrDuplicate.
	SaveCreate(ctx context.Context, s *entity.SavedReel) error

	// SaveDelete removes a reel from a saved set if present.
	SaveDelete(ctx context.Context, userID, reelID uint) error
}

// UserFinder checks user existence.
type UserFinder interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// MediaStorage uploads media objects and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// CreateInput carries everything needed to post a reel.
type CreateInput struct {
	OwnerID  uint
	Caption  string
	Duration float64

	Video            io.Reader
	VideoSize        int64
	VideoContentType string

	Thumbnail            io.Reader
	ThumbnailSize        int64
	ThumbnailContentType string
}

// reelsUsecase implements the reels service.
type reelsUsecase struct {
	reels   ReelRepository
	users   UserFinder
	storage MediaStorage
}

// NewReelsUsecase creates a new instance of reelsUsecase.
func NewReelsUsecase(reels ReelRepository, users UserFinder, storage MediaStorage) *reelsUsecase {
	return &reelsUsecase{reels: reels, users: users, storage: storage}
}

func (u *reelsUsecase) requireUser(ctx context.Context, userID uint) error {
	found, err := u.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// ListByUser returns a user's reels annotated for the viewer.
func (u *reelsUsecase) ListByUser(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.reels.ListByOwner(ctx, userID, viewerID)
}

// ListAll returns the global feed in insertion order.
func (u *reelsUsecase) ListAll(ctx context.Context, viewerID uint) ([]entity.Annotated, error) {
	return u.reels.ListAll(ctx, viewerID)
}

// ListFollowing returns reels owned by users the viewer follows.
func (u *reelsUsecase) ListFollowing(ctx context.Context, viewerID uint) ([]entity.Annotated, error) {
	return u.reels.ListFollowed(ctx, viewerID)
}

// ListMostLiked returns the global feed ordered by like count, most
// liked first. The sort is stable so reels with equal counts keep
// insertion order.
func (u *reelsUsecase) ListMostLiked(ctx context.Context, viewerID uint) ([]entity.Annotated, error) {
	reels, err := u.reels.ListAll(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reels, func(i, j int) bool {
		return reels[i].LikesCount > reels[j].LikesCount
	})
	return reels, nil
}

// ListSaved returns the reels in userID's saved set.
func (u *reelsUsecase) ListSaved(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.reels.ListSaved(ctx, userID, viewerID)
}

// Create uploads the video and thumbnail and persists the reel.
func (u *reelsUsecase) Create(ctx context.Context, in CreateInput) (*entity.Reel, error) {
	caption := strings.TrimSpace(in.Caption)
	if caption == "" {
		return nil, ErrCaptionRequired
	}

	name, err := objectName()
	if err != nil {
		return nil, fmt.Errorf("generate object name: %w", err)
	}

	reelURL, err := u.storage.Upload(ctx,
		fmt.Sprintf("reels/%d/%s", in.OwnerID, name),
		in.Video, in.VideoSize, in.VideoContentType)
	if err != nil {
		return nil, fmt.Errorf("upload reel: %w", err)
	}

	thumbURL, err := u.storage.Upload(ctx,
		fmt.Sprintf("thumbnails/%d/%s", in.OwnerID, name),
		in.Thumbnail, in.ThumbnailSize, in.ThumbnailContentType)
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	reel := &entity.Reel{
		ReelURL:      reelURL,
		ThumbnailURL: thumbURL,
		Caption:      caption,
		Duration:     in.Duration,
		OwnerID:      in.OwnerID,
	}
	if err := u.reels.Create(ctx, reel); err != nil {
		return nil, err
	}
	return reel, nil
}

// ToggleSave flips the reel in the caller's saved set and reports
// whether it is saved afterwards.
func (u *reelsUsecase) ToggleSave(ctx context.Context, userID, reelID uint) (bool, error) {
	found, err := u.reels.Exists(ctx, reelID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrReelNotFound
	}

	return toggle.Flip(ctx,
		func(ctx context.Context) (bool, error) {
			return u.reels.IsSaved(ctx, userID, reelID)
		},
		func(ctx context.Context) error {
			return u.reels.SaveCreate(ctx, &entity.SavedReel{UserID: userID, ReelID: reelID})
		},
		func(ctx context.Context) error {
			return u.reels.SaveDelete(ctx, userID, reelID)
		},
	)
}

// objectName returns a random hex name shared by a reel and its
// thumbnail so the pair is traceable in the bucket.
func objectName() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
