// Package usecase implements the follow/unfollow toggle and the
// follower/following listings.
package usecase

import (
	"context"

	"github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/shared/toggle"
)

// RelationshipRepository abstracts follow-edge persistence. Following
// Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type RelationshipRepository interface {
	// Exists reports whether follower currently follows following.
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)

	// Create inserts a follow edge; a uniqueness violation surfaces as
	// toggle.ErrDuplicate.
	Create(ctx context.Context, rel *entity.Relationship) error

	// Delete removes the follow edge if present.
	Delete(ctx context.Context, followerID, followingID uint) error

	// ListFollowers returns the users following userID, each annotated
	// with whether the viewer follows them.
	ListFollowers(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error)

	// ListFollowing returns the users userID follows, each annotated
	// with whether the viewer follows them.
	ListFollowing(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error)
}

// UserFinder checks user existence.
type UserFinder interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// relationshipsUsecase implements the follow graph operations.
type relationshipsUsecase struct {
	relationships RelationshipRepository
	users         UserFinder
}

// NewRelationshipsUsecase creates a new instance of relationshipsUsecase.
func NewRelationshipsUsecase(relationships RelationshipRepository, users UserFinder) *relationshipsUsecase {
	return &relationshipsUsecase{relationships: relationships, users: users}
}

func (u *relationshipsUsecase) requireUser(ctx context.Context, userID uint) error {
	found, err := u.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// ToggleFollow flips the viewer's follow edge towards userID and
// reports whether the viewer follows them afterwards. Following
// yourself is rejected before any storage access.
func (u *relationshipsUsecase) ToggleFollow(ctx context.Context, viewerID, userID uint) (bool, error) {
	if viewerID == userID {
		return false, ErrSelfFollow
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return false, err
	}

	return toggle.Flip(ctx,
		func(ctx context.Context) (bool, error) {
			return u.relationships.Exists(ctx, viewerID, userID)
		},
		func(ctx context.Context) error {
			return u.relationships.Create(ctx, &entity.Relationship{
				FollowerID:  viewerID,
				FollowingID: userID,
			})
		},
		func(ctx context.Context) error {
			return u.relationships.Delete(ctx, viewerID, userID)
		},
	)
}

// Followers lists the users following userID.
func (u *relationshipsUsecase) Followers(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.relationships.ListFollowers(ctx, userID, viewerID)
}

// Following lists the users userID follows.
func (u *relationshipsUsecase) Following(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.relationships.ListFollowing(ctx, userID, viewerID)
}
