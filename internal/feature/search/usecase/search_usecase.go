// Package usecase implements handle-based discovery: reels of matching
// creators ranked by likes, and creators ranked by audience size.
package usecase

import (
	"context"
	"sort"
	"strings"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	reelentity "github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/search/domain/entity"
)

// UserDirectory abstracts handle matching and follower counting.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserDirectory interface {
	// MatchByHandle returns summaries of users whose handle contains
	// the query, case-insensitive. A blank query matches everyone.
	MatchByHandle(ctx context.Context, query string) ([]authentity.Summary, error)

	// FollowerCounts returns follower totals for the given users.
	// Users without followers are absent from the map.
	FollowerCounts(ctx context.Context, userIDs []uint) (map[uint]int64, error)
}

// ReelSource is the slice of the reels repository the search needs.
type ReelSource interface {
	ListAll(ctx context.Context, viewerID uint) ([]reelentity.Annotated, error)
	ListByOwners(ctx context.Context, ownerIDs []uint, viewerID uint) ([]reelentity.Annotated, error)
}

// searchUsecase implements the discovery queries.
type searchUsecase struct {
	users UserDirectory
	reels ReelSource
}

// NewSearchUsecase creates a new instance of searchUsecase.
func NewSearchUsecase(users UserDirectory, reels ReelSource) *searchUsecase {
	return &searchUsecase{users: users, reels: reels}
}

// TopLikedReels returns reels owned by creators whose handle matches
// the query, most liked first. A blank query covers the whole feed.
func (u *searchUsecase) TopLikedReels(ctx context.Context, handleQuery string, viewerID uint) ([]reelentity.Annotated, error) {
	handleQuery = strings.TrimSpace(handleQuery)

	var (
		reels []reelentity.Annotated
		err   error
	)
	if handleQuery == "" {
		reels, err = u.reels.ListAll(ctx, viewerID)
	} else {
		var matched []authentity.Summary
		matched, err = u.users.MatchByHandle(ctx, handleQuery)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return nil, ErrNoUsersMatched
		}
		ids := make([]uint, 0, len(matched))
		for _, m := range matched {
			ids = append(ids, m.ID)
		}
		reels, err = u.reels.ListByOwners(ctx, ids, viewerID)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reels, func(i, j int) bool {
		return reels[i].LikesCount > reels[j].LikesCount
	})
	return reels, nil
}

// TopFollowedCreators returns creators whose handle matches the query,
// largest audience first.
func (u *searchUsecase) TopFollowedCreators(ctx context.Context, handleQuery string) ([]entity.Creator, error) {
	handleQuery = strings.TrimSpace(handleQuery)

	matched, err := u.users.MatchByHandle(ctx, handleQuery)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 && handleQuery != "" {
		return nil, ErrNoUsersMatched
	}

	ids := make([]uint, 0, len(matched))
	for _, m := range matched {
		ids = append(ids, m.ID)
	}
	counts, err := u.users.FollowerCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	creators := make([]entity.Creator, 0, len(matched))
	for _, m := range matched {
		creators = append(creators, entity.Creator{
			ID:             m.ID,
			UserName:       m.UserName,
			Avatar:         m.Avatar,
			FollowersCount: counts[m.ID],
		})
	}
	sort.SliceStable(creators, func(i, j int) bool {
		return creators[i].FollowersCount > creators[j].FollowersCount
	})
	return creators, nil
}
