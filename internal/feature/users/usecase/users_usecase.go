// Package usecase implements profile pages, handle availability and
// account updates.
package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/domain/entity"
)

// ProfileCounts are the aggregate totals shown on a profile page.
type ProfileCounts struct {
	Followers int64
	Following int64
	Reels     int64
}

// UserRepository abstracts user reads and account updates. Following
// Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindByUserName retrieves a user by handle; ErrUserNotFound when
	// absent.
	FindByUserName(ctx context.Context, userName string) (*authentity.User, error)

	// FindByID retrieves a user by id; ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*authentity.User, error)

	// UserNameExists reports whether the handle is taken.
	UserNameExists(ctx context.Context, userName string) (bool, error)

	// Counts returns the profile aggregates for a user.
	Counts(ctx context.Context, userID uint) (ProfileCounts, error)

	// IsFollowing reports whether viewerID follows userID.
	IsFollowing(ctx context.Context, viewerID, userID uint) (bool, error)

	// MatchByHandlePrefix lists user summaries whose handle starts with
	// the prefix.
	MatchByHandlePrefix(ctx context.Context, prefix string) ([]authentity.Summary, error)

	// UpdateAccount rewrites the account fields. It returns
	// ErrUserAlreadyExists when the new handle or email is taken.
	UpdateAccount(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error

	// UpdateAvatar rewrites the avatar URL.
	UpdateAvatar(ctx context.Context, userID uint, avatarURL string) error
}

// MediaStorage uploads media objects and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// usersUsecase implements the users service.
type usersUsecase struct {
	users   UserRepository
	storage MediaStorage
}

// NewUsersUsecase creates a new instance of usersUsecase.
func NewUsersUsecase(users UserRepository, storage MediaStorage) *usersUsecase {
	return &usersUsecase{users: users, storage: storage}
}

// Profile returns the profile page payload for a handle.
func (u *usersUsecase) Profile(ctx context.Context, userName string, viewerID uint) (*entity.Profile, error) {
	userName = strings.ToLower(strings.TrimSpace(userName))
	if userName == "" {
		return nil, ErrUserNotFound
	}

	user, err := u.users.FindByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	counts, err := u.users.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != user.ID {
		isFollowing, err = u.users.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &entity.Profile{
		ID:             user.ID,
		FullName:       user.FullName,
		UserName:       user.UserName,
		ProfileTag:     user.ProfileTag,
		Avatar:         user.Avatar,
		FollowersCount: counts.Followers,
		FollowingCount: counts.Following,
		ReelsCount:     counts.Reels,
		IsFollowing:    isFollowing,
	}, nil
}

// UserNameExists reports whether the handle is taken.
func (u *usersUsecase) UserNameExists(ctx context.Context, userName string) (bool, error) {
	userName = strings.ToLower(strings.TrimSpace(userName))
	if userName == "" {
		return false, ErrFieldsRequired
	}
	return u.users.UserNameExists(ctx, userName)
}

// CurrentUser returns the authenticated user's account.
func (u *usersUsecase) CurrentUser(ctx context.Context, userID uint) (*authentity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// SearchByHandle lists user summaries whose handle starts with the
// query, case-insensitively. Handles are stored lowercase.
func (u *usersUsecase) SearchByHandle(ctx context.Context, query string) ([]authentity.Summary, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return u.users.MatchByHandlePrefix(ctx, query)
}

// UpdateAccount rewrites the account fields. The handle and email are
// normalized the same way registration normalizes them.
func (u *usersUsecase) UpdateAccount(ctx context.Context, userID uint, fullName, userName, email, profileTag string) (*authentity.User, error) {
	fullName = strings.TrimSpace(fullName)
	userName = strings.ToLower(strings.TrimSpace(userName))
	email = strings.ToLower(strings.TrimSpace(email))
	profileTag = strings.TrimSpace(profileTag)
	if fullName == "" || userName == "" || email == "" || profileTag == "" {
		return nil, ErrFieldsRequired
	}

	if err := u.users.UpdateAccount(ctx, userID, fullName, userName, email, profileTag); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, userID)
}

// UpdateAvatar uploads the new avatar and rewrites the URL.
func (u *usersUsecase) UpdateAvatar(ctx context.Context, userID uint, file io.Reader, size int64, contentType string) (*authentity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := u.storage.Upload(ctx, "avatars/"+user.UserName, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	if err := u.users.UpdateAvatar(ctx, userID, url); err != nil {
		return nil, err
	}
	user.Avatar = url
	return user, nil
}
