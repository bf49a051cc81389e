package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of UserRepository.
type mockUserRepository struct {
	FindByUserNameFunc func(ctx context.Context, userName string) (*authentity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*authentity.User, error)
	UserNameExistsFunc func(ctx context.Context, userName string) (bool, error)
	CountsFunc         func(ctx context.Context, userID uint) (ProfileCounts, error)
	IsFollowingFunc    func(ctx context.Context, viewerID, userID uint) (bool, error)
	UpdateAccountFunc  func(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error
	UpdateAvatarFunc   func(ctx context.Context, userID uint, avatarURL string) error
	MatchByHandleFunc  func(ctx context.Context, prefix string) ([]authentity.Summary, error)
}

func (m *mockUserRepository) FindByUserName(ctx context.Context, userName string) (*authentity.User, error) {
	if m.FindByUserNameFunc != nil {
		return m.FindByUserNameFunc(ctx, userName)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &authentity.User{ID: id, UserName: "alice"}, nil
}

func (m *mockUserRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	if m.UserNameExistsFunc != nil {
		return m.UserNameExistsFunc(ctx, userName)
	}
	return false, nil
}

func (m *mockUserRepository) Counts(ctx context.Context, userID uint) (ProfileCounts, error) {
	if m.CountsFunc != nil {
		return m.CountsFunc(ctx, userID)
	}
	return ProfileCounts{}, nil
}

func (m *mockUserRepository) IsFollowing(ctx context.Context, viewerID, userID uint) (bool, error) {
	if m.IsFollowingFunc != nil {
		return m.IsFollowingFunc(ctx, viewerID, userID)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateAccount(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error {
	if m.UpdateAccountFunc != nil {
		return m.UpdateAccountFunc(ctx, userID, fullName, userName, email, profileTag)
	}
	return nil
}

func (m *mockUserRepository) MatchByHandlePrefix(ctx context.Context, prefix string) ([]authentity.Summary, error) {
	if m.MatchByHandleFunc != nil {
		return m.MatchByHandleFunc(ctx, prefix)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, userID uint, avatarURL string) error {
	if m.UpdateAvatarFunc != nil {
		return m.UpdateAvatarFunc(ctx, userID, avatarURL)
	}
	return nil
}

// mockMediaStorage records uploads and returns deterministic URLs.
type mockMediaStorage struct {
	keys []string
}

func (m *mockMediaStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	m.keys = append(m.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestUsersUsecase_Profile(t *testing.T) {
	alice := &authentity.User{
		ID: 5, FullName: "Alice", UserName: "alice", ProfileTag: "filmmaker",
		Avatar: "https://cdn.example.com/alice.png",
	}

	t.Run("full payload", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByUserNameFunc: func(ctx context.Context, userName string) (*authentity.User, error) {
				assert.Equal(t, "alice", userName, "handle must be normalized before lookup")
				return alice, nil
			},
			CountsFunc: func(ctx context.Context, userID uint) (ProfileCounts, error) {
				return ProfileCounts{Followers: 3, Following: 2, Reels: 7}, nil
			},
			IsFollowingFunc: func(ctx context.Context, viewerID, userID uint) (bool, error) {
				return true, nil
			},
		}
		uc := NewUsersUsecase(repo, &mockMediaStorage{})

		p, err := uc.Profile(context.Background(), "  Alice ", 9)

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, uint(5), p.ID, "id mismatch")
		assert.Equal(t, int64(3), p.FollowersCount, "followers count mismatch")
		assert.Equal(t, int64(2), p.FollowingCount, "following count mismatch")
		assert.Equal(t, int64(7), p.ReelsCount, "reels count mismatch")
		assert.True(t, p.IsFollowing, "viewer's follow not reflected")
	})

	t.Run("own profile skips the follow lookup", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByUserNameFunc: func(ctx context.Context, userName string) (*authentity.User, error) {
				return alice, nil
			},
			IsFollowingFunc: func(ctx context.Context, viewerID, userID uint) (bool, error) {
				t.Error("no follow lookup may run for the own profile")
				return false, nil
			},
		}
		uc := NewUsersUsecase(repo, &mockMediaStorage{})

		p, err := uc.Profile(context.Background(), "alice", 5)

		require.NoError(t, err, "unexpected error")
		assert.False(t, p.IsFollowing, "own profile cannot be followed")
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewUsersUsecase(&mockUserRepository{}, &mockMediaStorage{})

		_, err := uc.Profile(context.Background(), "nobody", 9)

		assert.ErrorIs(t, err, ErrUserNotFound, "expected user not found error")
	})
}

func TestUsersUsecase_UpdateAccount(t *testing.T) {
	t.Run("normalizes and updates all fields", func(t *testing.T) {
		var gotFullName, gotUserName, gotEmail, gotTag string
		repo := &mockUserRepository{
			UpdateAccountFunc: func(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error {
				gotFullName, gotUserName, gotEmail, gotTag = fullName, userName, email, profileTag
				return nil
			},
		}
		uc := NewUsersUsecase(repo, &mockMediaStorage{})

		_, err := uc.UpdateAccount(context.Background(), 5,
			" Alice A. ", " ALIce ", " Alice@Example.COM ", " filmmaker ")

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, "Alice A.", gotFullName, "full name is not trimmed")
		assert.Equal(t, "alice", gotUserName, "handle must be lowercased")
		assert.Equal(t, "alice@example.com", gotEmail, "email must be lowercased")
		assert.Equal(t, "filmmaker", gotTag, "profile tag is not trimmed")
	})

	t.Run("blank field is rejected", func(t *testing.T) {
		uc := NewUsersUsecase(&mockUserRepository{}, &mockMediaStorage{})

		_, err := uc.UpdateAccount(context.Background(), 5, "Alice", "alice", "   ", "filmmaker")

		assert.ErrorIs(t, err, ErrFieldsRequired, "expected fields required error")
	})

	t.Run("taken handle surfaces as conflict", func(t *testing.T) {
		repo := &mockUserRepository{
			UpdateAccountFunc: func(ctx context.Context, userID uint, fullName, userName, email, profileTag string) error {
				return ErrUserAlreadyExists
			},
		}
		uc := NewUsersUsecase(repo, &mockMediaStorage{})

		_, err := uc.UpdateAccount(context.Background(), 5, "Alice", "bob", "alice@example.com", "filmmaker")

		assert.ErrorIs(t, err, ErrUserAlreadyExists, "expected already exists error")
	})
}

func TestUsersUsecase_CurrentUser(t *testing.T) {
	alice := &authentity.User{ID: 5, UserName: "alice"}
	repo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*authentity.User, error) {
			assert.Equal(t, uint(5), id, "wrong id looked up")
			return alice, nil
		},
	}
	uc := NewUsersUsecase(repo, &mockMediaStorage{})

	user, err := uc.CurrentUser(context.Background(), 5)

	require.NoError(t, err, "unexpected error")
	assert.Equal(t, alice, user, "returned user mismatch")
}

func TestUsersUsecase_SearchByHandle(t *testing.T) {
	t.Run("normalizes the query", func(t *testing.T) {
		repo := &mockUserRepository{
			MatchByHandleFunc: func(ctx context.Context, prefix string) ([]authentity.Summary, error) {
				assert.Equal(t, "ali", prefix, "query must be trimmed and lowercased")
				return []authentity.Summary{{ID: 5, UserName: "alice"}}, nil
			},
		}
		uc := NewUsersUsecase(repo, &mockMediaStorage{})

		matches, err := uc.SearchByHandle(context.Background(), "  ALi ")

		require.NoError(t, err, "unexpected error")
		require.Len(t, matches, 1, "expected one match")
		assert.Equal(t, "alice", matches[0].UserName, "match mismatch")
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		uc := NewUsersUsecase(&mockUserRepository{}, &mockMediaStorage{})

		_, err := uc.SearchByHandle(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrEmptyQuery, "expected empty query error")
	})
}

func TestUsersUsecase_UpdateAvatar(t *testing.T) {
	var gotURL string
	repo := &mockUserRepository{
		UpdateAvatarFunc: func(ctx context.Context, userID uint, avatarURL string) error {
			gotURL = avatarURL
			return nil
		},
	}
	storage := &mockMediaStorage{}
	uc := NewUsersUsecase(repo, storage)

	user, err := uc.UpdateAvatar(context.Background(), 5,
		strings.NewReader("image-bytes"), 11, "image/png")

	require.NoError(t, err, "unexpected error")
	require.Len(t, storage.keys, 1, "expected one upload")
	assert.Equal(t, "avatars/alice", storage.keys[0], "avatar key mismatch")
	assert.Equal(t, "https://cdn.example.com/avatars/alice", gotURL, "stored url mismatch")
	assert.Equal(t, gotURL, user.Avatar, "returned user must carry the new avatar")
}

func TestUsersUsecase_UserNameExists(t *testing.T) {
	repo := &mockUserRepository{
		UserNameExistsFunc: func(ctx context.Context, userName string) (bool, error) {
			return userName == "alice", nil
		},
	}
	uc := NewUsersUsecase(repo, &mockMediaStorage{})

	exists, err := uc.UserNameExists(context.Background(), " ALICE ")
	require.NoError(t, err, "unexpected error")
	assert.True(t, exists, "handle must be normalized before the check")

	_, err = uc.UserNameExists(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrFieldsRequired, "expected fields required error")
}
