package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	reelentity "github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	relentity "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&authentity.User{}, &reelentity.Reel{}, &relentity.Relationship{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedUser(t *testing.T, db *gorm.DB, userName string) *authentity.User {
	t.Helper()
	u := &authentity.User{
		FullName: userName,
		UserName: userName,
		Email:    userName + "@example.com",
		Avatar:   "https://cdn.example.com/" + userName + ".png",
		Password: "hashed_password",
	}
	require.NoError(t, db.Create(u).Error, "failed to seed user")
	return u
}

func TestUserMySQL_FindByUserName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)

	seedUser(t, db, "alice")

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByUserName(context.Background(), "alice")
		require.NoError(t, err, "unexpected error")
		assert.Equal(t, "alice", got.UserName, "handle mismatch")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByUserName(context.Background(), "nobody")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "expected user not found error")
	})
}

func TestUserMySQL_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	// bob and carol follow alice; alice follows bob.
	for _, follower := range []uint{bob.ID, carol.ID} {
		require.NoError(t, db.Create(&relentity.Relationship{
			FollowerID: follower, FollowingID: alice.ID,
		}).Error)
	}
	require.NoError(t, db.Create(&relentity.Relationship{
		FollowerID: alice.ID, FollowingID: bob.ID,
	}).Error)

	require.NoError(t, db.Create(&reelentity.Reel{
		ReelURL: "u", ThumbnailURL: "t", Caption: "c", Duration: 1, OwnerID: alice.ID,
	}).Error)

	counts, err := repo.Counts(ctx, alice.ID)
	require.NoError(t, err, "unexpected error")
	assert.Equal(t, int64(2), counts.Followers, "followers count mismatch")
	assert.Equal(t, int64(1), counts.Following, "following count mismatch")
	assert.Equal(t, int64(1), counts.Reels, "reels count mismatch")

	following, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, following, "bob follows alice")

	following, err = repo.IsFollowing(ctx, carol.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following, "carol does not follow bob")
}

func TestUserMySQL_Updates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	require.NoError(t,
		repo.UpdateAccount(ctx, alice.ID, "Alice A.", "alice2", "alice2@example.com", "filmmaker"),
		"unexpected error")
	require.NoError(t, repo.UpdateAvatar(ctx, alice.ID, "https://cdn.example.com/new.png"),
		"unexpected error")

	got, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", got.FullName, "full name not updated")
	assert.Equal(t, "alice2", got.UserName, "handle not updated")
	assert.Equal(t, "alice2@example.com", got.Email, "email not updated")
	assert.Equal(t, "filmmaker", got.ProfileTag, "profile tag not updated")
	assert.Equal(t, "https://cdn.example.com/new.png", got.Avatar, "avatar not updated")

	assert.ErrorIs(t,
		repo.UpdateAccount(ctx, alice.ID, "Alice A.", "bob", "alice2@example.com", "filmmaker"),
		usecase.ErrUserAlreadyExists, "expected already exists error for a taken handle")
	assert.ErrorIs(t,
		repo.UpdateAccount(ctx, alice.ID, "Alice A.", "alice2", "bob@example.com", "filmmaker"),
		usecase.ErrUserAlreadyExists, "expected already exists error for a taken email")

	assert.ErrorIs(t, repo.UpdateAccount(ctx, 9999, "x", "y", "y@example.com", "z"),
		usecase.ErrUserNotFound, "expected user not found error")
	assert.ErrorIs(t, repo.UpdateAvatar(ctx, 9999, "x"), usecase.ErrUserNotFound,
		"expected user not found error")
}

func TestUserMySQL_MatchByHandlePrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	seedUser(t, db, "alina")
	seedUser(t, db, "bob")

	matches, err := repo.MatchByHandlePrefix(ctx, "ali")
	require.NoError(t, err, "unexpected error")
	require.Len(t, matches, 2, "expected both handles with the prefix")
	assert.Equal(t, "alice", matches[0].UserName, "handle mismatch")
	assert.Equal(t, "alina", matches[1].UserName, "handle mismatch")
	assert.NotZero(t, matches[0].ID, "summary must carry the id")
	assert.Contains(t, matches[0].Avatar, "alice", "summary must carry the avatar")

	matches, err = repo.MatchByHandlePrefix(ctx, "zz")
	require.NoError(t, err, "unexpected error")
	assert.Empty(t, matches, "expected no matches")
}

func TestUserMySQL_UserNameExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)

	seedUser(t, db, "alice")

	exists, err := repo.UserNameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists, "taken handle reported free")

	exists, err = repo.UserNameExists(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, exists, "free handle reported taken")
}
