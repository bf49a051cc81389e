package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
)

// mockCommentRepository is a mock implementation of CommentRepository.
type mockCommentRepository struct {
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.Comment, error)
	CreateFunc       func(ctx context.Context, c *entity.Comment) error
	UpdateBodyFunc   func(ctx context.Context, id uint, body string) error
	DeleteThreadFunc func(ctx context.Context, id uint) error
	ListThreadedFunc func(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error)
	ListRepliesFunc  func(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error)
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrCommentNotFound
}

func (m *mockCommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *mockCommentRepository) UpdateBody(ctx context.Context, id uint, body string) error {
	if m.UpdateBodyFunc != nil {
		return m.UpdateBodyFunc(ctx, id, body)
	}
	return nil
}

func (m *mockCommentRepository) DeleteThread(ctx context.Context, id uint) error {
	if m.DeleteThreadFunc != nil {
		return m.DeleteThreadFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) ListThreaded(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
	if m.ListThreadedFunc != nil {
		return m.ListThreadedFunc(ctx, reelID, viewerID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error) {
	if m.ListRepliesFunc != nil {
		return m.ListRepliesFunc(ctx, parentID, viewerID)
	}
	return nil, nil
}

// mockReelFinder is a mock implementation of ReelFinder.
type mockReelFinder struct {
	ExistsFunc func(ctx context.Context, reelID uint) (bool, error)
}

func (m *mockReelFinder) Exists(ctx context.Context, reelID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, reelID)
	}
	return true, nil
}

func TestCommentsUsecase_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		var created *entity.Comment
		repo := &mockCommentRepository{
			CreateFunc: func(ctx context.Context, c *entity.Comment) error {
				c.ID = 42
				created = c
				return nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		id, err := uc.Create(context.Background(), 7, 3, "  nice reel  ")

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, uint(42), id, "returned id mismatch")
		require.NotNil(t, created, "comment was not persisted")
		assert.Equal(t, "nice reel", created.Body, "body is not trimmed")
		assert.Equal(t, uint(7), created.ReelID, "reel id mismatch")
		assert.Equal(t, uint(3), created.CommentedBy, "author mismatch")
		assert.Nil(t, created.ParentCommentID, "top-level comment has a parent")
	})

	t.Run("whitespace body is rejected", func(t *testing.T) {
		uc := NewCommentsUsecase(&mockCommentRepository{}, &mockReelFinder{})

		_, err := uc.Create(context.Background(), 7, 3, "   \t  ")

		assert.ErrorIs(t, err, ErrEmptyBody, "expected empty body error")
	})

	t.Run("missing reel", func(t *testing.T) {
		finder := &mockReelFinder{
			ExistsFunc: func(ctx context.Context, reelID uint) (bool, error) { return false, nil },
		}
		uc := NewCommentsUsecase(&mockCommentRepository{}, finder)

		_, err := uc.Create(context.Background(), 99, 3, "hello")

		assert.ErrorIs(t, err, ErrReelNotFound, "expected reel not found error")
	})
}

func TestCommentsUsecase_Reply(t *testing.T) {
	parent := func(id, reelID uint, parentID *uint) *entity.Comment {
		return &entity.Comment{ID: id, ReelID: reelID, ParentCommentID: parentID, Body: "parent"}
	}

	t.Run("successful reply", func(t *testing.T) {
		var created *entity.Comment
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return parent(10, 7, nil), nil
			},
			CreateFunc: func(ctx context.Context, c *entity.Comment) error {
				c.ID = 11
				created = c
				return nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		id, err := uc.Reply(context.Background(), 7, 10, 3, "agreed")

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, uint(11), id, "returned id mismatch")
		require.NotNil(t, created.ParentCommentID, "reply has no parent")
		assert.Equal(t, uint(10), *created.ParentCommentID, "parent id mismatch")
	})

	t.Run("nonexistent parent", func(t *testing.T) {
		uc := NewCommentsUsecase(&mockCommentRepository{}, &mockReelFinder{})

		_, err := uc.Reply(context.Background(), 7, 999, 3, "agreed")

		assert.ErrorIs(t, err, ErrParentNotFound, "expected parent not found error")
	})

	t.Run("parent belongs to another reel", func(t *testing.T) {
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return parent(10, 8, nil), nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		_, err := uc.Reply(context.Background(), 7, 10, 3, "agreed")

		assert.ErrorIs(t, err, ErrParentNotFound, "expected parent not found error")
	})

	t.Run("parent is itself a reply", func(t *testing.T) {
		grand := uint(5)
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return parent(10, 7, &grand), nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		_, err := uc.Reply(context.Background(), 7, 10, 3, "agreed")

		assert.ErrorIs(t, err, ErrParentNotFound, "threading deeper than one level was allowed")
	})

	t.Run("whitespace body is rejected before lookups", func(t *testing.T) {
		finder := &mockReelFinder{
			ExistsFunc: func(ctx context.Context, reelID uint) (bool, error) {
				t.Error("reel lookup should not run for an empty body")
				return true, nil
			},
		}
		uc := NewCommentsUsecase(&mockCommentRepository{}, finder)

		_, err := uc.Reply(context.Background(), 7, 10, 3, "   ")

		assert.ErrorIs(t, err, ErrEmptyBody, "expected empty body error")
	})
}

func TestCommentsUsecase_Edit(t *testing.T) {
	t.Run("successful edit", func(t *testing.T) {
		var gotBody string
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return &entity.Comment{ID: id, ReelID: 7, Body: "old"}, nil
			},
			UpdateBodyFunc: func(ctx context.Context, id uint, body string) error {
				gotBody = body
				return nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		id, err := uc.Edit(context.Background(), 10, " new text ")

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, uint(10), id, "returned id mismatch")
		assert.Equal(t, "new text", gotBody, "body is not trimmed")
	})

	t.Run("missing comment", func(t *testing.T) {
		uc := NewCommentsUsecase(&mockCommentRepository{}, &mockReelFinder{})

		_, err := uc.Edit(context.Background(), 10, "new text")

		assert.ErrorIs(t, err, ErrCommentNotFound, "expected comment not found error")
	})
}

func TestCommentsUsecase_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		deleted := uint(0)
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return &entity.Comment{ID: id, ReelID: 7}, nil
			},
			DeleteThreadFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		id, err := uc.Delete(context.Background(), 10)

		require.NoError(t, err, "unexpected error")
		assert.Equal(t, uint(10), id, "returned id mismatch")
		assert.Equal(t, uint(10), deleted, "wrong comment deleted")
	})

	t.Run("missing comment", func(t *testing.T) {
		uc := NewCommentsUsecase(&mockCommentRepository{}, &mockReelFinder{})

		_, err := uc.Delete(context.Background(), 10)

		assert.ErrorIs(t, err, ErrCommentNotFound, "expected comment not found error")
	})
}

func TestCommentsUsecase_ListReplies(t *testing.T) {
	t.Run("repository failure propagates", func(t *testing.T) {
		boom := errors.New("database error")
		repo := &mockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
				return &entity.Comment{ID: id, ReelID: 7}, nil
			},
			ListRepliesFunc: func(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error) {
				return nil, boom
			},
		}
		uc := NewCommentsUsecase(repo, &mockReelFinder{})

		_, err := uc.ListReplies(context.Background(), 10, 3)

		assert.ErrorIs(t, err, boom, "repository error was swallowed")
	})

	t.Run("missing parent", func(t *testing.T) {
		uc := NewCommentsUsecase(&mockCommentRepository{}, &mockReelFinder{})

		_, err := uc.ListReplies(context.Background(), 10, 3)

		assert.ErrorIs(t, err, ErrParentNotFound, "expected parent not found error")
	})
}
