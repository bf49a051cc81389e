package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
)

// mockCommentsUsecase is a mock implementation of the CommentsUsecase
// interface.
type mockCommentsUsecase struct {
	ListForReelFunc func(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error)
	ListRepliesFunc func(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error)
	CreateFunc      func(ctx context.Context, reelID, authorID uint, body string) (uint, error)
	ReplyFunc       func(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error)
	EditFunc        func(ctx context.Context, commentID uint, body string) (uint, error)
	DeleteFunc      func(ctx context.Context, commentID uint) (uint, error)
}

func (m *mockCommentsUsecase) ListForReel(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
	if m.ListForReelFunc != nil {
		return m.ListForReelFunc(ctx, reelID, viewerID)
	}
	return nil, nil
}

func (m *mockCommentsUsecase) ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error) {
	if m.ListRepliesFunc != nil {
		return m.ListRepliesFunc(ctx, parentID, viewerID)
	}
	return nil, nil
}

func (m *mockCommentsUsecase) Create(ctx context.Context, reelID, authorID uint, body string) (uint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reelID, authorID, body)
	}
	return 1, nil
}

func (m *mockCommentsUsecase) Reply(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, reelID, parentID, authorID, body)
	}
	return 1, nil
}

func (m *mockCommentsUsecase) Edit(ctx context.Context, commentID uint, body string) (uint, error) {
	if m.EditFunc != nil {
		return m.EditFunc(ctx, commentID, body)
	}
	return commentID, nil
}

func (m *mockCommentsUsecase) Delete(ctx context.Context, commentID uint) (uint, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return commentID, nil
}

// newRouter registers the comment routes the way the application router
// does, with a stub auth middleware injecting the viewer id.
func newRouter(uc CommentsUsecase, viewerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if viewerID != 0 {
			c.Set(jwtmw.ContextUserID, viewerID)
		}
		c.Next()
	})
	r.GET("/comments/:reel_id", h.ListForReel)
	r.GET("/comments/r/:parent_comment_id", h.ListReplies)
	r.POST("/comments/c/:reel_id", h.Create)
	r.POST("/comments/r/:reel_id", h.Reply)
	r.PATCH("/comments/c/:comment_id", h.Edit)
	r.DELETE("/comments/c/:comment_id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "failed to encode request body")
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err, "failed to build request")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_ListForReel(t *testing.T) {
	t.Run("forwards reel and viewer ids", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			ListForReelFunc: func(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
				assert.Equal(t, uint(7), reelID, "reel id not forwarded")
				assert.Equal(t, uint(3), viewerID, "viewer id not forwarded")
				return []entity.Threaded{}, nil
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodGet, "/comments/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid reel id", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockCommentsUsecase{}, 3), http.MethodGet, "/comments/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing reel", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			ListForReelFunc: func(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error) {
				return nil, usecase.ErrReelNotFound
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodGet, "/comments/7", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			CreateFunc: func(ctx context.Context, reelID, authorID uint, body string) (uint, error) {
				assert.Equal(t, "nice reel", body, "body not forwarded")
				return 42, nil
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodPost, "/comments/c/7", gin.H{"comment": "nice reel"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"comment_id":42`)
	})

	t.Run("missing body field", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockCommentsUsecase{}, 3), http.MethodPost, "/comments/c/7", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace body", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			CreateFunc: func(ctx context.Context, reelID, authorID uint, body string) (uint, error) {
				return 0, usecase.ErrEmptyBody
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodPost, "/comments/c/7", gin.H{"comment": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_Reply(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			ReplyFunc: func(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error) {
				assert.Equal(t, uint(7), reelID, "reel id not forwarded")
				assert.Equal(t, uint(9), parentID, "parent id not forwarded")
				return 43, nil
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodPost, "/comments/r/7",
			gin.H{"comment": "agreed", "parent_comment_id": "9"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"comment_id":43`)
	})

	t.Run("invalid parent id", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockCommentsUsecase{}, 3), http.MethodPost, "/comments/r/7",
			gin.H{"comment": "agreed", "parent_comment_id": "abc"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("parent on another reel", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			ReplyFunc: func(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error) {
				return 0, usecase.ErrParentNotFound
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodPost, "/comments/r/7",
			gin.H{"comment": "agreed", "parent_comment_id": "9"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_EditDelete(t *testing.T) {
	t.Run("edit", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			EditFunc: func(ctx context.Context, commentID uint, body string) (uint, error) {
				assert.Equal(t, uint(9), commentID, "comment id not forwarded")
				assert.Equal(t, "fixed typo", body, "body not forwarded")
				return 9, nil
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodPatch, "/comments/c/9", gin.H{"comment": "fixed typo"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, newRouter(&mockCommentsUsecase{}, 3), http.MethodDelete, "/comments/c/9", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"comment_id":9`)
	})

	t.Run("delete unknown comment", func(t *testing.T) {
		uc := &mockCommentsUsecase{
			DeleteFunc: func(ctx context.Context, commentID uint) (uint, error) {
				return 0, usecase.ErrCommentNotFound
			},
		}
		w := doJSON(t, newRouter(uc, 3), http.MethodDelete, "/comments/c/9999", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
