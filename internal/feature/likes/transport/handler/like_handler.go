// Package handler provides the HTTP handlers for the likes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	"github.com/deepak20001/quickflicks-backend/internal/feature/likes/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
	"github.com/deepak20001/quickflicks-backend/internal/shared/identifier"
)

// LikesUsecase defines the like toggles this handler needs. Following
// Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type LikesUsecase interface {
	ToggleReel(ctx context.Context, viewerID, reelID uint) (bool, error)
	ToggleComment(ctx context.Context, viewerID, commentID uint) (bool, error)
}

// LikeHandler handles the HTTP requests for like toggles.
type LikeHandler struct {
	likes LikesUsecase
}

// NewLikeHandler creates a new instance of LikeHandler.
func NewLikeHandler(likes LikesUsecase) *LikeHandler {
	return &LikeHandler{likes: likes}
}

type toggleResponse struct {
	IsLiked bool `json:"is_liked"`
}

// ToggleReel handles POST /likes/toggle/:reel_id.
func (h *LikeHandler) ToggleReel(c *gin.Context) {
	reelID, err := identifier.Parse(c.Param("reel_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel id is invalid")
		return
	}

	viewerID := jwtmw.ViewerID(c)
	active, err := h.likes.ToggleReel(c.Request.Context(), viewerID, reelID)
	if err != nil {
		slog.Warn("reel like toggle failed", "error", err, "reel_id", reelID, "viewer_id", viewerID)
		if errors.Is(err, usecase.ErrReelNotFound) {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	api.OK(c, http.StatusOK, toggleResponse{IsLiked: active}, "Like toggled successfully")
}

// ToggleComment handles POST /likes/toggle/c/:comment_id.
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	commentID, err := identifier.Parse(c.Param("comment_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "comment id is invalid")
		return
	}

	viewerID := jwtmw.ViewerID(c)
	active, err := h.likes.ToggleComment(c.Request.Context(), viewerID, commentID)
	if err != nil {
		slog.Warn("comment like toggle failed", "error", err, "comment_id", commentID, "viewer_id", viewerID)
		if errors.Is(err, usecase.ErrCommentNotFound) {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	api.OK(c, http.StatusOK, toggleResponse{IsLiked: active}, "Like toggled successfully")
}
