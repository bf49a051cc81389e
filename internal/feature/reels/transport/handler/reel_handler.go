// Package handler provides the HTTP handlers for the reels feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/transport/http/dto"
	"github.com/deepak20001/quickflicks-backend/internal/feature/reels/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
	"github.com/deepak20001/quickflicks-backend/internal/shared/identifier"
)

// ReelsUsecase defines the reel operations this handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type ReelsUsecase interface {
	ListByUser(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error)
	ListAll(ctx context.Context, viewerID uint) ([]entity.Annotated, error)
	ListFollowing(ctx context.Context, viewerID uint) ([]entity.Annotated, error)
	ListMostLiked(ctx context.Context, viewerID uint) ([]entity.Annotated, error)
	ListSaved(ctx context.Context, userID, viewerID uint) ([]entity.Annotated, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Reel, error)
	ToggleSave(ctx context.Context, userID, reelID uint) (bool, error)
}

// ReelHandler handles the HTTP requests for reels.
type ReelHandler struct {
	reels ReelsUsecase
}

// NewReelHandler creates a new instance of ReelHandler.
func NewReelHandler(reels ReelsUsecase) *ReelHandler {
	return &ReelHandler{reels: reels}
}

func failReel(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		api.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrReelNotFound),
		errors.Is(err, usecase.ErrCaptionRequired):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
	}
}

// Create handles POST /reels/post-reel. The body is multipart: the
// caption and duration fields plus "reel" and "thumbnail" files.
func (h *ReelHandler) Create(c *gin.Context) {
	video, videoHeader, err := c.Request.FormFile("reel")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel file is required")
		return
	}
	defer video.Close()

	thumb, thumbHeader, err := c.Request.FormFile("thumbnail")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "thumbnail file is required")
		return
	}
	defer thumb.Close()

	duration, err := strconv.ParseFloat(c.PostForm("duration"), 64)
	if err != nil || duration <= 0 {
		api.Fail(c, http.StatusBadRequest, "duration is invalid")
		return
	}

	ownerID := jwtmw.ViewerID(c)
	reel, err := h.reels.Create(c.Request.Context(), usecase.CreateInput{
		OwnerID:  ownerID,
		Caption:  c.PostForm("caption"),
		Duration: duration,

		Video:            video,
		VideoSize:        videoHeader.Size,
		VideoContentType: videoHeader.Header.Get("Content-Type"),

		Thumbnail:            thumb,
		ThumbnailSize:        thumbHeader.Size,
		ThumbnailContentType: thumbHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		slog.Warn("reel creation failed", "error", err, "owner_id", ownerID)
		failReel(c, err)
		return
	}

	slog.Info("reel posted", "reel_id", reel.ID, "owner_id", ownerID)
	api.OK(c, http.StatusCreated, dto.ReelResponse{
		ID:           reel.ID,
		ReelURL:      reel.ReelURL,
		ThumbnailURL: reel.ThumbnailURL,
		Caption:      reel.Caption,
		Duration:     reel.Duration,
		OwnerID:      reel.OwnerID,
	}, "Reel posted successfully")
}

// ListByUser handles GET /reels/get-reels/u/:user_id.
func (h *ReelHandler) ListByUser(c *gin.Context) {
	userID, err := identifier.Parse(c.Param("user_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "user id is invalid")
		return
	}

	reels, err := h.reels.ListByUser(c.Request.Context(), userID, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("user reels listing failed", "error", err, "user_id", userID)
		failReel(c, err)
		return
	}
	api.OK(c, http.StatusOK, reels, "Reels fetched successfully")
}

// ListAll handles GET /reels/get-reels.
func (h *ReelHandler) ListAll(c *gin.Context) {
	h.feed(c, h.reels.ListAll, "Reels fetched successfully")
}

// ListFollowing handles GET /reels/get-following-reels.
func (h *ReelHandler) ListFollowing(c *gin.Context) {
	h.feed(c, h.reels.ListFollowing, "Following reels fetched successfully")
}

// ListMostLiked handles GET /reels/get-most-liked-reels.
func (h *ReelHandler) ListMostLiked(c *gin.Context) {
	h.feed(c, h.reels.ListMostLiked, "Most liked reels fetched successfully")
}

func (h *ReelHandler) feed(
	c *gin.Context,
	fetch func(ctx context.Context, viewerID uint) ([]entity.Annotated, error),
	message string,
) {
	reels, err := fetch(c.Request.Context(), jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("feed listing failed", "error", err)
		failReel(c, err)
		return
	}
	api.OK(c, http.StatusOK, reels, message)
}

// ListSaved handles GET /reels/get-saved-reels/u/:user_id.
func (h *ReelHandler) ListSaved(c *gin.Context) {
	userID, err := identifier.Parse(c.Param("user_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "user id is invalid")
		return
	}

	reels, err := h.reels.ListSaved(c.Request.Context(), userID, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("saved reels listing failed", "error", err, "user_id", userID)
		failReel(c, err)
		return
	}
	api.OK(c, http.StatusOK, reels, "Saved reels fetched successfully")
}

// ToggleSave handles POST /reels/toggle-saved/r/:reel_id.
func (h *ReelHandler) ToggleSave(c *gin.Context) {
	reelID, err := identifier.Parse(c.Param("reel_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel id is invalid")
		return
	}

	userID := jwtmw.ViewerID(c)
	saved, err := h.reels.ToggleSave(c.Request.Context(), userID, reelID)
	if err != nil {
		slog.Warn("save toggle failed", "error", err, "reel_id", reelID, "user_id", userID)
		failReel(c, err)
		return
	}

	api.OK(c, http.StatusOK, dto.ToggleSaveResponse{ReelID: reelID, IsSaved: saved},
		"Save toggled successfully")
}
