// Package handler provides the HTTP handlers for the relationships
// feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	"github.com/deepak20001/quickflicks-backend/internal/feature/relationships/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/relationships/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
	"github.com/deepak20001/quickflicks-backend/internal/shared/identifier"
)

// RelationshipsUsecase defines the follow graph operations this
// handler needs. Following Go convention, the interface is defined by
// the consumer (handler), not the provider (usecase).
type RelationshipsUsecase interface {
	ToggleFollow(ctx context.Context, viewerID, userID uint) (bool, error)
	Followers(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error)
	Following(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error)
}

// RelationshipHandler handles the HTTP requests for the follow graph.
type RelationshipHandler struct {
	relationships RelationshipsUsecase
}

// NewRelationshipHandler creates a new instance of RelationshipHandler.
func NewRelationshipHandler(relationships RelationshipsUsecase) *RelationshipHandler {
	return &RelationshipHandler{relationships: relationships}
}

type toggleFollowResponse struct {
	UserID     uint `json:"user_id"`
	IsFollowed bool `json:"is_followed"`
}

// ToggleFollow handles POST /relationships/toggle/u/:user_id.
func (h *RelationshipHandler) ToggleFollow(c *gin.Context) {
	userID, err := identifier.Parse(c.Param("user_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "user id is invalid")
		return
	}

	viewerID := jwtmw.ViewerID(c)
	active, err := h.relationships.ToggleFollow(c.Request.Context(), viewerID, userID)
	if err != nil {
		slog.Warn("follow toggle failed", "error", err, "user_id", userID, "viewer_id", viewerID)
		switch {
		case errors.Is(err, usecase.ErrSelfFollow):
			api.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			api.Fail(c, http.StatusNotFound, err.Error())
		default:
			api.Fail(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	api.OK(c, http.StatusOK, toggleFollowResponse{UserID: userID, IsFollowed: active},
		"Follow toggled successfully")
}

// Followers handles GET /relationships/followers/u/:user_id.
func (h *RelationshipHandler) Followers(c *gin.Context) {
	h.list(c, h.relationships.Followers, "Followers fetched successfully")
}

// Following handles GET /relationships/followings/u/:user_id.
func (h *RelationshipHandler) Following(c *gin.Context) {
	h.list(c, h.relationships.Following, "Followings fetched successfully")
}

func (h *RelationshipHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, userID, viewerID uint) ([]entity.ListItem, error),
	message string,
) {
	userID, err := identifier.Parse(c.Param("user_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "user id is invalid")
		return
	}

	items, err := fetch(c.Request.Context(), userID, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("follow listing failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	api.OK(c, http.StatusOK, items, message)
}
