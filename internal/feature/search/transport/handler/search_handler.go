// Package handler provides the HTTP handlers for the search feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	reelentity "github.com/deepak20001/quickflicks-backend/internal/feature/reels/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/search/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/search/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
)

// SearchUsecase defines the discovery queries this handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type SearchUsecase interface {
	TopLikedReels(ctx context.Context, handleQuery string, viewerID uint) ([]reelentity.Annotated, error)
	TopFollowedCreators(ctx context.Context, handleQuery string) ([]entity.Creator, error)
}

// SearchHandler handles the HTTP requests for discovery.
type SearchHandler struct {
	search SearchUsecase
}

// NewSearchHandler creates a new instance of SearchHandler.
func NewSearchHandler(search SearchUsecase) *SearchHandler {
	return &SearchHandler{search: search}
}

// TopLikedReels handles GET /search/top-liked-reels?user_name=...
func (h *SearchHandler) TopLikedReels(c *gin.Context) {
	query := c.Query("user_name")

	reels, err := h.search.TopLikedReels(c.Request.Context(), query, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("reel search failed", "error", err, "query", query)
		if errors.Is(err, usecase.ErrNoUsersMatched) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, reels, "Top liked reels fetched successfully")
}

// TopFollowedCreators handles GET /search/top-followed-creators?user_name=...
func (h *SearchHandler) TopFollowedCreators(c *gin.Context) {
	query := c.Query("user_name")

	creators, err := h.search.TopFollowedCreators(c.Request.Context(), query)
	if err != nil {
		slog.Warn("creator search failed", "error", err, "query", query)
		if errors.Is(err, usecase.ErrNoUsersMatched) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, creators, "Top followed creators fetched successfully")
}
