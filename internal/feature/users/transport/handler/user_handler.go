// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	authentity "github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/transport/http/dto"
	"github.com/deepak20001/quickflicks-backend/internal/feature/users/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
)

// UsersUsecase defines the profile and account operations this handler
// needs. Following Go convention, the interface is defined by the
// consumer (handler), not the provider (usecase).
type UsersUsecase interface {
	Profile(ctx context.Context, userName string, viewerID uint) (*entity.Profile, error)
	CurrentUser(ctx context.Context, userID uint) (*authentity.User, error)
	SearchByHandle(ctx context.Context, query string) ([]authentity.Summary, error)
	UserNameExists(ctx context.Context, userName string) (bool, error)
	UpdateAccount(ctx context.Context, userID uint, fullName, userName, email, profileTag string) (*authentity.User, error)
	UpdateAvatar(ctx context.Context, userID uint, file io.Reader, size int64, contentType string) (*authentity.User, error)
}

// UserHandler handles the HTTP requests for profiles and accounts.
type UserHandler struct {
	users UsersUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UsersUsecase) *UserHandler {
	return &UserHandler{users: users}
}

func toAccountResponse(u *authentity.User) dto.AccountResponse {
	return dto.AccountResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		UserName:   u.UserName,
		Email:      u.Email,
		ProfileTag: u.ProfileTag,
		Avatar:     u.Avatar,
	}
}

// CurrentUser handles GET /users/current-user.
func (h *UserHandler) CurrentUser(c *gin.Context) {
	userID := jwtmw.ViewerID(c)

	user, err := h.users.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("current user fetch failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, toAccountResponse(user), "Current user fetched successfully")
}

// SearchUsers handles GET /users/get-searched-users/:user_name_query.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Param("user_name_query")

	users, err := h.users.SearchByHandle(c.Request.Context(), query)
	if err != nil {
		slog.Warn("user search failed", "error", err, "query", query)
		if errors.Is(err, usecase.ErrEmptyQuery) {
			api.Fail(c, http.StatusBadRequest, "Empty search query")
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, users, "Searched users fetched successfully")
}

// Profile handles GET /users/profile/:user_name.
func (h *UserHandler) Profile(c *gin.Context) {
	userName := c.Param("user_name")

	profile, err := h.users.Profile(c.Request.Context(), userName, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("profile fetch failed", "error", err, "user_name", userName)
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, profile, "Profile fetched successfully")
}

// UserNameExists handles GET /users/exists/u/:user_name.
func (h *UserHandler) UserNameExists(c *gin.Context) {
	userName := c.Param("user_name")

	exists, err := h.users.UserNameExists(c.Request.Context(), userName)
	if err != nil {
		slog.Warn("handle availability check failed", "error", err, "user_name", userName)
		if errors.Is(err, usecase.ErrFieldsRequired) {
			api.Fail(c, http.StatusBadRequest, "user name is required")
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	api.OK(c, http.StatusOK, dto.ExistsResponse{UserName: userName, Exists: exists},
		"Username availability fetched successfully")
}

// UpdateAccount handles POST /users/update-user.
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, usecase.ErrFieldsRequired.Error())
		return
	}

	userID := jwtmw.ViewerID(c)
	user, err := h.users.UpdateAccount(c.Request.Context(), userID,
		req.FullName, req.UserName, req.Email, req.ProfileTag)
	if err != nil {
		slog.Warn("account update failed", "error", err, "user_id", userID)
		switch {
		case errors.Is(err, usecase.ErrFieldsRequired):
			api.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			api.Fail(c, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			api.Fail(c, http.StatusNotFound, err.Error())
		default:
			api.Fail(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	slog.Info("account updated", "user_id", userID)
	api.OK(c, http.StatusOK, toAccountResponse(user), "Account updated successfully")
}

// UpdateAvatar handles POST /users/upload-avatar. The body is
// multipart with an "avatar" file.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer file.Close()

	userID := jwtmw.ViewerID(c)
	user, err := h.users.UpdateAvatar(c.Request.Context(), userID,
		file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Warn("avatar update failed", "error", err, "user_id", userID)
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	slog.Info("avatar updated", "user_id", userID)
	api.OK(c, http.StatusOK, toAccountResponse(user), "Avatar updated successfully")
}
