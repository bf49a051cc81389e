// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	"github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/auth/transport/http/dto"
	"github.com/deepak20001/quickflicks-backend/internal/feature/auth/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations this handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, *usecase.TokenPair, error)
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*usecase.TokenPair, error)
	Logout(ctx context.Context, userID uint, refreshToken string) error
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

// AuthHandler handles the HTTP requests for authentication.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		UserName:   u.UserName,
		Email:      u.Email,
		ProfileTag: u.ProfileTag,
		Avatar:     u.Avatar,
	}
}

// Register handles POST /users/register. The body is multipart: the
// text fields plus an "avatar" file.
func (h *AuthHandler) Register(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer file.Close()

	in := usecase.RegisterInput{
		FullName:          c.PostForm("full_name"),
		UserName:          c.PostForm("user_name"),
		Email:             c.PostForm("email"),
		ProfileTag:        c.PostForm("profile_tag"),
		Password:          c.PostForm("password"),
		Avatar:            file,
		AvatarSize:        header.Size,
		AvatarContentType: header.Header.Get("Content-Type"),
	}

	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		slog.Warn("registration failed", "error", err, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			api.Fail(c, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrFieldsRequired):
			api.Fail(c, http.StatusBadRequest, err.Error())
		default:
			api.Fail(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	slog.Info("user registered", "user_name", user.UserName, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusCreated, toUserResponse(user), "user registered successfully")
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	user, pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// Generic message regardless of cause, to prevent enumeration.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusUnauthorized, usecase.ErrInvalidCredentials.Error())
		return
	}

	slog.Info("user login successful", "user_name", user.UserName, "remote_addr", c.ClientIP())
	api.OK(c, http.StatusOK, dto.LoginResponse{
		User:         toUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "User logged in successfully")
}

// Refresh handles POST /users/refresh-token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusUnauthorized, "Unauthorized request")
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	api.OK(c, http.StatusOK, dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

// Logout handles GET /users/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	userID := jwtmw.ViewerID(c)
	if err := h.auth.Logout(c.Request.Context(), userID, req.RefreshToken); err != nil {
		slog.Warn("logout failed", "error", err, "user_id", userID)
		api.Fail(c, http.StatusBadRequest, "logout failed")
		return
	}

	api.OK(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// ChangePassword handles POST /users/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "Old password and new password are required")
		return
	}

	userID := jwtmw.ViewerID(c)
	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		slog.Warn("password change failed", "error", err, "user_id", userID)
		switch {
		case errors.Is(err, usecase.ErrWrongPassword),
			errors.Is(err, usecase.ErrSamePassword),
			errors.Is(err, usecase.ErrFieldsRequired):
			api.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			api.Fail(c, http.StatusNotFound, err.Error())
		default:
			api.Fail(c, http.StatusInternalServerError, "could not change password")
		}
		return
	}

	api.OK(c, http.StatusOK, gin.H{}, "Password changed successfully")
}
