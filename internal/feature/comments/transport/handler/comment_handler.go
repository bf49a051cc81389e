// Package handler provides the HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/domain/entity"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/transport/http/dto"
	"github.com/deepak20001/quickflicks-backend/internal/feature/comments/usecase"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
	"github.com/deepak20001/quickflicks-backend/internal/shared/identifier"
)

// CommentsUsecase defines the comment thread operations this handler
// needs. Following Go convention, the interface is defined by the
// consumer (handler), not the provider (usecase).
type CommentsUsecase interface {
	ListForReel(ctx context.Context, reelID, viewerID uint) ([]entity.Threaded, error)
	ListReplies(ctx context.Context, parentID, viewerID uint) ([]entity.Threaded, error)
	Create(ctx context.Context, reelID, authorID uint, body string) (uint, error)
	Reply(ctx context.Context, reelID, parentID, authorID uint, body string) (uint, error)
	Edit(ctx context.Context, commentID uint, body string) (uint, error)
	Delete(ctx context.Context, commentID uint) (uint, error)
}

// CommentHandler handles the HTTP requests for comment threads.
type CommentHandler struct {
	comments CommentsUsecase
}

// NewCommentHandler creates a new instance of CommentHandler.
func NewCommentHandler(comments CommentsUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func failComment(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyBody),
		errors.Is(err, usecase.ErrReelNotFound),
		errors.Is(err, usecase.ErrParentNotFound),
		errors.Is(err, usecase.ErrCommentNotFound):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		api.Fail(c, http.StatusInternalServerError, "something went wrong")
	}
}

// ListForReel handles GET /comments/:reel_id.
func (h *CommentHandler) ListForReel(c *gin.Context) {
	reelID, err := identifier.Parse(c.Param("reel_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel id is invalid")
		return
	}

	comments, err := h.comments.ListForReel(c.Request.Context(), reelID, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("list comments failed", "error", err, "reel_id", reelID)
		failComment(c, err)
		return
	}
	api.OK(c, http.StatusOK, comments, "Comments fetched successfully")
}

// ListReplies handles GET /comments/r/:parent_comment_id.
func (h *CommentHandler) ListReplies(c *gin.Context) {
	parentID, err := identifier.Parse(c.Param("parent_comment_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "comment id is invalid")
		return
	}

	replies, err := h.comments.ListReplies(c.Request.Context(), parentID, jwtmw.ViewerID(c))
	if err != nil {
		slog.Warn("list replies failed", "error", err, "parent_comment_id", parentID)
		failComment(c, err)
		return
	}
	api.OK(c, http.StatusOK, replies, "Replies fetched successfully")
}

// Create handles POST /comments/c/:reel_id.
func (h *CommentHandler) Create(c *gin.Context) {
	reelID, err := identifier.Parse(c.Param("reel_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel id is invalid")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, usecase.ErrEmptyBody.Error())
		return
	}

	id, err := h.comments.Create(c.Request.Context(), reelID, jwtmw.ViewerID(c), req.Comment)
	if err != nil {
		slog.Warn("create comment failed", "error", err, "reel_id", reelID)
		failComment(c, err)
		return
	}

	slog.Info("comment created", "comment_id", id, "reel_id", reelID)
	api.OK(c, http.StatusCreated, dto.CommentIDResponse{CommentID: id}, "Comment created successfully")
}

// Reply handles POST /comments/r/:reel_id.
func (h *CommentHandler) Reply(c *gin.Context) {
	reelID, err := identifier.Parse(c.Param("reel_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "reel id is invalid")
		return
	}

	var req dto.ReplyCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "comment and parent_comment_id are required")
		return
	}
	parentID, err := identifier.Parse(req.ParentCommentID)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "parent comment id is invalid")
		return
	}

	id, err := h.comments.Reply(c.Request.Context(), reelID, parentID, jwtmw.ViewerID(c), req.Comment)
	if err != nil {
		slog.Warn("create reply failed", "error", err, "reel_id", reelID, "parent_comment_id", parentID)
		failComment(c, err)
		return
	}

	slog.Info("reply created", "comment_id", id, "parent_comment_id", parentID)
	api.OK(c, http.StatusCreated, dto.CommentIDResponse{CommentID: id}, "Reply created successfully")
}

// Edit handles PATCH /comments/c/:comment_id.
func (h *CommentHandler) Edit(c *gin.Context) {
	commentID, err := identifier.Parse(c.Param("comment_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "comment id is invalid")
		return
	}

	var req dto.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, usecase.ErrEmptyBody.Error())
		return
	}

	id, err := h.comments.Edit(c.Request.Context(), commentID, req.Comment)
	if err != nil {
		slog.Warn("edit comment failed", "error", err, "comment_id", commentID)
		failComment(c, err)
		return
	}
	api.OK(c, http.StatusOK, dto.CommentIDResponse{CommentID: id}, "Comment edited successfully")
}

// Delete handles DELETE /comments/c/:comment_id.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := identifier.Parse(c.Param("comment_id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "comment id is invalid")
		return
	}

	id, err := h.comments.Delete(c.Request.Context(), commentID)
	if err != nil {
		slog.Warn("delete comment failed", "error", err, "comment_id", commentID)
		failComment(c, err)
		return
	}
	api.OK(c, http.StatusOK, dto.CommentIDResponse{CommentID: id}, "Comment deleted successfully")
}
