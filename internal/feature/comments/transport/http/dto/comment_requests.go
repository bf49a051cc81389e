// Package dto defines the request and response payloads for the
// comments endpoints.
package dto

// CreateCommentRequest is the body for posting a top-level comment.
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// ReplyCommentRequest is the body for posting a reply. The parent must
// be a top-level comment of the same reel.
type ReplyCommentRequest struct {
	Comment         string `json:"comment" binding:"required"`
	ParentCommentID string `json:"parent_comment_id" binding:"required"`
}

// EditCommentRequest is the body for rewriting an existing comment.
type EditCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentIDResponse carries the id of the comment a mutation touched.
type CommentIDResponse struct {
	CommentID uint `json:"comment_id"`
}
