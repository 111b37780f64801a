package dto

import (
	"time"

	"github.com/spec-kit/blogging-platform/internal/domain"
)

// CommentRequest payload for creating a comment.
type CommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest carries a partial patch for a comment.
type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

// CommentResponse is the public projection of a comment.
type CommentResponse struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Commenter string     `json:"commenter"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewCommentResponse projects a comment entity.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		Commenter: c.Commenter,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
