package dto

import (
	"time"

	"github.com/spec-kit/blogging-platform/internal/domain"
)

// BlogPostRequest payload for creating a post.
type BlogPostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateBlogPostRequest carries a partial patch for a post.
type UpdateBlogPostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// BlogPostResponse is the public projection of a post, optionally with its
// active comments nested.
type BlogPostResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    string            `json:"author"`
	Tags      []string          `json:"tags,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	Comments  []CommentResponse `json:"comments,omitempty"`
}

// NewBlogPostResponse projects a post entity and whatever comments are
// loaded on it.
func NewBlogPostResponse(bp *domain.BlogPost) BlogPostResponse {
	comments := make([]CommentResponse, 0, len(bp.Comments))
	for i := range bp.Comments {
		comments = append(comments, NewCommentResponse(&bp.Comments[i]))
	}
	return BlogPostResponse{
		ID:        bp.ID,
		Title:     bp.Title,
		Content:   bp.Content,
		Author:    bp.Author,
		Tags:      bp.Tags,
		CreatedAt: bp.CreatedAt,
		Comments:  comments,
	}
}
