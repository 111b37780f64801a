package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/repository"
	"github.com/spec-kit/blogging-platform/pkg/respond"
)

// CommentService owns comment CRUD and per-post listing.
//
// Authorization is deliberately asymmetric: updating someone else's comment
// is reported as not-found, while deleting one is a proper 403 unless the
// actor is an Admin.
type CommentService struct {
	comments repository.Repository[domain.Comment]
	posts    repository.Repository[domain.BlogPost]
	users    repository.Repository[domain.User]
	logger   *zap.Logger
}

// NewCommentService constructs the service.
func NewCommentService(
	comments repository.Repository[domain.Comment],
	posts repository.Repository[domain.BlogPost],
	users repository.Repository[domain.User],
	logger *zap.Logger,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, logger: logger}
}

// Create persists a comment on an active post, attributed to the user.
func (s *CommentService) Create(ctx context.Context, req dto.CommentRequest, userID string) (resp respond.Response[dto.CommentResponse]) {
	defer recoverTo(s.logger, "create comment", &resp)

	user, found := s.users.Find(ctx, "id = ?", userID)
	if !found {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.CommentResponse]("User not found")
	}

	post, found := s.posts.Find(ctx, "id = ?", req.PostID)
	if !found || !post.Visible() {
		s.logger.Debug("blog post not found", zap.String("postId", req.PostID))
		return respond.NotFound[dto.CommentResponse]("Blog post not found")
	}

	comment := &domain.Comment{
		Base: domain.Base{
			ID:        domain.NewID(),
			CreatedAt: time.Now().UTC(),
			CreatedBy: user.FullName,
			IsActive:  true,
		},
		Content:    req.Content,
		UserID:     user.ID,
		Commenter:  user.FullName,
		BlogPostID: post.ID,
	}

	if !s.comments.Add(ctx, comment) {
		s.logger.Error("saving comment failed", zap.String("postId", req.PostID))
		return respond.FailedDependency[dto.CommentResponse]("Error occurred while saving comment")
	}

	s.logger.Info("comment created", zap.String("commentId", comment.ID), zap.String("postId", post.ID))
	return respond.Ok(dto.NewCommentResponse(comment))
}

// Update patches the content of a comment. Only the original author may
// update; violations are reported as not-found.
func (s *CommentService) Update(ctx context.Context, commentID, userID string, req dto.UpdateCommentRequest) (resp respond.Response[dto.CommentResponse]) {
	defer recoverTo(s.logger, "update comment", &resp)

	user, found := s.users.Find(ctx, "id = ?", userID)
	if !found {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.CommentResponse]("User not found")
	}

	comment, found := s.comments.Find(ctx, "id = ?", commentID)
	if !found || !comment.Visible() {
		s.logger.Debug("comment not found", zap.String("commentId", commentID))
		return respond.NotFound[dto.CommentResponse]("Comment not found")
	}

	if comment.UserID != user.ID {
		s.logger.Debug("comment not owned by user",
			zap.String("commentId", commentID), zap.String("userId", userID))
		return respond.NotFound[dto.CommentResponse]("Comment was not made by the user, You cant update it")
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	now := time.Now().UTC()
	comment.UpdatedAt = &now

	if !s.comments.Update(ctx, comment) {
		s.logger.Error("updating comment failed", zap.String("commentId", commentID))
		return respond.FailedDependency[dto.CommentResponse]("Error occurred while updating comment")
	}

	s.logger.Info("comment updated", zap.String("commentId", commentID))
	return respond.Ok(dto.NewCommentResponse(comment))
}

// Delete soft-deletes a comment. Allowed for the author or an Admin.
func (s *CommentService) Delete(ctx context.Context, commentID, userID string) (resp respond.Response[dto.CommentResponse]) {
	defer recoverTo(s.logger, "delete comment", &resp)

	comment, found := s.comments.Find(ctx, "id = ?", commentID)
	if !found || !comment.Visible() {
		s.logger.Debug("comment not found", zap.String("commentId", commentID))
		return respond.NotFound[dto.CommentResponse]("Comment not found")
	}

	user, found := s.users.Find(ctx, "id = ?", userID)
	if !found {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.CommentResponse]("User not found")
	}

	if comment.UserID != user.ID && user.Role != domain.RoleAdmin {
		s.logger.Debug("delete not authorized",
			zap.String("commentId", commentID), zap.String("userId", userID))
		return respond.Forbidden[dto.CommentResponse]("User is not authorized to delete this comment")
	}

	if !s.comments.SoftDelete(ctx, commentID) {
		s.logger.Error("deleting comment failed", zap.String("commentId", commentID))
		return respond.FailedDependency[dto.CommentResponse]("Error occurred while deleting comment")
	}

	s.logger.Info("comment deleted", zap.String("commentId", commentID))
	return respond.Ok(dto.NewCommentResponse(comment))
}

// GetByID returns an active comment.
func (s *CommentService) GetByID(ctx context.Context, commentID string) (resp respond.Response[dto.CommentResponse]) {
	defer recoverTo(s.logger, "get comment", &resp)

	comment, found := s.comments.Find(ctx, "id = ?", commentID)
	if !found || !comment.Visible() {
		s.logger.Debug("comment not found", zap.String("commentId", commentID))
		return respond.NotFound[dto.CommentResponse]("Comment not found")
	}
	return respond.Ok(dto.NewCommentResponse(comment))
}

// GetAllByBlogPost lists active comments of a post, newest first, with an
// optional content substring filter. The post itself only has to exist, not
// be active.
func (s *CommentService) GetAllByBlogPost(ctx context.Context, blogPostID string, filter dto.BaseFilter) (resp respond.Response[respond.PagedResult[dto.CommentResponse]]) {
	defer recoverTo(s.logger, "list comments", &resp)

	if !s.posts.Exists(ctx, "id = ?", blogPostID) {
		s.logger.Debug("blog post not found", zap.String("postId", blogPostID))
		return respond.NotFound[respond.PagedResult[dto.CommentResponse]]("Blog post not found")
	}

	query := s.comments.Query(ctx).Where("is_active = ? AND blog_post_id = ?", true, blogPostID)

	if term := strings.TrimSpace(filter.Search); term != "" {
		query = query.Where("content LIKE ?", searchPattern(term))
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		s.logger.Error("counting comments failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.CommentResponse]](respond.MsgInternalError)
	}

	page, size := filter.Paging()
	var comments []domain.Comment
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&comments).Error
	if err != nil {
		s.logger.Error("listing comments failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.CommentResponse]](respond.MsgInternalError)
	}

	payload := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		payload = append(payload, dto.NewCommentResponse(&comments[i]))
	}

	return respond.Ok(respond.PagedResult[dto.CommentResponse]{
		Page:       page,
		PageSize:   size,
		TotalCount: int(totalCount),
		Payload:    payload,
	})
}
