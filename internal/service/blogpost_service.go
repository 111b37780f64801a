package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/repository"
	"github.com/spec-kit/blogging-platform/pkg/respond"
)

// BlogPostService owns blog post CRUD and listing.
type BlogPostService struct {
	posts  repository.Repository[domain.BlogPost]
	users  repository.Repository[domain.User]
	logger *zap.Logger
}

// NewBlogPostService constructs the service.
func NewBlogPostService(posts repository.Repository[domain.BlogPost], users repository.Repository[domain.User], logger *zap.Logger) *BlogPostService {
	return &BlogPostService{posts: posts, users: users, logger: logger}
}

// Create persists a new post attributed to the authoring user.
func (s *BlogPostService) Create(ctx context.Context, userID string, req dto.BlogPostRequest) (resp respond.Response[dto.BlogPostResponse]) {
	defer recoverTo(s.logger, "create blog post", &resp)

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		s.logger.Debug("blank title or content")
		return respond.BadRequest[dto.BlogPostResponse]("Title and content are required")
	}

	user, found := s.users.Find(ctx, "id = ?", userID)
	if !found {
		s.logger.Debug("author not found", zap.String("userId", userID))
		return respond.NotFound[dto.BlogPostResponse]("User not found")
	}

	post := &domain.BlogPost{
		Base: domain.Base{
			ID:        domain.NewID(),
			CreatedAt: time.Now().UTC(),
			CreatedBy: user.FullName,
			IsActive:  true,
		},
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
		Author:  user.FullName,
		Tags:    req.Tags,
	}

	if !s.posts.Add(ctx, post) {
		s.logger.Error("saving blog post failed", zap.String("userId", userID))
		return respond.FailedDependency[dto.BlogPostResponse]("Error occurred while saving blog post")
	}

	s.logger.Info("blog post created", zap.String("postId", post.ID), zap.String("userId", userID))
	return respond.Ok(dto.NewBlogPostResponse(post))
}

// Update patches title and/or content of an active post. At least one of the
// two must be supplied.
func (s *BlogPostService) Update(ctx context.Context, postID string, req dto.UpdateBlogPostRequest) (resp respond.Response[dto.BlogPostResponse]) {
	defer recoverTo(s.logger, "update blog post", &resp)

	hasTitle := req.Title != nil && strings.TrimSpace(*req.Title) != ""
	hasContent := req.Content != nil && strings.TrimSpace(*req.Content) != ""
	if !hasTitle && !hasContent {
		s.logger.Debug("blank title and content", zap.String("postId", postID))
		return respond.BadRequest[dto.BlogPostResponse]("Title and content are required")
	}

	post, found := s.posts.Find(ctx, "id = ?", postID)
	if !found || !post.Visible() {
		s.logger.Debug("blog post not found", zap.String("postId", postID))
		return respond.NotFound[dto.BlogPostResponse]("Blog post not found")
	}

	if hasTitle {
		post.Title = *req.Title
	}
	if hasContent {
		post.Content = *req.Content
	}
	now := time.Now().UTC()
	post.UpdatedAt = &now

	if !s.posts.Update(ctx, post) {
		s.logger.Error("updating blog post failed", zap.String("postId", postID))
		return respond.FailedDependency[dto.BlogPostResponse]("Error occurred while updating blog post")
	}

	s.logger.Info("blog post updated", zap.String("postId", postID))
	return respond.Ok(dto.NewBlogPostResponse(post))
}

// Delete soft-deletes an active post and returns its pre-deletion projection.
func (s *BlogPostService) Delete(ctx context.Context, postID string) (resp respond.Response[dto.BlogPostResponse]) {
	defer recoverTo(s.logger, "delete blog post", &resp)

	post, found := s.posts.Find(ctx, "id = ?", postID)
	if !found || !post.Visible() {
		s.logger.Debug("blog post not found", zap.String("postId", postID))
		return respond.NotFound[dto.BlogPostResponse]("Blog post not found")
	}

	if !s.posts.SoftDelete(ctx, postID) {
		s.logger.Error("deleting blog post failed", zap.String("postId", postID))
		return respond.FailedDependency[dto.BlogPostResponse]("Error occurred while deleting blog post")
	}

	s.logger.Info("blog post deleted", zap.String("postId", postID))
	return respond.Ok(dto.NewBlogPostResponse(post))
}

// GetByID returns an active post with its active comments nested.
func (s *BlogPostService) GetByID(ctx context.Context, postID string) (resp respond.Response[dto.BlogPostResponse]) {
	defer recoverTo(s.logger, "get blog post", &resp)

	var post domain.BlogPost
	err := s.posts.Query(ctx).
		Preload("Comments", "is_active = ?", true).
		Where("id = ?", postID).
		First(&post).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("loading blog post failed", zap.Error(err), zap.String("postId", postID))
			return respond.InternalServerError[dto.BlogPostResponse](respond.MsgInternalError)
		}
		s.logger.Debug("blog post not found", zap.String("postId", postID))
		return respond.NotFound[dto.BlogPostResponse]("Blog post not found")
	}
	if !post.Visible() {
		s.logger.Debug("blog post not active", zap.String("postId", postID))
		return respond.NotFound[dto.BlogPostResponse]("Blog post not found")
	}

	return respond.Ok(dto.NewBlogPostResponse(&post))
}

// GetAll lists active posts, newest first, with an optional case-insensitive
// substring filter across title, content and tags. The filter narrows the
// query before the total count is taken.
func (s *BlogPostService) GetAll(ctx context.Context, filter dto.BaseFilter) (resp respond.Response[respond.PagedResult[dto.BlogPostResponse]]) {
	defer recoverTo(s.logger, "list blog posts", &resp)

	query := s.posts.Query(ctx).Where("is_active = ?", true)

	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := strings.ToLower(searchPattern(term))
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		s.logger.Error("counting blog posts failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.BlogPostResponse]](respond.MsgInternalError)
	}

	page, size := filter.Paging()
	var posts []domain.BlogPost
	err := query.
		Preload("Comments", "is_active = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&posts).Error
	if err != nil {
		s.logger.Error("listing blog posts failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.BlogPostResponse]](respond.MsgInternalError)
	}

	payload := make([]dto.BlogPostResponse, 0, len(posts))
	for i := range posts {
		payload = append(payload, dto.NewBlogPostResponse(&posts[i]))
	}

	return respond.Ok(respond.PagedResult[dto.BlogPostResponse]{
		Page:       page,
		PageSize:   size,
		TotalCount: int(totalCount),
		Payload:    payload,
	})
}
