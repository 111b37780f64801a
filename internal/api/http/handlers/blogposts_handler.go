package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/service"
	"github.com/spec-kit/blogging-platform/pkg/respond"
)

// BlogPostsHandler exposes blog post CRUD endpoints. All routes require an
// authenticated caller; the author is always the token subject.
type BlogPostsHandler struct {
	posts *service.BlogPostService
}

// NewBlogPostsHandler constructs handler.
func NewBlogPostsHandler(posts *service.BlogPostService) *BlogPostsHandler {
	return &BlogPostsHandler{posts: posts}
}

// Create handles POST /api/v1/blogposts.
func (h *BlogPostsHandler) Create(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.BlogPostResponse](msgInvalidPayload))
	}
	principal, _ := auth.PrincipalFromContext(c)
	return send(c, h.posts.Create(c.UserContext(), principal.UserID, req))
}

// Update handles PUT /api/v1/blogposts/:blogPostId.
func (h *BlogPostsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.BlogPostResponse](msgInvalidPayload))
	}
	return send(c, h.posts.Update(c.UserContext(), c.Params("blogPostId"), req))
}

// Delete handles DELETE /api/v1/blogposts/:blogPostId.
func (h *BlogPostsHandler) Delete(c *fiber.Ctx) error {
	return send(c, h.posts.Delete(c.UserContext(), c.Params("blogPostId")))
}

// GetByID handles GET /api/v1/blogposts/:blogPostId.
func (h *BlogPostsHandler) GetByID(c *fiber.Ctx) error {
	return send(c, h.posts.GetByID(c.UserContext(), c.Params("blogPostId")))
}

// GetAll handles GET /api/v1/blogposts.
func (h *BlogPostsHandler) GetAll(c *fiber.Ctx) error {
	return send(c, h.posts.GetAll(c.UserContext(), parseBaseFilter(c)))
}
