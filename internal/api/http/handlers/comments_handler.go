package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/service"
	"github.com/spec-kit/blogging-platform/pkg/respond"
	"github.com/spec-kit/blogging-platform/pkg/validation"
)

// CommentsHandler exposes comment endpoints. The acting user is always the
// token subject; ownership rules live in the service.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// Create handles POST /api/v1/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.CommentResponse](msgInvalidPayload))
	}
	if errs := validation.Validate(req); errs != nil {
		return send(c, respond.BadRequest[dto.CommentResponse](msgInvalidPayload, errs...))
	}
	principal, _ := auth.PrincipalFromContext(c)
	return send(c, h.comments.Create(c.UserContext(), req, principal.UserID))
}

// Update handles PUT /api/v1/comments/:commentId.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.CommentResponse](msgInvalidPayload))
	}
	principal, _ := auth.PrincipalFromContext(c)
	return send(c, h.comments.Update(c.UserContext(), c.Params("commentId"), principal.UserID, req))
}

// Delete handles DELETE /api/v1/comments/:commentId.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	return send(c, h.comments.Delete(c.UserContext(), c.Params("commentId"), principal.UserID))
}

// GetByID handles GET /api/v1/comments/:commentId.
func (h *CommentsHandler) GetByID(c *fiber.Ctx) error {
	return send(c, h.comments.GetByID(c.UserContext(), c.Params("commentId")))
}

// GetAllByBlogPost handles GET /api/v1/comments/blogpost/:blogPostId.
func (h *CommentsHandler) GetAllByBlogPost(c *fiber.Ctx) error {
	return send(c, h.comments.GetAllByBlogPost(c.UserContext(), c.Params("blogPostId"), parseBaseFilter(c)))
}
