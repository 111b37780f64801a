package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/service"
	"github.com/spec-kit/blogging-platform/pkg/respond"
	"github.com/spec-kit/blogging-platform/pkg/validation"
)

// UsersHandler exposes registration, login and user management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register handles POST /api/v1/users. Registration is open; when a valid
// token is presented the caller's name is recorded as the creating actor.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.UserResponse](msgInvalidPayload))
	}
	if errs := validation.Validate(req); errs != nil {
		return send(c, respond.BadRequest[dto.UserResponse](msgInvalidPayload, errs...))
	}

	actorName := ""
	if principal, ok := auth.PrincipalFromContext(c); ok {
		actorName = principal.FullName
	}
	return send(c, h.users.Register(c.UserContext(), req, actorName))
}

// Login handles POST /api/v1/users/login and returns a signed access token.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[string](msgInvalidPayload))
	}
	if errs := validation.Validate(req); errs != nil {
		return send(c, respond.BadRequest[string](msgInvalidPayload, errs...))
	}
	return send(c, h.users.Login(c.UserContext(), req))
}

// GetByID handles GET /api/v1/users/:userId.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	return send(c, h.users.GetByID(c.UserContext(), c.Params("userId")))
}

// GetAll handles GET /api/v1/users.
func (h *UsersHandler) GetAll(c *fiber.Ctx) error {
	return send(c, h.users.GetAll(c.UserContext(), parseBaseFilter(c)))
}

// Update handles PUT /api/v1/users/:userId. Admin only.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return send(c, respond.BadRequest[dto.UserResponse](msgInvalidPayload))
	}
	if errs := validation.Validate(req); errs != nil {
		return send(c, respond.BadRequest[dto.UserResponse](msgInvalidPayload, errs...))
	}
	return send(c, h.users.Update(c.UserContext(), c.Params("userId"), req))
}

// Delete handles DELETE /api/v1/users/:userId. Admin only.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	return send(c, h.users.Delete(c.UserContext(), c.Params("userId")))
}
