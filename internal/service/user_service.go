package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/config"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/repository"
	"github.com/spec-kit/blogging-platform/pkg/phone"
	"github.com/spec-kit/blogging-platform/pkg/respond"
)

// UserService owns registration, login and user CRUD.
type UserService struct {
	users      repository.Repository[domain.User]
	tokens     *auth.TokenManager
	logger     *zap.Logger
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(cfg config.AuthConfig, users repository.Repository[domain.User], tokens *auth.TokenManager, logger *zap.Logger) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. actorName attributes CreatedBy; it is
// empty for unauthenticated callers, which records the System sentinel.
func (s *UserService) Register(ctx context.Context, req dto.AddUserRequest, actorName string) (resp respond.Response[dto.UserResponse]) {
	defer recoverTo(s.logger, "register user", &resp)

	normalized, ok := phone.Normalize(req.PhoneNumber)
	if !ok {
		s.logger.Debug("invalid phone number", zap.String("phoneNumber", req.PhoneNumber))
		return respond.BadRequest[dto.UserResponse]("Invalid phone number")
	}

	if len(req.Password) < 6 {
		s.logger.Debug("password too short", zap.String("phoneNumber", normalized))
		return respond.BadRequest[dto.UserResponse]("Password is too short")
	}

	exists := s.users.Exists(ctx, "phone_number = ?", normalized)
	if !exists && req.Email != "" {
		exists = s.users.Exists(ctx, "email = ?", req.Email)
	}
	if exists {
		s.logger.Debug("duplicate registration", zap.String("phoneNumber", normalized))
		return respond.BadRequest[dto.UserResponse]("User already exists")
	}

	createdBy := actorName
	if createdBy == "" {
		createdBy = domain.SystemActor
	}

	hashed, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return respond.InternalServerError[dto.UserResponse](respond.MsgInternalError)
	}

	user := &domain.User{
		Base: domain.Base{
			ID:        domain.NewID(),
			CreatedAt: time.Now().UTC(),
			CreatedBy: createdBy,
			IsActive:  true,
		},
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: normalized,
		Password:    hashed,
		Role:        domain.RoleUser,
	}

	if !s.users.Add(ctx, user) {
		s.logger.Error("saving user failed", zap.String("phoneNumber", normalized))
		return respond.FailedDependency[dto.UserResponse]("Error occurred while saving user")
	}

	s.logger.Info("user registered", zap.String("userId", user.ID))
	return respond.Ok(dto.NewUserResponse(user))
}

// Login authenticates by normalized phone number and password and returns a
// signed bearer token. Unknown accounts and wrong passwords produce the same
// message so that account existence is not leaked.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (resp respond.Response[string]) {
	defer recoverTo(s.logger, "login", &resp)

	normalized, ok := phone.Normalize(req.PhoneNumber)
	if !ok {
		s.logger.Debug("invalid phone number", zap.String("phoneNumber", req.PhoneNumber))
		return respond.BadRequest[string]("Invalid phone number")
	}

	user, found := s.users.Find(ctx, "phone_number = ? AND is_active = ?", normalized, true)
	if !found {
		s.logger.Debug("login for unknown phone number", zap.String("phoneNumber", normalized))
		return respond.BadRequest[string]("Incorrect Login Credentials")
	}

	if err := auth.ComparePassword(user.Password, req.Password); err != nil {
		s.logger.Debug("password mismatch", zap.String("userId", user.ID))
		return respond.BadRequest[string]("Incorrect Login Credentials")
	}

	token, _, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return respond.InternalServerError[string](respond.MsgInternalError)
	}

	s.logger.Info("token issued", zap.String("userId", user.ID))
	return respond.Ok(token)
}

// GetByID returns the public projection of an active user.
func (s *UserService) GetByID(ctx context.Context, userID string) (resp respond.Response[dto.UserResponse]) {
	defer recoverTo(s.logger, "get user", &resp)

	user, found := s.users.Find(ctx, "id = ?", userID)
	if !found || !user.Visible() {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.UserResponse]("User does not exist")
	}
	return respond.Ok(dto.NewUserResponse(user))
}

// Update applies a partial patch: only non-nil request fields overwrite the
// stored values.
func (s *UserService) Update(ctx context.Context, userID string, req dto.UpdateUserRequest) (resp respond.Response[dto.UserResponse]) {
	defer recoverTo(s.logger, "update user", &resp)

	user, found := s.users.Find(ctx, "id = ? AND is_active = ?", userID, true)
	if !found || !user.Visible() {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.UserResponse]("User not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		normalized, ok := phone.Normalize(*req.PhoneNumber)
		if !ok {
			s.logger.Debug("invalid phone number", zap.String("phoneNumber", *req.PhoneNumber))
			return respond.BadRequest[dto.UserResponse]("Invalid phone number")
		}
		user.PhoneNumber = normalized
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.Valid() {
			s.logger.Debug("invalid role", zap.String("role", *req.Role))
			return respond.BadRequest[dto.UserResponse]("Invalid role")
		}
		user.Role = role
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now

	if !s.users.Update(ctx, user) {
		s.logger.Error("updating user failed", zap.String("userId", userID))
		return respond.FailedDependency[dto.UserResponse]("Error occurred while updating user")
	}

	s.logger.Info("user updated", zap.String("userId", userID))
	return respond.Ok(dto.NewUserResponse(user))
}

// Delete soft-deletes an active user and returns the pre-deletion projection.
func (s *UserService) Delete(ctx context.Context, userID string) (resp respond.Response[dto.UserResponse]) {
	defer recoverTo(s.logger, "delete user", &resp)

	user, found := s.users.Find(ctx, "id = ? AND is_active = ?", userID, true)
	if !found || !user.Visible() {
		s.logger.Debug("user not found", zap.String("userId", userID))
		return respond.NotFound[dto.UserResponse]("User not found")
	}

	if !s.users.SoftDelete(ctx, userID) {
		s.logger.Error("deleting user failed", zap.String("userId", userID))
		return respond.FailedDependency[dto.UserResponse]("Error occurred while deleting user")
	}

	s.logger.Info("user deleted", zap.String("userId", userID))
	return respond.Ok(dto.NewUserResponse(user))
}

// GetAll lists active users, newest first, with optional exact creation-date
// and name/email substring filters.
func (s *UserService) GetAll(ctx context.Context, filter dto.BaseFilter) (resp respond.Response[respond.PagedResult[dto.UserResponse]]) {
	defer recoverTo(s.logger, "list users", &resp)

	query := s.users.Query(ctx).Where("is_active = ?", true)

	if filter.CreatedAt != nil {
		query = query.Where("created_at = ?", *filter.CreatedAt)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := searchPattern(term)
		query = query.Where("full_name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		s.logger.Error("counting users failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.UserResponse]](respond.MsgInternalError)
	}

	page, size := filter.Paging()
	var users []domain.User
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&users).Error
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return respond.InternalServerError[respond.PagedResult[dto.UserResponse]](respond.MsgInternalError)
	}

	payload := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		payload = append(payload, dto.NewUserResponse(&users[i]))
	}

	return respond.Ok(respond.PagedResult[dto.UserResponse]{
		Page:       page,
		PageSize:   size,
		TotalCount: int(totalCount),
		Payload:    payload,
	})
}
