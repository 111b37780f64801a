package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/config"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/repository"
)

type testEnv struct {
	db       *gorm.DB
	users    repository.Repository[domain.User]
	posts    repository.Repository[domain.BlogPost]
	comments repository.Repository[domain.Comment]

	userService    *UserService
	postService    *BlogPostService
	commentService *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.BlogPost{}, &domain.Comment{}))

	logger := zap.NewNop()
	users := repository.New[domain.User](db, logger)
	posts := repository.New[domain.BlogPost](db, logger)
	comments := repository.New[domain.Comment](db, logger)

	authCfg := config.AuthConfig{BcryptCost: bcrypt.MinCost}
	tokens := auth.NewTokenManager("test-secret", "test-issuer", "test-audience", 60)

	return &testEnv{
		db:             db,
		users:          users,
		posts:          posts,
		comments:       comments,
		userService:    NewUserService(authCfg, users, tokens, logger),
		postService:    NewBlogPostService(posts, users, logger),
		commentService: NewCommentService(comments, posts, users, logger),
	}
}

// registerUser creates an account through the service and returns its id.
func (e *testEnv) registerUser(t *testing.T, fullName, phone string) string {
	t.Helper()
	resp := e.userService.Register(context.Background(), dto.AddUserRequest{
		FullName:    fullName,
		PhoneNumber: phone,
		Password:    "Password1",
	}, "")
	require.Equal(t, 200, resp.Code, resp.Message)
	require.NotNil(t, resp.Data)
	return resp.Data.ID
}

// promoteToAdmin flips the stored role directly; registration always grants
// the plain user role.
func (e *testEnv) promoteToAdmin(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("role", string(domain.RoleAdmin)).Error)
}

// createPost publishes a post through the service and returns its id.
func (e *testEnv) createPost(t *testing.T, userID, title, content string, tags ...string) string {
	t.Helper()
	resp := e.postService.Create(context.Background(), userID, dto.BlogPostRequest{
		Title:   title,
		Content: content,
		Tags:    tags,
	})
	require.Equal(t, 200, resp.Code, resp.Message)
	require.NotNil(t, resp.Data)
	return resp.Data.ID
}

// createComment adds a comment through the service and returns its id.
func (e *testEnv) createComment(t *testing.T, userID, postID, content string) string {
	t.Helper()
	resp := e.commentService.Create(context.Background(), dto.CommentRequest{
		PostID:  postID,
		Content: content,
	}, userID)
	require.Equal(t, 200, resp.Code, resp.Message)
	require.NotNil(t, resp.Data)
	return resp.Data.ID
}

func strPtr(s string) *string { return &s }
