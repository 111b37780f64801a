package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blogging-platform/internal/api/http/handlers"
	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	BlogPosts      *handlers.BlogPostsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/", cfg.AuthMiddleware.Optional, cfg.Users.Register)
	if cfg.LoginLimiter != nil {
		users.Post("/login", cfg.LoginLimiter, cfg.Users.Login)
	} else {
		users.Post("/login", cfg.Users.Login)
	}
	users.Get("/:userId", cfg.Users.GetByID)
	users.Get("/", cfg.Users.GetAll)

	admin := users.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Put("/:userId", cfg.Users.Update)
	admin.Delete("/:userId", cfg.Users.Delete)

	posts := api.Group("/blogposts", cfg.AuthMiddleware.Handle)
	posts.Post("/", cfg.BlogPosts.Create)
	posts.Get("/", cfg.BlogPosts.GetAll)
	posts.Get("/:blogPostId", cfg.BlogPosts.GetByID)
	posts.Put("/:blogPostId", cfg.BlogPosts.Update)
	posts.Delete("/:blogPostId", cfg.BlogPosts.Delete)

	comments := api.Group("/comments", cfg.AuthMiddleware.Handle)
	comments.Post("/", cfg.Comments.Create)
	comments.Get("/blogpost/:blogPostId", cfg.Comments.GetAllByBlogPost)
	comments.Get("/:commentId", cfg.Comments.GetByID)
	comments.Put("/:commentId", cfg.Comments.Update)
	comments.Delete("/:commentId", cfg.Comments.Delete)
}
