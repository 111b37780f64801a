package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/blogging-platform/internal/auth"
	"github.com/spec-kit/blogging-platform/internal/config"
	"github.com/spec-kit/blogging-platform/internal/domain"
	"github.com/spec-kit/blogging-platform/internal/observability"
	"github.com/spec-kit/blogging-platform/internal/persistence"
	"github.com/spec-kit/blogging-platform/internal/repository"
)

// Seeds an admin account plus a handful of demo posts and comments.
// Safe to re-run: existing records are detected by phone number and skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(pg.DB, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := repository.New[domain.User](pg.DB, logger)
	posts := repository.New[domain.BlogPost](pg.DB, logger)
	comments := repository.New[domain.Comment](pg.DB, logger)

	now := time.Now().UTC()

	admin := seedUser(ctx, users, logger, cfg.Auth.BcryptCost, domain.User{
		Base:        domain.Base{ID: domain.NewID(), CreatedAt: now, CreatedBy: domain.SystemActor, IsActive: true},
		FullName:    "Platform Admin",
		Email:       "admin@example.com",
		PhoneNumber: "233200000001",
		Role:        domain.RoleAdmin,
	}, "ChangeMe!123")

	author := seedUser(ctx, users, logger, cfg.Auth.BcryptCost, domain.User{
		Base:        domain.Base{ID: domain.NewID(), CreatedAt: now, CreatedBy: domain.SystemActor, IsActive: true},
		FullName:    "Ama Mensah",
		Email:       "ama@example.com",
		PhoneNumber: "233274810934",
		Role:        domain.RoleUser,
	}, "Password1")

	if posts.Exists(ctx, "user_id = ?", author.ID) {
		logger.Info("demo content already seeded")
		return
	}

	demoPosts := []domain.BlogPost{
		{
			Base:    domain.Base{ID: domain.NewID(), CreatedAt: now, CreatedBy: author.FullName, IsActive: true},
			Title:   "Hello, world",
			Content: "First post on the platform.",
			UserID:  author.ID,
			Author:  author.FullName,
			Tags:    []string{"welcome", "intro"},
		},
		{
			Base:    domain.Base{ID: domain.NewID(), CreatedAt: now, CreatedBy: author.FullName, IsActive: true},
			Title:   "Writing tips",
			Content: "Short paragraphs keep readers moving.",
			UserID:  author.ID,
			Author:  author.FullName,
			Tags:    []string{"writing"},
		},
	}
	if !posts.BulkInsert(ctx, demoPosts) {
		logger.Fatal("seeding blog posts failed")
	}

	demoComments := make([]domain.Comment, 0, len(demoPosts))
	for _, p := range demoPosts {
		demoComments = append(demoComments, domain.Comment{
			Base:       domain.Base{ID: domain.NewID(), CreatedAt: now, CreatedBy: admin.FullName, IsActive: true},
			Content:    "Looking forward to more.",
			UserID:     admin.ID,
			Commenter:  admin.FullName,
			BlogPostID: p.ID,
		})
	}
	if !comments.BulkInsert(ctx, demoComments) {
		logger.Fatal("seeding comments failed")
	}

	logger.Info("seed complete",
		zap.Int("posts", len(demoPosts)),
		zap.Int("comments", len(demoComments)))
}

func seedUser(ctx context.Context, users repository.Repository[domain.User], logger *zap.Logger, bcryptCost int, user domain.User, password string) *domain.User {
	if existing, found := users.Find(ctx, "phone_number = ?", user.PhoneNumber); found {
		logger.Info("user already seeded", zap.String("phone", user.PhoneNumber))
		return existing
	}

	hashed, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		logger.Fatal("hashing seed password failed", zap.Error(err))
	}
	user.Password = hashed

	if !users.Add(ctx, &user) {
		logger.Fatal("seeding user failed", zap.String("phone", user.PhoneNumber))
	}
	logger.Info("user seeded", zap.String("fullName", user.FullName), zap.String("role", string(user.Role)))
	return &user
}
