package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/blogging-platform/internal/persistence"
	"github.com/spec-kit/blogging-platform/pkg/apperr"
)

// LoginRateLimiter applies a fixed-window per-IP limit backed by Redis.
// When Redis is unreachable the limiter degrades open: login availability
// matters more than the throttle.
func LoginRateLimiter(rdb *persistence.Redis, logger *zap.Logger, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || rdb.Client == nil || limit <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.IP())
		ctx := c.UserContext()

		count, err := rdb.Client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := rdb.Client.Expire(ctx, key, window).Err(); err != nil {
				logger.Warn("rate limiter expire failed", zap.Error(err))
			}
		}

		if count > int64(limit) {
			return apperr.NewDomainError(
				"RATE_LIMITED",
				"Too many login attempts. Please try again later.",
				fiber.StatusTooManyRequests,
				nil,
			)
		}
		return c.Next()
	}
}
