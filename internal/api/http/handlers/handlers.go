package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
	"github.com/spec-kit/blogging-platform/pkg/respond"
)

const msgInvalidPayload = "Invalid request payload"

// send serializes the envelope and mirrors its code onto the HTTP status.
func send[T any](c *fiber.Ctx, resp respond.Response[T]) error {
	return c.Status(resp.Code).JSON(resp)
}

// parseBaseFilter reads the shared listing query parameters. createdAt is
// accepted as a date (2006-01-02); an unparsable value is ignored.
func parseBaseFilter(c *fiber.Ctx) dto.BaseFilter {
	filter := dto.BaseFilter{
		PageNumber: c.QueryInt("pageNumber", 1),
		PageSize:   c.QueryInt("pageSize", 0),
		Search:     c.Query("search"),
	}
	if raw := c.Query("createdAt"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.CreatedAt = &t
		}
	}
	return filter
}
