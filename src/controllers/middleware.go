package controllers

import (
	"time"

	"go-canteen-api/src/infrastructure/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogging tags every request with a correlation ID and writes an
// access-log line once the handler chain completes. An incoming
// X-Correlation-Id header is honoured so callers can trace their requests.
func RequestLogging(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		correlationID := c.Get("X-Correlation-Id")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.SetUserContext(logger.WithCorrelationID(c.UserContext(), correlationID))
		c.Set("X-Correlation-Id", correlationID)

		start := time.Now()
		err := c.Next()

		logger.RequestResponse(c.UserContext(), &log.Field{
			URL:            c.OriginalURL(),
			HostName:       c.Hostname(),
			HTTPMethod:     c.Method(),
			HTTPStatusCode: c.Response().StatusCode(),
			Duration:       time.Since(start).Milliseconds(),
			Message:        "request completed",
		})
		return err
	}
}
