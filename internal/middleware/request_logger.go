package middleware

import (
	"errors"
	"time"

	"question-paper/internal/domain"
	"question-paper/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every HTTP request once it has been handled.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		status := c.Response().StatusCode()
		// The error handler has not run yet; take the status from the error.
		var (
			fiberErr  *fiber.Error
			domainErr *domain.DomainError
		)
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
		case errors.As(err, &domainErr):
			status = StatusFor(domainErr.Code)
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		return err
	}
}
