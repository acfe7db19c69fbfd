package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Audit emits one structured line per screen event. Client errors log at
// warn, handler errors at error.
func Audit(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.IP()),
		}
		if requestID := RequestIDFrom(c); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}

		switch {
		case err != nil && status >= fiber.StatusInternalServerError:
			logger.Error("event completed", append(attrs, slog.Any("error", err))...)
		case status >= fiber.StatusBadRequest:
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.Warn("event completed", attrs...)
		default:
			logger.Info("event completed", attrs...)
		}
		return err
	}
}
