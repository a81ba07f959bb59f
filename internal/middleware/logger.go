package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CtxRequestIDKey = "request_id"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(CtxRequestIDKey, rid)
		c.Set("X-Request-ID", rid)
		return c.Next()
	}
}

// Logger: her isteği süresi ve status'u ile loglar. Handler hatası burada
// yutulmaz, Fiber'ın ErrorHandler'ına aynen iletilir.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Hata dönen isteklerde response henüz yazılmadı (ErrorHandler
		// middleware'den sonra çalışır), status hatadan türetilir.
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		rid, _ := c.Locals(CtxRequestIDKey).(string)
		fields := []zap.Field{
			zap.String("rid", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Info("http", fields...)

		return err
	}
}
