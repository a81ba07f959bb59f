package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))
	return app, logs
}

func loggedStatus(t *testing.T, logs *observer.ObservedLogs) int64 {
	t.Helper()
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	status, ok := fields["status"].(int64)
	require.True(t, ok, "status alanı eksik")
	return status
}

func TestLoggerStatusOnSuccess(t *testing.T) {
	app, logs := newLoggedApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, fiber.StatusOK, loggedStatus(t, logs))
}

func TestLoggerStatusOnFiberError(t *testing.T) {
	app, logs := newLoggedApp(t)
	app.Get("/yok", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/yok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.EqualValues(t, fiber.StatusNotFound, loggedStatus(t, logs))
}

func TestLoggerStatusOnUnknownError(t *testing.T) {
	app, logs := newLoggedApp(t)
	app.Get("/patla", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/patla", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.EqualValues(t, fiber.StatusInternalServerError, loggedStatus(t, logs))
}
