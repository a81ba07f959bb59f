package auth

import (
	"net/http/httptest"
	"testing"

	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession: testlerde oturumu veritabanına gitmeden context'e koyar.
func stubSession(user models.PublicUser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(CtxUserKey, user)
		return c.Next()
	}
}

func TestRequireSessionWithoutToken(t *testing.T) {
	app := fiber.New()
	app.Get("/me", RequireSession(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireOwnerRejectsUser(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", stubSession(models.PublicUser{ID: "u1", Role: models.RoleUser}), RequireOwner(), func(c *fiber.Ctx) error {
		return c.SendString("gizli")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireOwnerAllowsOwner(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", stubSession(models.PublicUser{ID: "u1", Role: models.RoleOwner}), RequireOwner(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireOwnerWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", RequireOwner(), func(c *fiber.Ctx) error {
		return c.SendString("gizli")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
