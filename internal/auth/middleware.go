package auth

import (
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const CtxUserKey = "session_user"

// TokenValue: cookie öncelikli, header fallback'li token okuma.
func TokenValue(c *fiber.Ctx) string {
	if v := c.Cookies("token"); v != "" {
		return v
	}
	if v := c.Get("auth_token"); v != "" {
		return v
	}
	return c.Get("token")
}

// RequireSession: geçerli oturum yoksa isteği 401 ile keser, varsa
// kullanıcının public profilini context'e koyar.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := TokenValue(c)
		if value == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		user := ResolveToken(database.DB, value)
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(CtxUserKey, user.Public())
		return c.Next()
	}
}

// RequireOwner: RequireSession'dan sonra çalışır, OWNER olmayanı 403'ler.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if user.Role != models.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}

func SessionUser(c *fiber.Ctx) (models.PublicUser, bool) {
	user, ok := c.Locals(CtxUserKey).(models.PublicUser)
	return user, ok
}
