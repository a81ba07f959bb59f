package auth

import (
	"strings"

	"lycia-backend/internal/config"
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func setSessionCookie(c *fiber.Ctx, cfg *config.Config, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func sessionResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"ok": true,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	}
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}

		body.Username = strings.TrimSpace(body.Username)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Username == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			ID:           uuid.NewString(),
			Username:     body.Username,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
			Verified:     true,
			Country:      "TR",
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		value, err := MintToken(database.DB, user.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		setSessionCookie(c, cfg, value, int(TokenTTL.Seconds()))
		return c.Status(fiber.StatusCreated).JSON(sessionResponse(&user))
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		value, err := MintToken(database.DB, user.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		setSessionCookie(c, cfg, value, int(TokenTTL.Seconds()))
		return c.JSON(sessionResponse(&user))
	}
}

// POST /api/auth/logout
// Token kaydını siler (best effort) ve cookie'yi temizler. Token geçersiz
// olsa bile logout her zaman başarılı döner.
func LogoutHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if value := TokenValue(c); value != "" {
			if id, _, ok := SplitTokenValue(value); ok {
				_ = database.DB.Delete(&models.AuthToken{}, "id = ?", id).Error
			}
		}

		setSessionCookie(c, cfg, "", -1)
		return c.JSON(fiber.Map{"ok": true})
	}
}

// GET /api/auth/check
func CheckHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.JSON(user)
	}
}
