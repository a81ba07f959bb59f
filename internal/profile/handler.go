package profile

import (
	"strings"

	"lycia-backend/internal/auth"
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Username     *string `json:"username"`
	Phone        *string `json:"phone"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	District     *string `json:"district"`
	PostalCode   *string `json:"postal_code"`
	Country      *string `json:"country"`
}

// GET /api/profile
func GetProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := auth.SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.JSON(user)
	}
}

// PUT /api/profile
// Profil formu her PUT'ta komple gönderilir: opsiyonel bir alan
// gönderilmezse veya boş gönderilirse temizlenir. Sadece username ve
// country boş/eksik geldiğinde eski değerini korur.
func UpdateProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := auth.SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var body UpdateProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", session.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		applyUpdate(&user, &body)

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Profil güncellenemedi")
		}

		return c.JSON(user.Public())
	}
}

func applyUpdate(user *models.User, body *UpdateProfileRequest) {
	if v := optionalValue(body.Username); v != "" {
		user.Username = v
	}
	if v := optionalValue(body.Country); v != "" {
		user.Country = v
	}
	user.Phone = optionalValue(body.Phone)
	user.FirstName = optionalValue(body.FirstName)
	user.LastName = optionalValue(body.LastName)
	user.AddressLine1 = optionalValue(body.AddressLine1)
	user.AddressLine2 = optionalValue(body.AddressLine2)
	user.City = optionalValue(body.City)
	user.District = optionalValue(body.District)
	user.PostalCode = optionalValue(body.PostalCode)
}

// optionalValue: eksik alan ile boş string aynı şeydir, ikisi de alanı
// temizler.
func optionalValue(src *string) string {
	if src == nil {
		return ""
	}
	return strings.TrimSpace(*src)
}
