package profile

import (
	"net/http/httptest"
	"testing"

	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func existingUser() models.User {
	return models.User{
		ID:           "u1",
		Username:     "ayse",
		Country:      "TR",
		Phone:        "05551112233",
		FirstName:    "Ayşe",
		LastName:     "Yılmaz",
		AddressLine1: "Cumhuriyet Mah. 12. Sk. No:5",
		City:         "Antalya",
		District:     "Muratpaşa",
		PostalCode:   "07100",
	}
}

// Gönderilmeyen opsiyonel alan boş gönderilmiş gibi temizlenir.
func TestApplyUpdateClearsOmittedOptionalFields(t *testing.T) {
	user := existingUser()

	applyUpdate(&user, &UpdateProfileRequest{
		Phone: strptr("05559998877"),
	})

	assert.Equal(t, "05559998877", user.Phone)
	assert.Empty(t, user.FirstName)
	assert.Empty(t, user.LastName)
	assert.Empty(t, user.AddressLine1)
	assert.Empty(t, user.City)
	assert.Empty(t, user.District)
	assert.Empty(t, user.PostalCode)
}

func TestApplyUpdateBlankClearsOptionalField(t *testing.T) {
	user := existingUser()

	applyUpdate(&user, &UpdateProfileRequest{
		Phone:    strptr("  "),
		City:     strptr(""),
		District: strptr("Kepez"),
	})

	assert.Empty(t, user.Phone)
	assert.Empty(t, user.City)
	assert.Equal(t, "Kepez", user.District)
}

// Username ve country boş veya eksik geldiğinde eski değer korunur.
func TestApplyUpdateKeepsUsernameAndCountry(t *testing.T) {
	user := existingUser()
	applyUpdate(&user, &UpdateProfileRequest{})
	assert.Equal(t, "ayse", user.Username)
	assert.Equal(t, "TR", user.Country)

	user = existingUser()
	applyUpdate(&user, &UpdateProfileRequest{Username: strptr(" "), Country: strptr("")})
	assert.Equal(t, "ayse", user.Username)
	assert.Equal(t, "TR", user.Country)

	user = existingUser()
	applyUpdate(&user, &UpdateProfileRequest{Username: strptr("ayse2"), Country: strptr("DE")})
	assert.Equal(t, "ayse2", user.Username)
	assert.Equal(t, "DE", user.Country)
}

func TestProfileWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/profile", GetProfileHandler())
	app.Put("/profile", UpdateProfileHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
