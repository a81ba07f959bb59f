package admin

import (
	"strings"
	"time"

	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerSummary struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Orders      int64      `json:"orders"`
	LastOrderAt *time.Time `json:"lastOrderAt"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CustomerOrder struct {
	ID          string             `json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount float64            `json:"total_amount"`
}

// GET /api/admin/customers?q=
// Sadece USER rolündeki hesaplar listelenir; her müşteri için sipariş
// sayısı ve son sipariş zamanı eklenir.
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.User{}).Where("role = ?", models.RoleUser)

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + q + "%"
			dbq = dbq.Where("email ILIKE ? OR username ILIKE ?", like, like)
		}

		var users []models.User
		if err := dbq.Order("created_at desc").Limit(200).Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}

		type statRow struct {
			UserID string
			Count  int64
			Last   *time.Time
		}
		stats := map[string]statRow{}
		if len(ids) > 0 {
			var rows []statRow
			if err := database.DB.Model(&models.Order{}).
				Select("user_id, COUNT(*) as count, MAX(created_at) as last").
				Where("user_id IN ?", ids).
				Group("user_id").
				Scan(&rows).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
			}
			for _, r := range rows {
				stats[r.UserID] = r
			}
		}

		res := make([]CustomerSummary, 0, len(users))
		for _, u := range users {
			s := stats[u.ID]
			res = append(res, CustomerSummary{
				ID:          u.ID,
				Username:    u.Username,
				Email:       u.Email,
				Orders:      s.Count,
				LastOrderAt: s.Last,
				CreatedAt:   u.CreatedAt,
			})
		}
		return c.JSON(res)
	}
}

// GET /api/admin/customers/:id
// OWNER hesapları müşteri olarak görünmez, bilinmeyen id ile aynı 404.
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u models.User
		err := database.DB.First(&u, "id = ? AND role = ?", c.Params("id"), models.RoleUser).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		var orders []models.Order
		if err := database.DB.Where("user_id = ?", u.ID).
			Order("created_at desc").
			Limit(50).
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]CustomerOrder, 0, len(orders))
		for _, o := range orders {
			res = append(res, CustomerOrder{
				ID:          o.ID,
				CreatedAt:   o.CreatedAt,
				Status:      o.Status,
				TotalAmount: o.TotalAmount.InexactFloat64(),
			})
		}

		return c.JSON(fiber.Map{
			"user":   u.Public(),
			"orders": res,
		})
	}
}
