package admin

import (
	"encoding/json"
	"strings"
	"time"

	"lycia-backend/internal/database"
	"lycia-backend/internal/models"
	"lycia-backend/internal/order"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminOrderSummary struct {
	ID        string             `json:"id"`
	Status    models.OrderStatus `json:"status"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	ItemCount int                `json:"item_count"`
	User      OrderUser          `json:"user"`
}

type OrderUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// GET /api/admin/orders?q=
// q sipariş id'sinde büyük/küçük harf duyarsız arama yapar.
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Order{}).Preload("User").Preload("Items")

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			dbq = dbq.Where("CAST(id AS TEXT) ILIKE ?", "%"+q+"%")
		}

		var orders []models.Order
		if err := dbq.Order("created_at desc").Limit(200).Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]AdminOrderSummary, 0, len(orders))
		for _, o := range orders {
			res = append(res, AdminOrderSummary{
				ID:        o.ID,
				Status:    o.Status,
				Total:     o.TotalAmount.InexactFloat64(),
				CreatedAt: o.CreatedAt,
				ItemCount: len(o.Items),
				User: OrderUser{
					ID:       o.User.ID,
					Username: o.User.Username,
					Email:    o.User.Email,
					Phone:    o.User.Phone,
				},
			})
		}
		return c.JSON(res)
	}
}

// GET /api/admin/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var o models.Order
		err := database.DB.Preload("User").
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at asc")
			}).
			First(&o, "id = ?", c.Params("id")).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		meta := json.RawMessage("null")
		if o.Meta != "" {
			meta = json.RawMessage(o.Meta)
		}

		items := make([]order.OrderItemResponse, 0, len(o.Items))
		for _, i := range o.Items {
			items = append(items, order.OrderItemResponse{
				ID:        i.ID,
				ProductID: i.ProductID,
				Title:     i.Title,
				ImageURL:  i.ImageURL,
				UnitPrice: i.UnitPrice.InexactFloat64(),
				Quantity:  i.Quantity,
				LineTotal: i.LineTotal.InexactFloat64(),
			})
		}

		return c.JSON(fiber.Map{
			"id":           o.ID,
			"status":       o.Status,
			"total_amount": o.TotalAmount.InexactFloat64(),
			"created_at":   o.CreatedAt,
			"meta":         meta,
			"note":         o.Note,
			"user":         o.User.Public(),
			"items":        items,
		})
	}
}

// PATCH /api/admin/orders/:id
// Statü geçiş grafiği yok; beş değerden herhangi birinden herhangi
// birine geçilebilir (manuel düzeltme senaryosu). Sadece enum üyeliği
// doğrulanır.
func UpdateOrderStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}
		if !body.Status.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}

		var o models.Order
		if err := database.DB.First(&o, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		o.Status = body.Status
		if err := database.DB.Save(&o).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}

		return c.JSON(fiber.Map{
			"ok": true,
			"order": fiber.Map{
				"id":         o.ID,
				"status":     o.Status,
				"updated_at": o.UpdatedAt,
			},
		})
	}
}
