package order

import (
	"encoding/json"
	"strings"
	"time"

	"lycia-backend/internal/auth"
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Items []IncomingItem `json:"items"`
	Note  string         `json:"note"`
}

type OrderSummary struct {
	ID        string             `json:"id"`
	Status    models.OrderStatus `json:"status"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	ItemCount int                `json:"item_count"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	ImageURL  string  `json:"image_url"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

func itemResponses(items []models.OrderItem) []OrderItemResponse {
	res := make([]OrderItemResponse, 0, len(items))
	for _, i := range items {
		res = append(res, OrderItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			Title:     i.Title,
			ImageURL:  i.ImageURL,
			UnitPrice: i.UnitPrice.InexactFloat64(),
			Quantity:  i.Quantity,
			LineTotal: i.LineTotal.InexactFloat64(),
		})
	}
	return res
}

func metaJSON(o *models.Order) json.RawMessage {
	if o.Meta == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(o.Meta)
}

// POST /api/orders
// Adres eksikse veya temizlenen sepet boş kalırsa 400; sipariş ve
// kalemleri tek transaction'da yazılır.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := auth.SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if !addressComplete(user) {
			return fiber.NewError(fiber.StatusBadRequest, "Adres bilgilerin eksik. Sipariş vermek için önce adresini tamamla.")
		}

		items := PriceItems(body.Items)
		if len(items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sepet boş")
		}

		_, shipping, total := Totals(items)

		note := truncateRunes(strings.TrimSpace(body.Note), maxNoteLen)

		o := models.Order{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Status:      models.StatusHazirlaniyor,
			TotalAmount: total,
			Note:        note,
		}
		meta := models.OrderMeta{
			Shipping: shipping,
			Address:  models.SnapshotAddress(user),
		}
		if err := o.SetMeta(meta); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&o).Error; err != nil {
				return err
			}
			rows := make([]models.OrderItem, 0, len(items))
			for _, it := range items {
				rows = append(rows, models.OrderItem{
					ID:        uuid.NewString(),
					OrderID:   o.ID,
					ProductID: it.ProductID,
					Title:     it.Title,
					ImageURL:  it.Img,
					UnitPrice: it.UnitPrice,
					Quantity:  it.Qty,
					LineTotal: it.LineTotal,
				})
			}
			return tx.Create(&rows).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"ok": true,
			"order": fiber.Map{
				"id":         o.ID,
				"status":     o.Status,
				"total":      o.TotalAmount.InexactFloat64(),
				"created_at": o.CreatedAt,
			},
		})
	}
}

// GET /api/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := auth.SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var orders []models.Order
		if err := database.DB.Preload("Items").
			Where("user_id = ?", user.ID).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]OrderSummary, 0, len(orders))
		for _, o := range orders {
			res = append(res, OrderSummary{
				ID:        o.ID,
				Status:    o.Status,
				Total:     o.TotalAmount.InexactFloat64(),
				CreatedAt: o.CreatedAt,
				ItemCount: len(o.Items),
			})
		}
		return c.JSON(res)
	}
}

// GET /api/orders/:id
// Sadece kendi siparişi; başkasının sipariş id'si de 404 döner.
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := auth.SessionUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var o models.Order
		err := database.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).First(&o, "id = ? AND user_id = ?", c.Params("id"), user.ID).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		return c.JSON(fiber.Map{
			"id":         o.ID,
			"status":     o.Status,
			"created_at": o.CreatedAt,
			"total":      o.TotalAmount.InexactFloat64(),
			"meta":       metaJSON(&o),
			"items":      itemResponses(o.Items),
		})
	}
}

func addressComplete(user models.PublicUser) bool {
	required := []string{user.FirstName, user.LastName, user.Phone, user.AddressLine1, user.City, user.District}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
