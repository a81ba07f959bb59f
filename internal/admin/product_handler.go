package admin

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"lycia-backend/internal/database"
	"lycia-backend/internal/models"
	"lycia-backend/internal/order"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	maxStock    = 999999
	maxTitleLen = 140
	maxLabelLen = 80 // tag ve category
)

type ProductPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tag         string          `json:"tag"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Active      *bool           `json:"active"`
}

type AdminProductResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tag         string   `json:"tag"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	Active      bool     `json:"active"`
}

func toAdminResponse(p *models.Product) AdminProductResponse {
	return AdminProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Tag:         p.Tag,
		Category:    p.Category,
		Stock:       p.Stock,
		Images:      p.ImageList(),
		Active:      p.Active,
	}
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxStock {
		return maxStock
	}
	return n
}

// truncate: karakter sayısına göre keser, byte bazlı kesme çok byte'lı
// karakterleri bölebilirdi.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// applyPayload: clamp/trim kuralları create ve update için ortak.
func applyPayload(p *models.Product, body *ProductPayload) error {
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title required")
	}

	p.Title = truncate(title, maxTitleLen)
	p.Description = strings.TrimSpace(body.Description)
	p.Price = order.ClampMoney(body.Price)
	p.Tag = truncate(strings.TrimSpace(body.Tag), maxLabelLen)
	p.Category = truncate(strings.TrimSpace(body.Category), maxLabelLen)
	p.Stock = clampStock(body.Stock)
	p.SetImageList(body.Images)
	p.Active = body.Active == nil || *body.Active
	return nil
}

// GET /api/admin/products?q=
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			dbq = dbq.Where("title ILIKE ?", "%"+q+"%")
		}

		var products []models.Product
		if err := dbq.Order("updated_at desc").Limit(200).Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]AdminProductResponse, 0, len(products))
		for i := range products {
			res = append(res, toAdminResponse(&products[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductPayload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		var p models.Product
		if err := applyPayload(&p, &body); err != nil {
			return err
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": p.ID})
	}
}

// GET /api/admin/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		return c.JSON(toAdminResponse(&p))
	}
}

// PUT /api/admin/products/:id
// Kısmi değil tam güncelleme: payload'daki hali yazılır.
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		var body ProductPayload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if err := applyPayload(&p, &body); err != nil {
			return err
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(fiber.Map{
			"ok": true,
			"product": fiber.Map{
				"id":         p.ID,
				"updated_at": p.UpdatedAt,
			},
		})
	}
}
