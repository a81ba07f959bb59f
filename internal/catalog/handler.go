package catalog

import (
	"strconv"
	"strings"

	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tag         string   `json:"tag"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Tag:         p.Tag,
		Category:    p.Category,
		Stock:       p.Stock,
		Images:      p.ImageList(),
	}
}

// GET /api/products?kategori=
// Sadece aktif ürünler; kategori boş veya "all" ise filtre yok.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{}).Where("active = ?", true)

		kategori := strings.TrimSpace(c.Query("kategori"))
		if kategori != "" && kategori != "all" {
			dbq = dbq.Where("category = ?", kategori)
		}

		var products []models.Product
		if err := dbq.Order("updated_at desc").Limit(500).Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		res := make([]ProductResponse, 0, len(products))
		for i := range products {
			res = append(res, toResponse(&products[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ? AND active = ?", id, true).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}

		return c.JSON(toResponse(&p))
	}
}
