package cart

import (
	"strconv"

	"lycia-backend/internal/config"
	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cookieName = "cart_id"

// Sepet cookie'si uzun ömürlü; sepetin kendisi sunucuda saklanır ve her
// değişiklikte komple yeniden yazılır.
const cookieMaxAge = 365 * 24 * 60 * 60

type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

type SetQtyRequest struct {
	Qty int `json:"qty"`
}

func cartID(c *fiber.Ctx) string {
	return c.Cookies(cookieName)
}

// ensureCartID: cookie yoksa yeni sepet kimliği üretir.
func ensureCartID(c *fiber.Ctx, cfg *config.Config) string {
	if id := cartID(c); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return id
}

func loadCart(db *gorm.DB, id string) (Cart, error) {
	var rows []models.CartItem
	if err := db.Where("cart_id = ?", id).Order("created_at asc").Find(&rows).Error; err != nil {
		return Cart{}, err
	}

	items := make([]Line, 0, len(rows))
	for _, r := range rows {
		items = append(items, Line{
			ProductID: r.ProductID,
			Title:     r.Title,
			Img:       r.Img,
			UnitPrice: r.UnitPrice,
			Qty:       r.Qty,
		})
	}
	return Hydrate(items), nil
}

// saveCart: sepetin tamamını siler ve güncel halini yazar (her
// değişiklikte depoya tam ayna).
func saveCart(db *gorm.DB, id string, c Cart) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", id).Error; err != nil {
			return err
		}
		if len(c.Items) == 0 {
			return nil
		}
		rows := make([]models.CartItem, 0, len(c.Items))
		for _, x := range c.Items {
			rows = append(rows, models.CartItem{
				CartID:    id,
				ProductID: x.ProductID,
				Title:     x.Title,
				Img:       x.Img,
				UnitPrice: x.UnitPrice,
				Qty:       x.Qty,
			})
		}
		return tx.Create(&rows).Error
	})
}

func cartResponse(c Cart) fiber.Map {
	items := c.Items
	if items == nil {
		items = []Line{}
	}
	return fiber.Map{"items": items}
}

// GET /api/cart
func GetCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := cartID(c)
		if id == "" {
			return c.JSON(cartResponse(Cart{}))
		}

		crt, err := loadCart(database.DB, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet yüklenemedi")
		}
		return c.JSON(cartResponse(crt))
	}
}

// POST /api/cart/items
// Ürün bilgisi sepete eklenirken üründen kopyalanır; aynı ürün tekrar
// eklenirse miktarlar birleşir.
func AddItemHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id zorunlu")
		}

		var p models.Product
		if err := database.DB.First(&p, "id = ? AND active = ?", body.ProductID, true).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		img := ""
		if imgs := p.ImageList(); len(imgs) > 0 {
			img = imgs[0]
		}

		id := ensureCartID(c, cfg)
		crt, err := loadCart(database.DB, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet yüklenemedi")
		}

		crt.Add(Line{
			ProductID: p.ID,
			Title:     p.Title,
			Img:       img,
			UnitPrice: p.Price,
			Qty:       body.Qty,
		})

		if err := saveCart(database.DB, id, crt); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet kaydedilemedi")
		}
		return c.JSON(cartResponse(crt))
	}
}

// PUT /api/cart/items/:productId
func SetQtyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := strconv.ParseUint(c.Params("productId"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var body SetQtyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		id := cartID(c)
		if id == "" {
			return fiber.NewError(fiber.StatusNotFound, "Sepet bulunamadı")
		}

		crt, err := loadCart(database.DB, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet yüklenemedi")
		}

		crt.SetQty(uint(productID), body.Qty)

		if err := saveCart(database.DB, id, crt); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet kaydedilemedi")
		}
		return c.JSON(cartResponse(crt))
	}
}

// DELETE /api/cart/items/:productId
func RemoveItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := strconv.ParseUint(c.Params("productId"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		id := cartID(c)
		if id == "" {
			return fiber.NewError(fiber.StatusNotFound, "Sepet bulunamadı")
		}

		crt, err := loadCart(database.DB, id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet yüklenemedi")
		}

		crt.Remove(uint(productID))

		if err := saveCart(database.DB, id, crt); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sepet kaydedilemedi")
		}
		return c.JSON(cartResponse(crt))
	}
}

// DELETE /api/cart
func ClearCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := cartID(c)
		if id != "" {
			if err := database.DB.Delete(&models.CartItem{}, "cart_id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Sepet temizlenemedi")
			}
		}
		return c.JSON(cartResponse(Cart{}))
	}
}
