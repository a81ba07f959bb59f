package main

import (
	"log"
	"strings"

	"lycia-backend/internal/admin"
	"lycia-backend/internal/auth"
	"lycia-backend/internal/cart"
	"lycia-backend/internal/catalog"
	"lycia-backend/internal/config"
	"lycia-backend/internal/database"
	"lycia-backend/internal/middleware"
	"lycia-backend/internal/order"
	"lycia-backend/internal/profile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger oluşturulamadı: %v", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"message": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Beklenmeyen sunucu hatası",
			})
		},
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, auth_token, token",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler(cfg))

	// Public katalog
	api.Get("/products", catalog.ListProductsHandler())
	api.Get("/products/:id", catalog.GetProductHandler())

	// Anonim sepet (cart_id cookie'si ile)
	api.Get("/cart", cart.GetCartHandler())
	api.Post("/cart/items", cart.AddItemHandler(cfg))
	api.Put("/cart/items/:productId", cart.SetQtyHandler())
	api.Delete("/cart/items/:productId", cart.RemoveItemHandler())
	api.Delete("/cart", cart.ClearCartHandler())

	// Oturum gerektiren route'lar
	protected := api.Group("")
	protected.Use(auth.RequireSession())

	protected.Get("/auth/check", auth.CheckHandler())

	protected.Get("/profile", profile.GetProfileHandler())
	protected.Put("/profile", profile.UpdateProfileHandler())

	protected.Get("/orders", order.ListOrdersHandler())
	protected.Post("/orders", order.CreateOrderHandler())
	protected.Get("/orders/:id", order.GetOrderHandler())

	// Owner panel
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireOwner())

	adminRoutes.Get("/dashboard", admin.DashboardHandler())

	adminRoutes.Get("/orders", admin.ListOrdersHandler())
	adminRoutes.Get("/orders/:id", admin.GetOrderHandler())
	adminRoutes.Patch("/orders/:id", admin.UpdateOrderStatusHandler())

	adminRoutes.Get("/customers", admin.ListCustomersHandler())
	adminRoutes.Get("/customers/:id", admin.GetCustomerHandler())

	adminRoutes.Get("/products", admin.ListProductsHandler())
	adminRoutes.Post("/products", admin.CreateProductHandler())
	adminRoutes.Get("/products/:id", admin.GetProductHandler())
	adminRoutes.Put("/products/:id", admin.UpdateProductHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
