package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"gpstore/internal/config"
	"gpstore/internal/http/handlers"
	applog "gpstore/internal/log"
	"gpstore/internal/persist"
	"gpstore/internal/seed"
	"gpstore/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := persist.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Restore persisted state over fresh defaults, then seed the catalog and
	// demo order history, but only when nothing was restored.
	st := store.New(db, cfg.StateName)
	if len(st.Products()) == 0 {
		log.Println("[seed] empty catalog, inserting demo products and orders")
		st.SetProducts(seed.Products())
		st.SetOrders(seed.Orders())
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(st)
	api := app.Group("/api/v1")

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Put("/cart/:productId", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/:productId", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)

	// Throttle login attempts: small budget, long window.
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	api.Post("/auth/signup", deps.AuthHandler.Signup)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/me", deps.AuthHandler.Me)

	api.Get("/checkout", deps.OrderHandler.Checkout)
	api.Post("/checkout/address", deps.OrderHandler.SetAddress)
	api.Post("/checkout/step", deps.OrderHandler.SetStep)

	api.Post("/orders", handlers.RequireUser(st), deps.OrderHandler.Place)
	api.Get("/orders", handlers.RequireUser(st), deps.OrderHandler.History)
	api.Get("/orders/:id", handlers.RequireUser(st), deps.OrderHandler.View)

	admin := api.Group("/admin", handlers.RequireAdmin(st))
	admin.Get("/stats", deps.AdminHandler.Dashboard)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Patch("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
