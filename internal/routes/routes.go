package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/kyudon/police-intake/internal/config"
	"github.com/kyudon/police-intake/internal/handlers"
	"github.com/kyudon/police-intake/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	verifySignature fiber.Handler,
	interactionHandler *handlers.InteractionHandler,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Interaction webhook: signature-verified, outside the API rate
	// limiter so platform traffic is never throttled.
	app.Post("/interactions", verifySignature, interactionHandler.Handle)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// Ops panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(cfg))
	admin.Get("/reports", adminHandler.ListReports)
	admin.Delete("/reports/:id", adminHandler.DeleteReport)
	admin.Get("/cases", adminHandler.ListCases)
	admin.Get("/cases/:number", adminHandler.GetCase)
}
