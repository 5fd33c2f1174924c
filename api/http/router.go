package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/petshop/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The /admin group is
// guarded by the token middleware followed by the superuser check.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	pets *handlers.PetHandler,
	admin *handlers.AdminPetHandler,
	authMW fiber.Handler,
	superuserMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/token", auth.Token)
	a.Post("/register", auth.Register)

	// Public catalog
	p := v1.Group("/pets")
	p.Get("/find", pets.Find)
	p.Get("/details/:id", pets.Details)

	// Superuser CRUD
	ad := v1.Group("/admin", authMW, superuserMW)
	ad.Post("/pets", admin.Create)
	ad.Get("/pets", admin.List)
	ad.Get("/pets/:id", admin.GetByID)
	ad.Put("/pets/:id", admin.Update)
	ad.Delete("/pets/:id", admin.Delete)
}
