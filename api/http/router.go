package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aazdagabde/smart-hire/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	offers *handlers.OfferHandler,
	apps *handlers.ApplicationHandler,
	scoring *handlers.ScoringHandler,
	selection *handlers.SelectionHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Offers and their question schema
	og := v1.Group("/offers", authMW)
	og.Post("/", offers.Create)
	og.Get("/", offers.List)
	og.Get("/:id", offers.GetByID)
	og.Put("/:id", offers.Update)
	og.Delete("/:id", offers.Delete)
	og.Post("/:id/fields", offers.AddField)
	og.Get("/:id/fields", offers.ListFields)
	og.Delete("/:id/fields/:fieldId", offers.RemoveField)

	// Applications scoped to an offer
	og.Post("/:id/applications", apps.Submit)
	og.Get("/:id/applications", apps.ListByOffer)
	og.Post("/:id/analyze", scoring.Analyze)
	og.Get("/:id/stats", scoring.Stats)
	og.Post("/:id/selection", selection.Run)

	// Single application operations
	ag := v1.Group("/applications", authMW)
	ag.Get("/mine", apps.ListMine)
	ag.Patch("/:id/status", apps.UpdateStatus)
	ag.Put("/:id/notes", apps.UpdateNotes)
	ag.Get("/:id/cv", apps.DownloadCV)
	ag.Get("/:id/summary", scoring.Summary)
	ag.Get("/:id/questions", scoring.Questions)
}
