package budget

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupBudgetRoutes sets up the budget lines and reconciliation routes
func SetupBudgetRoutes(app *fiber.App) {
	api := app.Group("/api/budget")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware("admin", "comptable"))

	api.Get("/lines", GetBudgetLinesAPI)
	api.Put("/lines", UpsertBudgetLineAPI)
	api.Post("/reconcile", ReconcileBudgetAPI)
}
