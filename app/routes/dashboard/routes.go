package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard KPI route
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardAPI)
}
