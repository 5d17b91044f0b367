package payments

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupPaymentsRoutes sets up the tuition payments routes
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Get("/stats", GetPaymentStatsAPI)
	api.Post("/", auth.RoleMiddleware("admin", "comptable", "secretaire"), CreatePaymentAPI)
	api.Post("/:id/validate", auth.RoleMiddleware("admin", "comptable"), ValidatePaymentAPI)
	api.Post("/:id/cancel", auth.RoleMiddleware("admin", "comptable"), CancelPaymentAPI)
}
