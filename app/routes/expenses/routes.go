package expenses

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupExpensesRoutes sets up the expenses and categories routes
func SetupExpensesRoutes(app *fiber.App) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetExpensesAPI)
	api.Post("/", auth.RoleMiddleware("admin", "comptable"), CreateExpenseAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin", "comptable"), DeleteExpenseAPI)

	categories := app.Group("/api/categories")
	categories.Use(auth.AuthMiddleware)

	categories.Get("/", GetCategoriesAPI)
	categories.Post("/", auth.RoleMiddleware("admin", "comptable"), CreateCategoryAPI)
	categories.Put("/:id", auth.RoleMiddleware("admin", "comptable"), UpdateCategoryAPI)
}
