package students

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", auth.RoleMiddleware("admin", "secretaire"), CreateStudentAPI)
	api.Put("/:id", auth.RoleMiddleware("admin", "secretaire"), UpdateStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteStudentAPI)
	api.Get("/:id/payments", GetStudentPaymentsAPI)
}
