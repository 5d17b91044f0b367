package classes

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/routes/auth"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassByIDAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateClassAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateClassAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteClassAPI)
}
