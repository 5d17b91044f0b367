package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"gabkut-schola/app/config"
	"gabkut-schola/app/database"
	"gabkut-schola/app/routes/accounting"
	"gabkut-schola/app/routes/auth"
	"gabkut-schola/app/routes/budget"
	"gabkut-schola/app/routes/classes"
	"gabkut-schola/app/routes/dashboard"
	"gabkut-schola/app/routes/expenses"
	"gabkut-schola/app/routes/payments"
	"gabkut-schola/app/routes/students"
	"gabkut-schola/app/services"
)

// customErrorHandler renders every error as a JSON payload
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Kinshasa time
	loc, err := time.LoadLocation("Africa/Kinshasa")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Kinshasa location, falling back to UTC+1: %v", err)
		time.Local = time.FixedZone("WAT", 1*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize configuration and database
	if err := config.Load(); err != nil {
		log.Fatal("Failed to initialize configuration:", err)
	}
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      config.GetEnv().AppName,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "degraded", "error": "database unreachable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup expenses and categories routes
	expenses.SetupExpensesRoutes(app)

	// Setup accounting routes
	accounting.SetupAccountingRoutes(app)

	// Setup budget routes
	budget.SetupBudgetRoutes(app)

	// Start server
	addr := fmt.Sprintf(":%d", config.GetEnv().Port)
	log.Printf("Starting %s on %s", config.GetEnv().AppName, addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
