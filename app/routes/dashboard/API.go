package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/database"
)

func GetDashboardAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year")
	if schoolYear == "" {
		schoolYear = config.GetEnv().SchoolYear
	}

	stats, err := database.GetDashboardStats(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{
		"school_year": schoolYear,
		"stats":       stats,
	})
}
