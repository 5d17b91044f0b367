package budget

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/models"
)

// queryYearMonth reads the annee/mois parameters, also accepting their
// English spellings.
func queryYearMonth(c *fiber.Ctx, defaultYear int) (int, int) {
	year := c.QueryInt("annee", c.QueryInt("year", defaultYear))
	month := c.QueryInt("mois", c.QueryInt("month", 0))
	return year, month
}

func GetBudgetLinesAPI(c *fiber.Ctx) error {
	year, month := queryYearMonth(c, time.Now().Year())
	if month < 0 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "mois must be between 1 and 12"})
	}

	lines, err := GetBudgetLines(config.GetDB(), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch budget lines"})
	}

	return c.JSON(fiber.Map{
		"annee": year,
		"mois":  month,
		"lines": lines,
	})
}

func UpsertBudgetLineAPI(c *fiber.Ctx) error {
	var l models.BudgetLine
	if err := c.BodyParser(&l); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if l.Year == 0 || l.Month < 1 || l.Month > 12 || l.Category == "" {
		return c.Status(400).JSON(fiber.Map{"error": "year, month (1-12) and category are required"})
	}
	if !models.ValidBudgetType(l.Type) {
		return c.Status(400).JSON(fiber.Map{"error": "type must be one of fixed, variable, credit, savings"})
	}
	if l.SchoolYear == "" {
		l.SchoolYear = config.GetEnv().SchoolYear
	}

	if err := UpsertBudgetLine(config.GetDB(), &l); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save budget line"})
	}
	return c.JSON(l)
}

func ReconcileBudgetAPI(c *fiber.Ctx) error {
	year, month := queryYearMonth(c, 0)
	if year == 0 || month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "annee and mois (1-12) are required"})
	}

	lines, err := ReconcileBudget(config.GetDB(), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reconcile budget"})
	}

	return c.JSON(fiber.Map{
		"annee": year,
		"mois":  month,
		"lines": lines,
	})
}
