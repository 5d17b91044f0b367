package expenses

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/models"
)

func GetExpensesAPI(c *fiber.Ctx) error {
	filters := ExpenseFilters{CategoryID: c.Query("category_id")}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date, expected YYYY-MM-DD"})
		}
		filters.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid to date, expected YYYY-MM-DD"})
		}
		filters.To = t
	}

	expenses, err := GetExpenses(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	return c.JSON(fiber.Map{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if e.CategoryID == "" || e.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "category_id and title are required"})
	}
	if e.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "amount must be positive"})
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	if err := CreateExpense(config.GetDB(), &e); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found or inactive"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}
	return c.Status(201).JSON(e)
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	if err := DeleteExpense(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}

func GetCategoriesAPI(c *fiber.Ctx) error {
	categories, err := GetCategories(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
		"count":      len(categories),
	})
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cat.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	if err := CreateCategory(config.GetDB(), &cat); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(201).JSON(cat)
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	cat.ID = c.Params("id")
	if cat.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	if err := UpdateCategory(config.GetDB(), &cat); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update category"})
	}
	return c.JSON(cat)
}
