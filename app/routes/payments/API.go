package payments

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/models"
)

func GetPaymentsAPI(c *fiber.Ctx) error {
	filters := PaymentFilters{
		StudentID:  c.Query("student_id"),
		ClassID:    c.Query("class_id"),
		Status:     c.Query("status"),
		Month:      c.Query("month"),
		SchoolYear: c.Query("school_year"),
	}

	payments, err := GetPayments(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

func GetPaymentStatsAPI(c *fiber.Ctx) error {
	schoolYear := c.Query("school_year")
	if schoolYear == "" {
		schoolYear = config.GetEnv().SchoolYear
	}

	stats, err := PaymentStats(config.GetDB(), schoolYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment stats"})
	}

	return c.JSON(fiber.Map{
		"school_year": schoolYear,
		"classes":     stats,
	})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var p models.Payment
	if err := c.BodyParser(&p); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if p.StudentID == "" || p.Month == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id and month are required"})
	}
	if p.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "amount must be positive"})
	}
	if p.SchoolYear == "" {
		p.SchoolYear = config.GetEnv().SchoolYear
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		p.RecordedBy = userID
	}

	if err := CreatePayment(config.GetDB(), &p); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}
	return c.Status(201).JSON(p)
}

func ValidatePaymentAPI(c *fiber.Ctx) error {
	p, err := ValidatePayment(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		if strings.Contains(err.Error(), "only pending") {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to validate payment"})
	}
	return c.JSON(p)
}

func CancelPaymentAPI(c *fiber.Ctx) error {
	p, err := CancelPayment(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		if strings.Contains(err.Error(), "only pending") {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to cancel payment"})
	}
	return c.JSON(p)
}
