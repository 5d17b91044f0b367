package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/models"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func GetClassByIDAPI(c *fiber.Ctx) error {
	class, err := GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}
	return c.JSON(class)
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if class.Name == "" || class.Code == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and code are required"})
	}

	if err := CreateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}
	return c.Status(201).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	class.ID = c.Params("id")

	if err := UpdateClass(config.GetDB(), &class); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}
	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx) error {
	if err := DeleteClass(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}
	return c.SendStatus(204)
}
