package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"gabkut-schola/app/config"
	"gabkut-schola/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := StudentFilters{
		Search:     c.Query("search"),
		ClassID:    c.Query("class_id"),
		Gender:     c.Query("gender"),
		SchoolYear: c.Query("school_year"),
		Limit:      c.QueryInt("limit", 0),
		Offset:     c.QueryInt("offset", 0),
	}

	students, totalCount, err := GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var s models.Student
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if s.FirstName == "" || s.LastName == "" || s.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "first_name, last_name and class_id are required"})
	}
	if s.SchoolYear == "" {
		s.SchoolYear = config.GetEnv().SchoolYear
	}

	db := config.GetDB()
	exists, err := classExists(db, s.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check class"})
	}
	if !exists {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	if s.Matricule == "" {
		matricule, err := NextMatricule(db, s.ClassID, s.SchoolYear)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate matricule"})
		}
		s.Matricule = matricule
	}

	if err := CreateStudent(db, &s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	return c.Status(201).JSON(s)
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var s models.Student
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	s.ID = c.Params("id")

	if s.ClassID != "" {
		exists, err := classExists(config.GetDB(), s.ClassID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check class"})
		}
		if !exists {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
	}

	if err := UpdateStudent(config.GetDB(), &s); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(s)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.SendStatus(204)
}

func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	db := config.GetDB()

	if _, err := GetStudentByID(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	payments, err := GetStudentPayments(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	var total float64
	for _, p := range payments {
		if p.IsValidated() {
			total += p.Amount
		}
	}

	return c.JSON(fiber.Map{
		"payments":        payments,
		"count":           len(payments),
		"total_validated": total,
	})
}
