package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"gabkut-schola/app/config"
	"gabkut-schola/app/database"
	"gabkut-schola/app/models"
	"gabkut-schola/app/routes/classes"
	"gabkut-schola/app/routes/students"
)

// seedRun carries the per-run memoization maps so repeated lookups during
// one seed do not re-query the database, without any process-wide cache.
type seedRun struct {
	db            *sql.DB
	schoolYear    string
	classesByCode map[string]*models.Class
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	run := &seedRun{
		db:            db,
		schoolYear:    config.GetEnv().SchoolYear,
		classesByCode: map[string]*models.Class{},
	}

	if err := run.seedClasses(); err != nil {
		log.Fatalf("Failed to seed classes: %v", err)
	}
	if err := run.seedStudents(); err != nil {
		log.Fatalf("Failed to seed students: %v", err)
	}
	if err := run.seedOpeningEntry(); err != nil {
		log.Fatalf("Failed to seed opening journal entry: %v", err)
	}

	fmt.Println("Seed completed successfully")
	os.Exit(0)
}

func (r *seedRun) classByCode(code string) (*models.Class, error) {
	if c, ok := r.classesByCode[code]; ok {
		return c, nil
	}
	all, err := classes.GetAllClasses(r.db)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		r.classesByCode[c.Code] = c
	}
	if c, ok := r.classesByCode[code]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("class %s not found", code)
}

func (r *seedRun) seedClasses() error {
	demo := []models.Class{
		{Name: "7ème Éducation de Base A", Code: "7EB-A", Level: "7EB", FraisInscription: 30000, FraisMensuel: 25000},
		{Name: "8ème Éducation de Base A", Code: "8EB-A", Level: "8EB", FraisInscription: 30000, FraisMensuel: 25000},
		{Name: "1ère Humanités Scientifique", Code: "1HS", Level: "1H", FraisInscription: 40000, FraisMensuel: 35000},
	}

	for _, c := range demo {
		if _, err := r.classByCode(c.Code); err == nil {
			continue
		}
		class := c
		if err := classes.CreateClass(r.db, &class); err != nil {
			return err
		}
		r.classesByCode[class.Code] = &class
		log.Printf("Seeded class %s (%s)", class.Name, class.Code)
	}
	return nil
}

func (r *seedRun) seedStudents() error {
	demo := []struct {
		FirstName, LastName, ClassCode string
		Gender                         models.Gender
	}{
		{"Grâce", "Kabongo", "7EB-A", models.Female},
		{"Jonathan", "Mbuyi", "7EB-A", models.Male},
		{"Esther", "Tshala", "8EB-A", models.Female},
		{"David", "Ilunga", "1HS", models.Male},
	}

	for _, d := range demo {
		class, err := r.classByCode(d.ClassCode)
		if err != nil {
			return err
		}

		matricule, err := students.NextMatricule(r.db, class.ID, r.schoolYear)
		if err != nil {
			return err
		}

		s := &models.Student{
			FirstName:  d.FirstName,
			LastName:   d.LastName,
			Gender:     d.Gender,
			ClassID:    class.ID,
			SchoolYear: r.schoolYear,
			Matricule:  matricule,
		}
		if err := students.CreateStudent(r.db, s); err != nil {
			return err
		}
		log.Printf("Seeded student %s %s (%s)", s.FirstName, s.LastName, s.Matricule)
	}
	return nil
}

// seedOpeningEntry posts the opening balances of the school year: capital
// against cash and buildings. Skipped when the journal already has entries.
func (r *seedRun) seedOpeningEntry() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM accounting_entries`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Journal not empty, skipping opening entry")
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var entryID string
	err = tx.QueryRow(
		`INSERT INTO accounting_entries (date, label, operation_type)
		 VALUES ($1, $2, 'manuelle') RETURNING id`,
		time.Date(time.Now().Year(), time.September, 1, 0, 0, 0, 0, time.UTC),
		fmt.Sprintf("Ouverture exercice %s", r.schoolYear),
	).Scan(&entryID)
	if err != nil {
		return err
	}

	lines := []struct {
		Account, Sense, Amount string
	}{
		{"231", "DEBIT", "5000000"},
		{"571", "DEBIT", "500000"},
		{"10", "CREDIT", "5500000"},
	}
	for _, l := range lines {
		_, err := tx.Exec(
			`INSERT INTO accounting_lines (entry_id, account_number, sense, amount)
			 VALUES ($1, $2, $3, $4)`,
			entryID, l.Account, l.Sense, l.Amount,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("Seeded opening journal entry")
	return nil
}
