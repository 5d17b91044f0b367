package students

import (
	"database/sql"
	"fmt"

	"gabkut-schola/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search     string
	ClassID    string
	Gender     string
	SchoolYear string
	Limit      int
	Offset     int
}

// NextMatricule builds the next matricule for a class:
// YEAR-CLASSCODE-SEQ, where SEQ counts enrollments of the class for the
// school year (soft-deleted students keep their slot).
func NextMatricule(db *sql.DB, classID, schoolYear string) (string, error) {
	var code string
	err := db.QueryRow(`SELECT code FROM classes WHERE id = $1 AND deleted_at IS NULL`, classID).Scan(&code)
	if err != nil {
		return "", err
	}

	var count int
	err = db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE class_id = $1 AND school_year = $2`,
		classID, schoolYear,
	).Scan(&count)
	if err != nil {
		return "", err
	}

	year := schoolYear
	if len(year) >= 4 {
		year = year[:4]
	}
	return fmt.Sprintf("%s-%s-%03d", year, code, count+1), nil
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	where := `s.deleted_at IS NULL`
	args := []interface{}{}
	idx := 1

	if filters.ClassID != "" {
		where += fmt.Sprintf(" AND s.class_id = $%d", idx)
		args = append(args, filters.ClassID)
		idx++
	}
	if filters.Gender != "" {
		where += fmt.Sprintf(" AND s.gender = $%d", idx)
		args = append(args, filters.Gender)
		idx++
	}
	if filters.SchoolYear != "" {
		where += fmt.Sprintf(" AND s.school_year = $%d", idx)
		args = append(args, filters.SchoolYear)
		idx++
	}
	if filters.Search != "" {
		where += fmt.Sprintf(" AND (s.first_name ILIKE $%d OR s.last_name ILIKE $%d OR s.matricule ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+filters.Search+"%")
		idx++
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM students s WHERE ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT s.id, s.matricule, s.first_name, s.last_name, s.gender, s.date_of_birth,
			  s.class_id, s.parent_name, s.parent_phone, s.school_year, s.is_active,
			  s.created_at, s.updated_at, c.name, c.code
			  FROM students s
			  LEFT JOIN classes c ON s.class_id = c.id
			  WHERE ` + where + `
			  ORDER BY s.matricule ASC`
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		var gender sql.NullString
		var dob sql.NullTime
		var parentName, parentPhone, className, classCode sql.NullString
		err := rows.Scan(
			&s.ID, &s.Matricule, &s.FirstName, &s.LastName, &gender, &dob,
			&s.ClassID, &parentName, &parentPhone, &s.SchoolYear, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt, &className, &classCode,
		)
		if err != nil {
			return nil, 0, err
		}
		s.Gender = models.Gender(gender.String)
		if dob.Valid {
			s.DateOfBirth = &dob.Time
		}
		s.ParentName = parentName.String
		s.ParentPhone = parentPhone.String
		if className.Valid {
			s.Class = &models.Class{ID: s.ClassID, Name: className.String, Code: classCode.String}
		}
		students = append(students, s)
	}
	return students, totalCount, nil
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT s.id, s.matricule, s.first_name, s.last_name, s.gender, s.date_of_birth,
			  s.class_id, s.parent_name, s.parent_phone, s.school_year, s.is_active,
			  s.created_at, s.updated_at, c.name, c.code, c.frais_inscription, c.frais_mensuel
			  FROM students s
			  LEFT JOIN classes c ON s.class_id = c.id
			  WHERE s.id = $1 AND s.deleted_at IS NULL`

	s := &models.Student{}
	var gender sql.NullString
	var dob sql.NullTime
	var parentName, parentPhone, className, classCode sql.NullString
	var fraisInscription, fraisMensuel sql.NullFloat64
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.Matricule, &s.FirstName, &s.LastName, &gender, &dob,
		&s.ClassID, &parentName, &parentPhone, &s.SchoolYear, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt, &className, &classCode, &fraisInscription, &fraisMensuel,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = models.Gender(gender.String)
	if dob.Valid {
		s.DateOfBirth = &dob.Time
	}
	s.ParentName = parentName.String
	s.ParentPhone = parentPhone.String
	if className.Valid {
		s.Class = &models.Class{
			ID:               s.ClassID,
			Name:             className.String,
			Code:             classCode.String,
			FraisInscription: fraisInscription.Float64,
			FraisMensuel:     fraisMensuel.Float64,
		}
	}

	// Additive totals: validated payments against the fee schedule.
	err = db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM payments
		 WHERE student_id = $1 AND status = 'validated' AND deleted_at IS NULL`,
		id,
	).Scan(&s.TotalPaid)
	if err != nil {
		return nil, err
	}
	if s.Class != nil {
		s.TotalExpected = s.Class.FraisInscription + s.Class.FraisMensuel*10
	}

	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (matricule, first_name, last_name, gender, date_of_birth,
			  class_id, parent_name, parent_phone, school_year, is_active)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, true)
			  RETURNING id, created_at, updated_at`

	var dob interface{}
	if s.DateOfBirth != nil {
		dob = *s.DateOfBirth
	}
	return db.QueryRow(query,
		s.Matricule, s.FirstName, s.LastName, string(s.Gender), dob,
		s.ClassID, s.ParentName, s.ParentPhone, s.SchoolYear,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, gender = NULLIF($3, ''), date_of_birth = $4,
			      class_id = $5, parent_name = $6, parent_phone = $7, is_active = $8, updated_at = NOW()
			  WHERE id = $9 AND deleted_at IS NULL`

	var dob interface{}
	if s.DateOfBirth != nil {
		dob = *s.DateOfBirth
	}
	result, err := db.Exec(query,
		s.FirstName, s.LastName, string(s.Gender), dob,
		s.ClassID, s.ParentName, s.ParentPhone, s.IsActive, s.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE students SET deleted_at = NOW(), is_active = false WHERE id = $1`, id)
	return err
}

func classExists(db *sql.DB, classID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1 AND deleted_at IS NULL)`,
		classID,
	).Scan(&exists)
	return exists, err
}

// GetStudentPayments lists the payment records of one student, newest first.
func GetStudentPayments(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT id, student_id, amount, month, school_year, payment_method,
			  COALESCE(reference, ''), status, payment_date, validated_at, created_at, updated_at
			  FROM payments
			  WHERE student_id = $1 AND deleted_at IS NULL
			  ORDER BY payment_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		var method sql.NullString
		var validatedAt sql.NullTime
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.SchoolYear, &method,
			&p.Reference, &p.Status, &p.PaymentDate, &validatedAt, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.PaymentMethod = method.String
		if validatedAt.Valid {
			t := validatedAt.Time
			p.ValidatedAt = &t
		}
		payments = append(payments, p)
	}
	return payments, nil
}
