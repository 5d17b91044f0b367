package payments

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gabkut-schola/app/models"
)

// Chart-of-accounts numbers used for automated tuition postings.
const (
	accountCaisse      = "571"
	accountScolarite   = "7061"
	accountInscription = "7062"
)

// PaymentFilters narrows payment listings.
type PaymentFilters struct {
	StudentID  string
	ClassID    string
	Status     string
	Month      string
	SchoolYear string
}

func GetPayments(db *sql.DB, filters PaymentFilters) ([]*models.Payment, error) {
	where := `p.deleted_at IS NULL`
	args := []interface{}{}
	idx := 1

	if filters.StudentID != "" {
		where += fmt.Sprintf(" AND p.student_id = $%d", idx)
		args = append(args, filters.StudentID)
		idx++
	}
	if filters.ClassID != "" {
		where += fmt.Sprintf(" AND s.class_id = $%d", idx)
		args = append(args, filters.ClassID)
		idx++
	}
	if filters.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", idx)
		args = append(args, filters.Status)
		idx++
	}
	if filters.Month != "" {
		where += fmt.Sprintf(" AND p.month = $%d", idx)
		args = append(args, filters.Month)
		idx++
	}
	if filters.SchoolYear != "" {
		where += fmt.Sprintf(" AND p.school_year = $%d", idx)
		args = append(args, filters.SchoolYear)
		idx++
	}

	query := `SELECT p.id, p.student_id, p.amount, p.month, p.school_year, p.payment_method,
			  COALESCE(p.reference, ''), p.status, p.payment_date, p.validated_at,
			  p.created_at, p.updated_at, s.first_name, s.last_name, s.matricule
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  WHERE ` + where + `
			  ORDER BY p.payment_date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		var method sql.NullString
		var validatedAt sql.NullTime
		var firstName, lastName, matricule string
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.SchoolYear, &method,
			&p.Reference, &p.Status, &p.PaymentDate, &validatedAt,
			&p.CreatedAt, &p.UpdatedAt, &firstName, &lastName, &matricule,
		)
		if err != nil {
			return nil, err
		}
		p.PaymentMethod = method.String
		if validatedAt.Valid {
			t := validatedAt.Time
			p.ValidatedAt = &t
		}
		p.Student = &models.Student{
			ID:        p.StudentID,
			FirstName: firstName,
			LastName:  lastName,
			Matricule: matricule,
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// newReference builds a receipt reference like REC-1A2B3C4D.
func newReference() string {
	return "REC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func CreatePayment(db *sql.DB, p *models.Payment) error {
	if p.Reference == "" {
		p.Reference = newReference()
	}

	query := `INSERT INTO payments (student_id, amount, month, school_year, payment_method,
			  reference, status, payment_date, recorded_by)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), 'pending', NOW(), NULLIF($7, '')::uuid)
			  RETURNING id, status, payment_date, created_at, updated_at`

	return db.QueryRow(query,
		p.StudentID, p.Amount, p.Month, p.SchoolYear, p.PaymentMethod, p.Reference, p.RecordedBy,
	).Scan(&p.ID, &p.Status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt)
}

func getPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	p := &models.Payment{}
	var method sql.NullString
	var validatedAt sql.NullTime
	err := db.QueryRow(
		`SELECT p.id, p.student_id, p.amount, p.month, p.school_year, p.payment_method,
		 COALESCE(p.reference, ''), p.status, p.payment_date, p.validated_at
		 FROM payments p WHERE p.id = $1 AND p.deleted_at IS NULL`, id,
	).Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.SchoolYear, &method,
		&p.Reference, &p.Status, &p.PaymentDate, &validatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PaymentMethod = method.String
	if validatedAt.Valid {
		t := validatedAt.Time
		p.ValidatedAt = &t
	}
	return p, nil
}

// ValidatePayment marks a pending payment as validated and posts the
// matching journal entry (debit caisse / credit produit de scolarité)
// in the same transaction.
func ValidatePayment(db *sql.DB, id string) (*models.Payment, error) {
	p, err := getPaymentByID(db, id)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PaymentPending {
		return nil, fmt.Errorf("payment is %s, only pending payments can be validated", p.Status)
	}

	var studentName, matricule string
	err = db.QueryRow(
		`SELECT first_name || ' ' || last_name, matricule FROM students WHERE id = $1`,
		p.StudentID,
	).Scan(&studentName, &matricule)
	if err != nil {
		return nil, fmt.Errorf("loading student: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`UPDATE payments SET status = 'validated', validated_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND status = 'pending'
		 RETURNING status, validated_at`, id,
	).Scan(&p.Status, &p.ValidatedAt)
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	revenueAccount := accountScolarite
	if p.Month == models.PaymentMonthInscription {
		revenueAccount = accountInscription
	}

	label := fmt.Sprintf("Paiement scolarité %s - %s (%s)", p.Month, studentName, matricule)
	var entryID string
	err = tx.QueryRow(
		`INSERT INTO accounting_entries (date, label, operation_type)
		 VALUES (NOW(), $1, 'paiement') RETURNING id`, label,
	).Scan(&entryID)
	if err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}

	lines := `INSERT INTO accounting_lines (entry_id, account_number, sense, amount) VALUES
			  ($1, $2, 'DEBIT', $4),
			  ($1, $3, 'CREDIT', $4)`
	if _, err := tx.Exec(lines, entryID, accountCaisse, revenueAccount, p.Amount); err != nil {
		return nil, fmt.Errorf("creating journal lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// CancelPayment voids a pending payment. Validated payments are immutable;
// corrections go through a manual regularisation entry.
func CancelPayment(db *sql.DB, id string) (*models.Payment, error) {
	p, err := getPaymentByID(db, id)
	if err != nil {
		return nil, err
	}
	if p.Status != models.PaymentPending {
		return nil, fmt.Errorf("payment is %s, only pending payments can be cancelled", p.Status)
	}

	err = db.QueryRow(
		`UPDATE payments SET status = 'cancelled', updated_at = NOW()
		 WHERE id = $1 AND status = 'pending'
		 RETURNING status`, id,
	).Scan(&p.Status)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ClassStat holds collected tuition totals for one class.
type ClassStat struct {
	ClassID        string  `json:"class_id"`
	ClassName      string  `json:"class_name"`
	TotalValidated float64 `json:"total_validated"`
}

// PaymentStats sums validated amounts per class for a school year.
func PaymentStats(db *sql.DB, schoolYear string) ([]ClassStat, error) {
	query := `SELECT c.id, c.name, COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'validated'), 0)
			  FROM classes c
			  LEFT JOIN students s ON s.class_id = c.id AND s.deleted_at IS NULL
			  LEFT JOIN payments p ON p.student_id = s.id AND p.deleted_at IS NULL AND p.school_year = $1
			  WHERE c.deleted_at IS NULL
			  GROUP BY c.id, c.name
			  ORDER BY c.name`

	rows, err := db.Query(query, schoolYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []ClassStat{}
	for rows.Next() {
		var row ClassStat
		if err := rows.Scan(&row.ClassID, &row.ClassName, &row.TotalValidated); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}
	return stats, nil
}
