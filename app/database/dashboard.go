package database

import (
	"database/sql"
	"fmt"
	"time"

	"gabkut-schola/app/models"
)

// monthsPerSchoolYear is the number of billable tuition months
// (September through June).
const monthsPerSchoolYear = 10

// GetDashboardStats computes the admin dashboard KPIs for a school year:
// headcounts, revenue collected this month, the tuition collection rate,
// and outstanding receivables.
func GetDashboardStats(db *sql.DB, schoolYear string) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL AND school_year = $1`,
		schoolYear,
	).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, fmt.Errorf("counting students: %w", err)
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM classes WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalClasses)
	if err != nil {
		return nil, fmt.Errorf("counting classes: %w", err)
	}

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	err = db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM payments
		 WHERE status = 'validated' AND deleted_at IS NULL AND payment_date >= $1`,
		monthStart,
	).Scan(&stats.MonthlyRevenue)
	if err != nil {
		return nil, fmt.Errorf("summing monthly revenue: %w", err)
	}

	// Expected tuition for the year: enrollment fee plus the monthly fee
	// over the school calendar, per active student.
	var expected, collected float64
	err = db.QueryRow(
		`SELECT COALESCE(SUM(c.frais_inscription + c.frais_mensuel * $2), 0)
		 FROM students s
		 JOIN classes c ON s.class_id = c.id
		 WHERE s.is_active = true AND s.deleted_at IS NULL AND s.school_year = $1`,
		schoolYear, monthsPerSchoolYear,
	).Scan(&expected)
	if err != nil {
		return nil, fmt.Errorf("summing expected tuition: %w", err)
	}

	err = db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM payments
		 WHERE status = 'validated' AND deleted_at IS NULL AND school_year = $1`,
		schoolYear,
	).Scan(&collected)
	if err != nil {
		return nil, fmt.Errorf("summing collected tuition: %w", err)
	}

	if expected > 0 {
		stats.FeeCollectionRate = collected / expected * 100
	}
	stats.Receivables = expected - collected
	if stats.Receivables < 0 {
		stats.Receivables = 0
	}

	activities, err := getRecentPaymentActivities(db)
	if err != nil {
		return nil, err
	}
	stats.RecentActivities = activities

	return stats, nil
}

func getRecentPaymentActivities(db *sql.DB) ([]models.Activity, error) {
	query := `SELECT p.amount, p.month, p.payment_date, s.first_name, s.last_name
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  WHERE p.status = 'validated' AND p.deleted_at IS NULL
			  ORDER BY p.payment_date DESC
			  LIMIT 5`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var amount float64
		var month string
		var paidAt time.Time
		var firstName, lastName string
		if err := rows.Scan(&amount, &month, &paidAt, &firstName, &lastName); err != nil {
			return nil, err
		}
		activities = append(activities, models.Activity{
			Type:        "payment",
			Title:       "Paiement de scolarité reçu",
			Description: fmt.Sprintf("%.2f - %s %s (%s)", amount, firstName, lastName, month),
			RawTime:     paidAt,
		})
	}
	return activities, nil
}
