package budget

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"gabkut-schola/app/ledger"
	"gabkut-schola/app/models"
	"gabkut-schola/app/routes/accounting"
)

func GetBudgetLines(db *sql.DB, year, month int) ([]*models.BudgetLine, error) {
	query := `SELECT id, year, school_year, month, type, category,
			  planned_amount, actual_amount, COALESCE(account_prefixes, '{}'),
			  created_at, updated_at
			  FROM budget_lines WHERE year = $1`
	args := []interface{}{year}
	if month > 0 {
		query += ` AND month = $2`
		args = append(args, month)
	}
	query += ` ORDER BY month, type, category`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []*models.BudgetLine{}
	for rows.Next() {
		l := &models.BudgetLine{}
		err := rows.Scan(
			&l.ID, &l.Year, &l.SchoolYear, &l.Month, &l.Type, &l.Category,
			&l.PlannedAmount, &l.ActualAmount, &l.AccountPrefixes,
			&l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// UpsertBudgetLine saves a budget line keyed by its logical identity, so
// saving the same line twice updates it instead of duplicating it.
func UpsertBudgetLine(db *sql.DB, l *models.BudgetLine) error {
	return db.QueryRow(
		`INSERT INTO budget_lines (year, school_year, month, type, category,
		 planned_amount, actual_amount, account_prefixes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (type, year, school_year, category, month) DO UPDATE SET
		 planned_amount = EXCLUDED.planned_amount,
		 actual_amount = EXCLUDED.actual_amount,
		 account_prefixes = EXCLUDED.account_prefixes,
		 updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		l.Year, l.SchoolYear, l.Month, string(l.Type), l.Category,
		l.PlannedAmount, l.ActualAmount, pq.Array([]string(l.AccountPrefixes)),
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// reconcileActuals computes the new actual amount per budget line id. Lines
// without account prefixes are omitted so their stored actual survives.
func reconcileActuals(lines []*models.BudgetLine, entries []ledger.Entry) map[string]decimal.Decimal {
	actuals := map[string]decimal.Decimal{}
	for _, l := range lines {
		if len(l.AccountPrefixes) == 0 {
			continue
		}
		actuals[l.ID] = ledger.ActualFromCredits(entries, l.AccountPrefixes)
	}
	return actuals
}

// ReconcileBudget recomputes the actual amount of every budget line in the
// given month from the credit-side ledger movements. All line updates land
// in a single transaction so a store error cannot leave the month half
// reconciled.
func ReconcileBudget(db *sql.DB, year, month int) ([]*models.BudgetLine, error) {
	lines, err := GetBudgetLines(db, year, month)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	entries, err := accounting.GetEntriesBetween(db, from, to)
	if err != nil {
		return nil, err
	}

	actuals := reconcileActuals(lines, entries)

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, l := range lines {
		actual, ok := actuals[l.ID]
		if !ok {
			continue
		}
		_, err := tx.Exec(
			`UPDATE budget_lines SET actual_amount = $2, updated_at = NOW() WHERE id = $1`,
			l.ID, actual.String(),
		)
		if err != nil {
			return nil, err
		}
		l.ActualAmount = actual.InexactFloat64()
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return lines, nil
}
