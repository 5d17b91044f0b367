package expenses

import (
	"database/sql"
	"fmt"
	"time"

	"gabkut-schola/app/models"
)

const (
	accountCaisse         = "571"
	defaultExpenseAccount = "601"
)

// ExpenseFilters narrows expense listings to a category or date window.
type ExpenseFilters struct {
	CategoryID string
	From       time.Time
	To         time.Time
}

func GetExpenses(db *sql.DB, filters ExpenseFilters) ([]*models.Expense, error) {
	where := `e.deleted_at IS NULL`
	args := []interface{}{}
	idx := 1

	if filters.CategoryID != "" {
		where += fmt.Sprintf(" AND e.category_id = $%d", idx)
		args = append(args, filters.CategoryID)
		idx++
	}
	if !filters.From.IsZero() {
		where += fmt.Sprintf(" AND e.date >= $%d", idx)
		args = append(args, filters.From)
		idx++
	}
	if !filters.To.IsZero() {
		where += fmt.Sprintf(" AND e.date <= $%d", idx)
		args = append(args, filters.To)
		idx++
	}

	query := `SELECT e.id, e.category_id, e.title, e.amount, e.currency, e.date,
			  COALESCE(e.notes, ''), e.created_at, e.updated_at,
			  c.name, COALESCE(c.account_number, '')
			  FROM expenses e
			  JOIN categories c ON e.category_id = c.id
			  WHERE ` + where + `
			  ORDER BY e.date DESC, e.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e := &models.Expense{}
		var categoryName, accountNumber string
		err := rows.Scan(
			&e.ID, &e.CategoryID, &e.Title, &e.Amount, &e.Currency, &e.Date,
			&e.Notes, &e.CreatedAt, &e.UpdatedAt,
			&categoryName, &accountNumber,
		)
		if err != nil {
			return nil, err
		}
		e.Category = &models.Category{
			ID:            e.CategoryID,
			Name:          categoryName,
			AccountNumber: accountNumber,
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// CreateExpense records the expense and its journal entry (debit on the
// category's expense account, credit on the cash account) in one transaction.
func CreateExpense(db *sql.DB, e *models.Expense) error {
	var categoryName string
	var accountNumber sql.NullString
	err := db.QueryRow(
		`SELECT name, account_number FROM categories WHERE id = $1 AND deleted_at IS NULL AND is_active`,
		e.CategoryID,
	).Scan(&categoryName, &accountNumber)
	if err != nil {
		return err
	}

	expenseAccount := accountNumber.String
	if expenseAccount == "" {
		expenseAccount = defaultExpenseAccount
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO expenses (category_id, title, amount, currency, date, notes)
		 VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'CDF'), $5, NULLIF($6, ''))
		 RETURNING id, currency, created_at, updated_at`,
		e.CategoryID, e.Title, e.Amount, e.Currency, e.Date, e.Notes,
	).Scan(&e.ID, &e.Currency, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}

	label := fmt.Sprintf("Dépense %s - %s", categoryName, e.Title)
	var entryID string
	err = tx.QueryRow(
		`INSERT INTO accounting_entries (date, label, operation_type)
		 VALUES ($1, $2, 'depense') RETURNING id`, e.Date, label,
	).Scan(&entryID)
	if err != nil {
		return fmt.Errorf("creating journal entry: %w", err)
	}

	lines := `INSERT INTO accounting_lines (entry_id, account_number, sense, amount) VALUES
			  ($1, $2, 'DEBIT', $4),
			  ($1, $3, 'CREDIT', $4)`
	if _, err := tx.Exec(lines, entryID, expenseAccount, accountCaisse, e.Amount); err != nil {
		return fmt.Errorf("creating journal lines: %w", err)
	}

	return tx.Commit()
}

func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec(
		`UPDATE expenses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id,
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

func GetCategories(db *sql.DB) ([]*models.Category, error) {
	rows, err := db.Query(
		`SELECT id, name, COALESCE(account_number, ''), is_active, created_at, updated_at
		 FROM categories WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		cat := &models.Category{}
		err := rows.Scan(&cat.ID, &cat.Name, &cat.AccountNumber, &cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func CreateCategory(db *sql.DB, cat *models.Category) error {
	return db.QueryRow(
		`INSERT INTO categories (name, account_number, is_active)
		 VALUES ($1, NULLIF($2, ''), true)
		 RETURNING id, is_active, created_at, updated_at`,
		cat.Name, cat.AccountNumber,
	).Scan(&cat.ID, &cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt)
}

func UpdateCategory(db *sql.DB, cat *models.Category) error {
	return db.QueryRow(
		`UPDATE categories SET name = $2, account_number = NULLIF($3, ''), is_active = $4, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING updated_at`,
		cat.ID, cat.Name, cat.AccountNumber, cat.IsActive,
	).Scan(&cat.UpdatedAt)
}
