package accounting

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"gabkut-schola/app/ledger"
)

// scanEntries reads journal entries with their lines, ordered by date.
// NUMERIC amounts come back as strings and are parsed into decimals so
// no float rounding sneaks in.
func scanEntries(rows *sql.Rows) ([]ledger.Entry, error) {
	defer rows.Close()

	entries := []ledger.Entry{}
	index := map[string]int{}

	for rows.Next() {
		var entryID, label, operationType string
		var date time.Time
		var line ledger.Line
		var amount string
		var accountLabel sql.NullString

		err := rows.Scan(&entryID, &date, &label, &operationType,
			&line.AccountNumber, &accountLabel, &line.Sense, &amount)
		if err != nil {
			return nil, err
		}

		line.AccountLabel = accountLabel.String
		line.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
		}

		i, ok := index[entryID]
		if !ok {
			entries = append(entries, ledger.Entry{
				ID:            entryID,
				Date:          date,
				Label:         label,
				OperationType: operationType,
				Lines:         []ledger.Line{},
			})
			i = len(entries) - 1
			index[entryID] = i
		}
		entries[i].Lines = append(entries[i].Lines, line)
	}
	return entries, rows.Err()
}

const entrySelect = `SELECT e.id, e.date, e.label, e.operation_type,
	l.account_number, l.account_label, l.sense, l.amount::text
	FROM accounting_entries e
	JOIN accounting_lines l ON l.entry_id = e.id`

// GetEntriesBefore loads every entry dated strictly before the cutoff.
// These feed the opening balances of a reporting period.
func GetEntriesBefore(db *sql.DB, cutoff time.Time) ([]ledger.Entry, error) {
	rows, err := db.Query(entrySelect+` WHERE e.date < $1 ORDER BY e.date, e.id`, cutoff)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// GetEntriesBetween loads entries with from <= date <= to.
func GetEntriesBetween(db *sql.DB, from, to time.Time) ([]ledger.Entry, error) {
	rows, err := db.Query(entrySelect+` WHERE e.date >= $1 AND e.date <= $2 ORDER BY e.date, e.id`, from, to)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// CreateEntry posts a manual journal entry and its lines in one transaction.
func CreateEntry(db *sql.DB, e *ledger.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.OperationType == "" {
		e.OperationType = ledger.OperationManuelle
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO accounting_entries (date, label, operation_type)
		 VALUES ($1, $2, $3) RETURNING id`,
		e.Date, e.Label, e.OperationType,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("creating journal entry: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO accounting_lines (entry_id, account_number, account_label, sense, amount)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range e.Lines {
		if _, err := stmt.Exec(e.ID, l.AccountNumber, l.AccountLabel, string(l.Sense), l.Amount.String()); err != nil {
			return fmt.Errorf("creating journal line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	if !e.Balanced() {
		log.Printf("Journal entry %s (%s) is unbalanced", e.ID, e.Label)
	}
	return nil
}

// GetChart loads the chart of accounts from the database, falling back to
// the built-in chart when the table is empty.
func GetChart(db *sql.DB) (*ledger.Chart, error) {
	rows, err := db.Query(`SELECT number, label FROM chart_of_accounts ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []ledger.ChartAccount{}
	for rows.Next() {
		var a ledger.ChartAccount
		if err := rows.Scan(&a.Number, &a.Label); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return ledger.DefaultChart(), nil
	}
	return ledger.NewChart(accounts), nil
}
