package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gabkut-schola/app/routes/budget"
)

// ReconcileCurrentMonthBudget recomputes the actual amounts of the current
// month's budget lines from the accounting journal.
func ReconcileCurrentMonthBudget(db *sql.DB) error {
	now := time.Now()
	log.Printf("Starting budget reconciliation for %d-%02d...", now.Year(), now.Month())

	lines, err := budget.ReconcileBudget(db, now.Year(), int(now.Month()))
	if err != nil {
		return fmt.Errorf("failed to reconcile budget: %v", err)
	}

	log.Printf("Budget reconciliation done, %d lines processed", len(lines))
	return nil
}
