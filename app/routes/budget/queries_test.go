package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabkut-schola/app/ledger"
	"gabkut-schola/app/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func creditEntry(account, amount string) ledger.Entry {
	return ledger.Entry{
		Date:  time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		Lines: []ledger.Line{
			{AccountNumber: "571", Sense: ledger.Debit, Amount: dec(amount)},
			{AccountNumber: account, Sense: ledger.Credit, Amount: dec(amount)},
		},
	}
}

func TestReconcileActuals(t *testing.T) {
	lines := []*models.BudgetLine{
		{ID: "l-fees", Category: "Scolarité", AccountPrefixes: []string{"706"}},
		{ID: "l-manual", Category: "Divers", ActualAmount: 42},
	}
	entries := []ledger.Entry{
		creditEntry("7061", "25000"),
		creditEntry("7062", "30000"),
		creditEntry("661", "15000"),
	}

	actuals := reconcileActuals(lines, entries)

	require.Contains(t, actuals, "l-fees")
	assert.True(t, actuals["l-fees"].Equal(dec("55000")), "got %s", actuals["l-fees"])

	// A line without prefixes keeps its stored actual untouched.
	assert.NotContains(t, actuals, "l-manual")
}

func TestReconcileActuals_NoMatches(t *testing.T) {
	lines := []*models.BudgetLine{
		{ID: "l-rent", Category: "Loyer", AccountPrefixes: []string{"622"}},
	}
	entries := []ledger.Entry{creditEntry("7061", "25000")}

	actuals := reconcileActuals(lines, entries)

	require.Contains(t, actuals, "l-rent")
	assert.True(t, actuals["l-rent"].IsZero())
}
