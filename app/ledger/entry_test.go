package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryValidate(t *testing.T) {
	e := entry(5, "ok", debit("601", "100.00"), credit("571", "100.00"))
	require.NoError(t, e.Validate())

	short := entry(5, "short", debit("601", "100.00"))
	assert.ErrorIs(t, short.Validate(), ErrTooFewLines)

	missing := entry(5, "missing", debit("", "10.00"), credit("571", "10.00"))
	assert.ErrorIs(t, missing.Validate(), ErrMissingAccount)

	badSense := entry(5, "sense",
		Line{AccountNumber: "601", Sense: "BOTH", Amount: dec("10")},
		credit("571", "10"))
	assert.Error(t, badSense.Validate())

	negative := entry(5, "negative", debit("601", "-5.00"), credit("571", "5.00"))
	assert.Error(t, negative.Validate())
}

func TestEntryValidate_ToleratesImbalance(t *testing.T) {
	// Unbalanced entries are accepted at write time; Balanced only
	// reports the condition.
	e := entry(5, "imbalance", debit("601", "100.00"), credit("571", "40.00"))
	require.NoError(t, e.Validate())
	assert.False(t, e.Balanced())

	b := entry(5, "balanced", debit("601", "100.00"), credit("571", "100.00"))
	assert.True(t, b.Balanced())
}

func TestActualFromCredits(t *testing.T) {
	entries := []Entry{
		entry(2, "salaires", debit("661", "300.00"), credit("571", "300.00")),
		entry(9, "fournitures", debit("601", "45.00"), credit("571", "45.00")),
		entry(15, "scolarité", debit("571", "200.00"), credit("7061", "200.00")),
	}

	// Credits on treasury accounts: both expense payouts.
	actual := ActualFromCredits(entries, []string{"57"})
	assert.True(t, actual.Equal(dec("345.00")))

	// No prefixes configured: nothing is recomputed.
	assert.True(t, ActualFromCredits(entries, nil).IsZero())

	// Prefix with no matching credits.
	assert.True(t, ActualFromCredits(entries, []string{"66"}).IsZero())
}
