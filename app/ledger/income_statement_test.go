package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balance(account string, opening, debit, credit string) AccountBalance {
	return AccountBalance{
		AccountNumber: account,
		Opening:       dec(opening),
		PeriodDebit:   dec(debit),
		PeriodCredit:  dec(credit),
	}
}

func TestBuildIncomeStatement(t *testing.T) {
	balances := []AccountBalance{
		balance("601", "0", "100.00", "0"),
		balance("661", "0", "450.00", "0"),
		balance("7061", "0", "0", "800.00"),
		balance("571", "0", "800.00", "550.00"), // treasury, ignored here
	}

	stmt := BuildIncomeStatement(balances)
	require.Len(t, stmt.Charges, 2)
	require.Len(t, stmt.Produits, 1)
	assert.True(t, stmt.TotalCharges.Equal(dec("550.00")))
	assert.True(t, stmt.TotalProduits.Equal(dec("800.00")))
	assert.True(t, stmt.Resultat.Equal(dec("250.00")))
}

func TestBuildIncomeStatement_ClassifiesBySign(t *testing.T) {
	balances := []AccountBalance{
		// Class-6 account with a credit-heavy balance: contra-entry,
		// lands in produits.
		balance("601", "0", "20.00", "70.00"),
		// Class-7 account with a debit-heavy balance: lands in charges.
		balance("7061", "0", "30.00", "10.00"),
	}

	stmt := BuildIncomeStatement(balances)
	require.Len(t, stmt.Produits, 1)
	assert.Equal(t, "601", stmt.Produits[0].AccountNumber)
	assert.True(t, stmt.Produits[0].Amount.Equal(dec("50.00")))

	require.Len(t, stmt.Charges, 1)
	assert.Equal(t, "7061", stmt.Charges[0].AccountNumber)
	assert.True(t, stmt.Charges[0].Amount.Equal(dec("20.00")))
}

func TestBuildIncomeStatement_DropsNearZero(t *testing.T) {
	balances := []AccountBalance{
		// Opening debit 50 fully consumed by a period credit of 50.
		balance("601", "50.00", "0", "50.00"),
		balance("604", "0", "0.004", "0"),
		balance("7061", "0", "0", "120.00"),
	}

	stmt := BuildIncomeStatement(balances)
	assert.Empty(t, stmt.Charges)
	require.Len(t, stmt.Produits, 1)
	assert.True(t, stmt.Resultat.Equal(dec("120.00")))

	// The same zero account still shows up in the trial balance.
	tb := BuildTrialBalance(balances)
	require.Len(t, tb.Rows, 3)
	assert.Equal(t, "601", tb.Rows[0].AccountNumber)
	assert.True(t, tb.Rows[0].Closing.IsZero())
}

func TestBuildIncomeStatement_CarriesOpeningForward(t *testing.T) {
	// Prior-period balances as of the range start count toward the
	// closing used for classification.
	balances := []AccountBalance{
		balance("661", "300.00", "100.00", "0"),
	}

	stmt := BuildIncomeStatement(balances)
	require.Len(t, stmt.Charges, 1)
	assert.True(t, stmt.Charges[0].Amount.Equal(dec("400.00")))
}

func TestBuildIncomeStatement_Empty(t *testing.T) {
	stmt := BuildIncomeStatement(nil)
	assert.Empty(t, stmt.Charges)
	assert.Empty(t, stmt.Produits)
	assert.True(t, stmt.Resultat.IsZero())
}
