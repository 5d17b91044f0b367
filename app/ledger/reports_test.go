package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrialBalance(t *testing.T) {
	balances := []AccountBalance{
		balance("571", "300.00", "100.00", "40.00"),
		balance("601", "0", "40.00", "0"),
		balance("7061", "0", "0", "100.00"),
	}

	tb := BuildTrialBalance(balances)
	require.Len(t, tb.Rows, 3)
	assert.True(t, tb.TotalOpening.Equal(dec("300.00")))
	assert.True(t, tb.TotalDebit.Equal(dec("140.00")))
	assert.True(t, tb.TotalCredit.Equal(dec("140.00")))
	assert.True(t, tb.TotalClosing.Equal(dec("300.00")))
	assert.True(t, tb.Rows[0].Closing.Equal(dec("360.00")))
}

func TestBuildGeneralLedger(t *testing.T) {
	opening := map[string]Totals{
		"571": {Debit: dec("500.00"), Credit: dec("100.00")},
	}
	entries := []Entry{
		entry(4, "achat craies", debit("601", "25.00"), credit("571", "25.00")),
		entry(12, "scolarité", debit("571", "150.00"), credit("7061", "150.00")),
	}

	accounts := BuildGeneralLedger(entries, opening, nil, DefaultChart().Label)
	require.Len(t, accounts, 3)

	// Sorted: 571, 601, 7061.
	caisse := accounts[0]
	assert.Equal(t, "571", caisse.AccountNumber)
	assert.Equal(t, "Caisse", caisse.Label)
	assert.True(t, caisse.Opening.Equal(dec("400.00")))
	require.Len(t, caisse.Movements, 2)
	assert.True(t, caisse.Movements[0].Credit.Equal(dec("25.00")))
	assert.True(t, caisse.Movements[1].Debit.Equal(dec("150.00")))
	assert.True(t, caisse.Closing.Equal(dec("525.00")))

	achats := accounts[1]
	assert.Equal(t, "601", achats.AccountNumber)
	assert.True(t, achats.Closing.Equal(dec("25.00")))
}

func TestBuildGeneralLedger_PrefixAndDormantAccounts(t *testing.T) {
	opening := map[string]Totals{
		"521": {Debit: dec("900.00")},
		"661": {Debit: dec("70.00")},
	}
	entries := []Entry{
		entry(4, "retrait", debit("571", "200.00"), credit("521", "200.00")),
	}

	accounts := BuildGeneralLedger(entries, opening, []string{"5"}, nil)
	require.Len(t, accounts, 2)

	// 521 was touched before the period only; it still appears.
	banque := accounts[0]
	assert.Equal(t, "521", banque.AccountNumber)
	require.Len(t, banque.Movements, 1)
	assert.True(t, banque.Closing.Equal(dec("700.00")))

	// 661 is filtered out by the prefix.
	for _, a := range accounts {
		assert.NotEqual(t, "661", a.AccountNumber)
	}
}

func TestBuildGeneralLedger_MovementDates(t *testing.T) {
	entries := []Entry{
		entry(7, "op", debit("571", "10.00"), credit("7061", "10.00")),
	}
	accounts := BuildGeneralLedger(entries, nil, nil, nil)
	require.NotEmpty(t, accounts)
	assert.Equal(t, date(2025, time.January, 7), accounts[0].Movements[0].Date)
}
