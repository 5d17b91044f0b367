package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(day int, label string, lines ...Line) Entry {
	return Entry{
		ID:            label,
		Date:          date(2025, time.January, day),
		Label:         label,
		OperationType: OperationManuelle,
		Lines:         lines,
	}
}

func debit(account, amount string) Line {
	return Line{AccountNumber: account, Sense: Debit, Amount: dec(amount)}
}

func credit(account, amount string) Line {
	return Line{AccountNumber: account, Sense: Credit, Amount: dec(amount)}
}

func TestAccumulate(t *testing.T) {
	entries := []Entry{
		entry(5, "fournitures", debit("601", "100.00"), credit("571", "100.00")),
		entry(8, "scolarité", debit("571", "250.00"), credit("7061", "250.00")),
	}

	totals := Accumulate(entries, nil)
	require.Len(t, totals, 3)
	assert.True(t, totals["601"].Debit.Equal(dec("100.00")))
	assert.True(t, totals["571"].Debit.Equal(dec("250.00")))
	assert.True(t, totals["571"].Credit.Equal(dec("100.00")))
	assert.True(t, totals["7061"].Credit.Equal(dec("250.00")))
	assert.True(t, totals["571"].Balance().Equal(dec("150.00")))
}

func TestAccumulate_PrefixFilter(t *testing.T) {
	entries := []Entry{
		entry(5, "fournitures", debit("601", "100.00"), credit("571", "100.00")),
		entry(8, "scolarité", debit("571", "250.00"), credit("7061", "250.00")),
	}

	totals := Accumulate(entries, []string{"6", "7"})
	require.Len(t, totals, 2)
	assert.Contains(t, totals, "601")
	assert.Contains(t, totals, "7061")
	assert.NotContains(t, totals, "571")
}

func TestMatchesPrefix(t *testing.T) {
	assert.True(t, MatchesPrefix("571", nil))
	assert.True(t, MatchesPrefix("571", []string{"5"}))
	assert.True(t, MatchesPrefix("2811", []string{"28"}))
	assert.False(t, MatchesPrefix("601", []string{"5", "7"}))
}

func TestAggregate_MergesOpeningAndPeriod(t *testing.T) {
	opening := map[string]Totals{
		"571": {Debit: dec("500.00"), Credit: dec("200.00")},
		"401": {Credit: dec("80.00")},
	}
	period := map[string]Totals{
		"571": {Debit: dec("100.00")},
		"601": {Debit: dec("40.00")},
	}

	balances := Aggregate(opening, period, nil)
	require.Len(t, balances, 3)

	// Sorted by account number: 401, 571, 601.
	assert.Equal(t, "401", balances[0].AccountNumber)
	assert.True(t, balances[0].Opening.Equal(dec("-80.00")))
	assert.True(t, balances[0].Closing().Equal(dec("-80.00")))

	assert.Equal(t, "571", balances[1].AccountNumber)
	assert.True(t, balances[1].Opening.Equal(dec("300.00")))
	assert.True(t, balances[1].Closing().Equal(dec("400.00")))

	assert.Equal(t, "601", balances[2].AccountNumber)
	assert.True(t, balances[2].Opening.IsZero())
	assert.True(t, balances[2].Closing().Equal(dec("40.00")))
}

func TestAggregate_ClosingProperty(t *testing.T) {
	before := []Entry{
		entry(1, "report", debit("571", "50.00"), credit("7061", "50.00")),
	}
	during := []Entry{
		entry(10, "achat", debit("601", "30.00"), credit("571", "30.00")),
	}

	balances := Aggregate(Accumulate(before, nil), Accumulate(during, nil), nil)
	for _, b := range balances {
		assert.True(t, b.Closing().Equal(b.Opening.Add(b.PeriodDebit).Sub(b.PeriodCredit)),
			"closing must equal opening + debit - credit for %s", b.AccountNumber)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := []Entry{
		entry(5, "fournitures", debit("601", "100.00"), credit("571", "100.00")),
		entry(8, "scolarité", debit("571", "250.00"), credit("7061", "250.00")),
	}

	first := Aggregate(Accumulate(nil, nil), Accumulate(entries, nil), nil)
	second := Aggregate(Accumulate(nil, nil), Accumulate(entries, nil), nil)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].AccountNumber, second[i].AccountNumber)
		assert.True(t, first[i].Closing().Equal(second[i].Closing()))
	}
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	balances := Aggregate(map[string]Totals{}, map[string]Totals{}, nil)
	assert.Empty(t, balances)
}

func TestLabelResolver_FallbackChain(t *testing.T) {
	entries := []Entry{
		entry(5, "op", Line{AccountNumber: "601", AccountLabel: "Fournitures bureau", Sense: Debit, Amount: dec("10")},
			credit("571", "10")),
	}
	resolve := LabelResolver(Labels(entries), DefaultChart())

	// Line label wins over the chart.
	assert.Equal(t, "Fournitures bureau", resolve("601"))
	// No line label: chart of accounts.
	assert.Equal(t, "Caisse", resolve("571"))
	// Unknown everywhere: empty string.
	assert.Equal(t, "", resolve("9999"))
}
