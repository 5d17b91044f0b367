package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBalanceSheet_LossScenario(t *testing.T) {
	// One entry on day 5: debit 601 / credit 571 for 100. The income
	// statement shows a loss of 100; the bilan balances through the
	// 139 plug.
	entries := []Entry{
		entry(5, "achat fournitures", debit("601", "100.00"), credit("571", "100.00")),
	}
	balances := Aggregate(map[string]Totals{}, Accumulate(entries, nil), nil)

	stmt := BuildIncomeStatement(balances)
	require.Len(t, stmt.Charges, 1)
	assert.Equal(t, "601", stmt.Charges[0].AccountNumber)
	assert.True(t, stmt.TotalCharges.Equal(dec("100.00")))
	assert.True(t, stmt.TotalProduits.IsZero())
	assert.True(t, stmt.Resultat.Equal(dec("-100.00")))

	bs := BuildBalanceSheet(balances, stmt.Resultat)
	require.Len(t, bs.Actif, 1)
	assert.Equal(t, "571", bs.Actif[0].AccountNumber)
	assert.True(t, bs.Actif[0].Amount.Equal(dec("-100.00")))

	require.Len(t, bs.Passif, 1)
	assert.Equal(t, AccountPerte, bs.Passif[0].AccountNumber)
	assert.True(t, bs.Passif[0].IsPlug)
	assert.True(t, bs.TotalActif.Equal(bs.TotalPassif))
}

func TestBuildBalanceSheet_ProfitPlugMatchesResultat(t *testing.T) {
	entries := []Entry{
		entry(3, "scolarité janvier", debit("571", "500.00"), credit("7061", "500.00")),
		entry(9, "salaires", debit("661", "300.00"), credit("571", "300.00")),
	}
	balances := Aggregate(map[string]Totals{}, Accumulate(entries, nil), nil)
	stmt := BuildIncomeStatement(balances)
	require.True(t, stmt.Resultat.Equal(dec("200.00")))

	bs := BuildBalanceSheet(balances, stmt.Resultat)

	var plug *BilanLine
	for i := range bs.Passif {
		if bs.Passif[i].IsPlug {
			plug = &bs.Passif[i]
		}
	}
	require.NotNil(t, plug, "profit must be injected into the passif")
	assert.Equal(t, AccountBenefice, plug.AccountNumber)
	assert.True(t, plug.Amount.Equal(stmt.Resultat), "bilan plug must equal the compte de résultat's resultat")
	assert.True(t, bs.TotalActif.Sub(bs.TotalPassif).Abs().LessThan(Epsilon))
}

func TestBuildBalanceSheet_CapitalPlug(t *testing.T) {
	// Treasury carries an opening balance with no matching equity: the
	// residual is plugged on account 10.
	opening := map[string]Totals{
		"571": {Debit: dec("1000.00")},
	}
	balances := Aggregate(opening, map[string]Totals{}, nil)

	bs := BuildBalanceSheet(balances, dec("0"))
	require.Len(t, bs.Passif, 1)
	assert.Equal(t, AccountEquilibre, bs.Passif[0].AccountNumber)
	assert.True(t, bs.Passif[0].IsPlug)
	assert.True(t, bs.Passif[0].Amount.Equal(dec("1000.00")))
	assert.True(t, bs.TotalActif.Equal(bs.TotalPassif))
}

func TestBuildBalanceSheet_NoCapitalPlugWhenCapitalExists(t *testing.T) {
	// A real class-10 account on the books suppresses the equilibrium
	// plug even if the sides disagree.
	opening := map[string]Totals{
		"571": {Debit: dec("1000.00")},
		"10":  {Credit: dec("700.00")},
	}
	balances := Aggregate(opening, map[string]Totals{}, nil)

	bs := BuildBalanceSheet(balances, dec("0"))
	for _, l := range bs.Passif {
		assert.NotEqual(t, "Capital / équilibre du bilan", l.Label)
	}
	assert.True(t, bs.TotalActif.Equal(dec("1000.00")))
	assert.True(t, bs.TotalPassif.Equal(dec("700.00")))
}

func TestBuildBalanceSheet_ClassFourFollowsSign(t *testing.T) {
	balances := []AccountBalance{
		// Debit-heavy tiers account: receivable, actif side.
		balance("411", "0", "250.00", "100.00"),
		// Credit-heavy tiers account: payable, passif side.
		balance("401", "0", "20.00", "90.00"),
	}

	bs := BuildBalanceSheet(balances, dec("0"))
	require.Len(t, bs.Actif, 1)
	assert.Equal(t, "411", bs.Actif[0].AccountNumber)
	assert.True(t, bs.Actif[0].Amount.Equal(dec("150.00")))

	require.Len(t, bs.Passif, 2) // 401 + equilibrium plug
	assert.Equal(t, "401", bs.Passif[0].AccountNumber)
	assert.True(t, bs.Passif[0].Amount.Equal(dec("70.00")))
}

func TestBuildBalanceSheet_AmortissementsSubtract(t *testing.T) {
	balances := []AccountBalance{
		balance("241", "0", "1000.00", "0"),
		// Credit-sign 28 balance stays on the actif side, negative.
		balance("284", "0", "0", "400.00"),
	}

	bs := BuildBalanceSheet(balances, dec("0"))
	require.Len(t, bs.Actif, 2)
	assert.Equal(t, "284", bs.Actif[1].AccountNumber)
	assert.True(t, bs.Actif[1].Amount.Equal(dec("-400.00")))
	assert.True(t, bs.TotalActif.Equal(dec("600.00")))
}

func TestBuildBalanceSheet_EmptyPeriod(t *testing.T) {
	bs := BuildBalanceSheet(nil, dec("0"))
	assert.Empty(t, bs.Actif)
	assert.Empty(t, bs.Passif)
	assert.True(t, bs.TotalActif.IsZero())
	assert.True(t, bs.TotalPassif.IsZero())
}

func TestClassificationOf(t *testing.T) {
	cases := []struct {
		account string
		rule    Rule
	}{
		{"10", RulePassif},
		{"16", RulePassif},
		{"241", RuleActif},
		{"284", RuleContraActif},
		{"28", RuleContraActif},
		{"311", RuleActif},
		{"411", RuleParSigne},
		{"521", RuleActif},
		{"601", RuleHorsBilan},
		{"7061", RuleHorsBilan},
	}
	for _, c := range cases {
		assert.Equal(t, c.rule, ClassificationOf(c.account), "account %s", c.account)
	}
}
