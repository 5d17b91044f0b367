package ledger

import "github.com/shopspring/decimal"

// Plug account numbers injected into the passif.
const (
	AccountBenefice  = "131"
	AccountPerte     = "139"
	AccountEquilibre = "10"
)

// BilanLine is one account row of the balance sheet. Amounts are signed:
// a credit-sign treasury account shows as a negative actif line, and the
// loss plug as a negative passif line, so that side totals stay honest.
type BilanLine struct {
	AccountNumber string          `json:"account_number"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
	IsPlug        bool            `json:"is_plug,omitempty"`
}

// BalanceSheet is the bilan over a period. After plug injection,
// TotalActif equals TotalPassif within Epsilon by construction.
type BalanceSheet struct {
	Actif       []BilanLine     `json:"actif"`
	Passif      []BilanLine     `json:"passif"`
	TotalActif  decimal.Decimal `json:"total_actif"`
	TotalPassif decimal.Decimal `json:"total_passif"`
	Resultat    decimal.Decimal `json:"resultat"`
}

// BuildBalanceSheet classifies class 1-5 and 28 accounts into actif and
// passif per ClassificationOf, injects the period's resultat as a plug
// line (131 bénéfice / 139 perte), and, when the two sides still disagree
// and no real capital account is on the books, injects a residual capital
// plug on account 10. An empty period yields an all-zero bilan with no
// plug lines.
func BuildBalanceSheet(balances []AccountBalance, resultat decimal.Decimal) BalanceSheet {
	bs := BalanceSheet{
		Actif:    []BilanLine{},
		Passif:   []BilanLine{},
		Resultat: resultat,
	}

	hasCapital := false
	for _, b := range balances {
		closing := b.Closing()
		if closing.IsZero() {
			continue
		}
		line := BilanLine{AccountNumber: b.AccountNumber, Label: b.Label}
		switch ClassificationOf(b.AccountNumber) {
		case RulePassif:
			if isCapitalAccount(b.AccountNumber) {
				hasCapital = true
			}
			// Passif shows credit-heavy balances as positive.
			line.Amount = closing.Neg()
			bs.Passif = append(bs.Passif, line)
			bs.TotalPassif = bs.TotalPassif.Add(line.Amount)
		case RuleActif, RuleContraActif:
			// A credit-sign 28 balance comes through negative here and
			// subtracts from the actif total.
			line.Amount = closing
			bs.Actif = append(bs.Actif, line)
			bs.TotalActif = bs.TotalActif.Add(line.Amount)
		case RuleParSigne:
			if closing.IsPositive() {
				line.Amount = closing
				bs.Actif = append(bs.Actif, line)
				bs.TotalActif = bs.TotalActif.Add(line.Amount)
			} else {
				line.Amount = closing.Neg()
				bs.Passif = append(bs.Passif, line)
				bs.TotalPassif = bs.TotalPassif.Add(line.Amount)
			}
		case RuleHorsBilan:
			continue
		}
	}

	// Net result plug: bénéfice raises the passif, perte lowers it.
	if !nearZero(resultat) {
		plug := BilanLine{AccountNumber: AccountPerte, Label: "Résultat net : perte", Amount: resultat, IsPlug: true}
		if resultat.IsPositive() {
			plug.AccountNumber = AccountBenefice
			plug.Label = "Résultat net : bénéfice"
		}
		bs.Passif = append(bs.Passif, plug)
		bs.TotalPassif = bs.TotalPassif.Add(plug.Amount)
	}

	// Residual capital plug, only when the books carry no capital account.
	if imbalance := bs.TotalActif.Sub(bs.TotalPassif); !nearZero(imbalance) && !hasCapital {
		plug := BilanLine{
			AccountNumber: AccountEquilibre,
			Label:         "Capital / équilibre du bilan",
			Amount:        imbalance,
			IsPlug:        true,
		}
		bs.Passif = append(bs.Passif, plug)
		bs.TotalPassif = bs.TotalPassif.Add(imbalance)
	}

	return bs
}
