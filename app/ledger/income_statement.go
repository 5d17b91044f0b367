package ledger

import "github.com/shopspring/decimal"

// ResultLine is one account row of the compte de résultat, with a
// positive amount on whichever side it landed.
type ResultLine struct {
	AccountNumber string          `json:"account_number"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
}

// IncomeStatement is the compte de résultat over a period.
type IncomeStatement struct {
	Charges       []ResultLine    `json:"charges"`
	Produits      []ResultLine    `json:"produits"`
	TotalCharges  decimal.Decimal `json:"total_charges"`
	TotalProduits decimal.Decimal `json:"total_produits"`
	Resultat      decimal.Decimal `json:"resultat"`
}

// BuildIncomeStatement classifies class 6 and 7 accounts by the sign of
// their closing balance: a debit-heavy balance is a charge, a credit-heavy
// one a produit, whatever the account class. A class-6 account with a
// credit balance therefore lands in produits (rare contra-entries), and
// symmetrically for class 7. Near-zero balances are dropped.
func BuildIncomeStatement(balances []AccountBalance) IncomeStatement {
	stmt := IncomeStatement{
		Charges:  []ResultLine{},
		Produits: []ResultLine{},
	}

	for _, b := range balances {
		if !IsCharge(b.AccountNumber) && !IsProduit(b.AccountNumber) {
			continue
		}
		closing := b.Closing()
		if nearZero(closing) {
			continue
		}
		line := ResultLine{AccountNumber: b.AccountNumber, Label: b.Label}
		if closing.IsPositive() {
			line.Amount = closing
			stmt.Charges = append(stmt.Charges, line)
			stmt.TotalCharges = stmt.TotalCharges.Add(closing)
		} else {
			line.Amount = closing.Neg()
			stmt.Produits = append(stmt.Produits, line)
			stmt.TotalProduits = stmt.TotalProduits.Add(closing.Neg())
		}
	}

	stmt.Resultat = stmt.TotalProduits.Sub(stmt.TotalCharges)
	return stmt
}
