package ledger

import "github.com/shopspring/decimal"

// ActualFromCredits sums the CREDIT-side amounts on accounts matching the
// given prefixes. Budget reconciliation treats matched credits as realized
// expense for the month; there is no carry-forward across months.
func ActualFromCredits(entries []Entry, prefixes []string) decimal.Decimal {
	var total decimal.Decimal
	if len(prefixes) == 0 {
		return total
	}
	for _, e := range entries {
		for _, l := range e.Lines {
			if l.Sense != Credit {
				continue
			}
			if !MatchesPrefix(l.AccountNumber, prefixes) {
				continue
			}
			total = total.Add(l.Amount)
		}
	}
	return total
}
