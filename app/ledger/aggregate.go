package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Epsilon is the threshold under which a balance counts as zero. Accounts
// whose absolute closing balance falls below it are dropped from the
// income-statement breakdown (but kept in grand-livre and balance rows).
var Epsilon = decimal.RequireFromString("0.005")

// Totals is one debit/credit accumulation bucket for an account.
type Totals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Balance returns the signed balance, debit minus credit.
func (t Totals) Balance() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}

// AccountBalance is the derived per-account view over a period: opening
// balance before the period plus the period's movements.
type AccountBalance struct {
	AccountNumber string          `json:"account_number"`
	Label         string          `json:"label"`
	Opening       decimal.Decimal `json:"opening"`
	PeriodDebit   decimal.Decimal `json:"period_debit"`
	PeriodCredit  decimal.Decimal `json:"period_credit"`
}

// Closing returns opening + period debit - period credit.
func (b AccountBalance) Closing() decimal.Decimal {
	return b.Opening.Add(b.PeriodDebit).Sub(b.PeriodCredit)
}

// MatchesPrefix reports whether the account number starts with one of the
// given prefixes. An empty prefix list matches every account.
func MatchesPrefix(accountNumber string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(accountNumber, p) {
			return true
		}
	}
	return false
}

// Accumulate sums debit and credit amounts per account number over the
// given entries, restricted to the prefix filter.
func Accumulate(entries []Entry, prefixes []string) map[string]Totals {
	totals := make(map[string]Totals)
	for _, e := range entries {
		for _, l := range e.Lines {
			if !MatchesPrefix(l.AccountNumber, prefixes) {
				continue
			}
			t := totals[l.AccountNumber]
			switch l.Sense {
			case Debit:
				t.Debit = t.Debit.Add(l.Amount)
			case Credit:
				t.Credit = t.Credit.Add(l.Amount)
			}
			totals[l.AccountNumber] = t
		}
	}
	return totals
}

// Labels collects the first non-empty line label seen per account number.
func Labels(entrySets ...[]Entry) map[string]string {
	labels := make(map[string]string)
	for _, entries := range entrySets {
		for _, e := range entries {
			for _, l := range e.Lines {
				if l.AccountLabel == "" {
					continue
				}
				if _, ok := labels[l.AccountNumber]; !ok {
					labels[l.AccountNumber] = l.AccountLabel
				}
			}
		}
	}
	return labels
}

// LabelResolver resolves an account number to a display label: the label
// carried on entry lines wins, then the chart of accounts, then "".
func LabelResolver(lineLabels map[string]string, chart *Chart) func(string) string {
	return func(accountNumber string) string {
		if label, ok := lineLabels[accountNumber]; ok && label != "" {
			return label
		}
		if chart != nil {
			return chart.Label(accountNumber)
		}
		return ""
	}
}

// Aggregate merges the opening and period accumulation maps into one
// balance record per account touched before or during the period. The
// result is sorted by account number.
func Aggregate(opening, period map[string]Totals, labelOf func(string) string) []AccountBalance {
	numbers := make(map[string]struct{}, len(opening)+len(period))
	for n := range opening {
		numbers[n] = struct{}{}
	}
	for n := range period {
		numbers[n] = struct{}{}
	}

	balances := make([]AccountBalance, 0, len(numbers))
	for n := range numbers {
		b := AccountBalance{
			AccountNumber: n,
			Opening:       opening[n].Balance(),
			PeriodDebit:   period[n].Debit,
			PeriodCredit:  period[n].Credit,
		}
		if labelOf != nil {
			b.Label = labelOf(n)
		}
		balances = append(balances, b)
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountNumber < balances[j].AccountNumber
	})
	return balances
}

// nearZero reports whether d is within Epsilon of zero.
func nearZero(d decimal.Decimal) bool {
	return d.Abs().LessThan(Epsilon)
}
