package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account row of the balance des comptes. Zero and
// near-zero balances are kept here, unlike the income statement.
type TrialBalanceRow struct {
	AccountNumber string          `json:"account_number"`
	Label         string          `json:"label"`
	Opening       decimal.Decimal `json:"opening"`
	PeriodDebit   decimal.Decimal `json:"period_debit"`
	PeriodCredit  decimal.Decimal `json:"period_credit"`
	Closing       decimal.Decimal `json:"closing"`
}

// TrialBalance lists every account touched before or during the period
// with its movement totals.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalOpening decimal.Decimal   `json:"total_opening"`
	TotalDebit   decimal.Decimal   `json:"total_debit"`
	TotalCredit  decimal.Decimal   `json:"total_credit"`
	TotalClosing decimal.Decimal   `json:"total_closing"`
}

// BuildTrialBalance converts aggregated balances into trial balance rows
// with grand totals.
func BuildTrialBalance(balances []AccountBalance) TrialBalance {
	tb := TrialBalance{Rows: []TrialBalanceRow{}}
	for _, b := range balances {
		row := TrialBalanceRow{
			AccountNumber: b.AccountNumber,
			Label:         b.Label,
			Opening:       b.Opening,
			PeriodDebit:   b.PeriodDebit,
			PeriodCredit:  b.PeriodCredit,
			Closing:       b.Closing(),
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalOpening = tb.TotalOpening.Add(row.Opening)
		tb.TotalDebit = tb.TotalDebit.Add(row.PeriodDebit)
		tb.TotalCredit = tb.TotalCredit.Add(row.PeriodCredit)
		tb.TotalClosing = tb.TotalClosing.Add(row.Closing)
	}
	return tb
}

// Movement is one journal line replayed in a grand-livre account.
type Movement struct {
	EntryID string          `json:"entry_id"`
	Date    time.Time       `json:"date"`
	Label   string          `json:"label"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// GeneralLedgerAccount is the per-account detail of the grand livre:
// opening balance, each period movement, and the closing balance.
type GeneralLedgerAccount struct {
	AccountNumber string          `json:"account_number"`
	Label         string          `json:"label"`
	Opening       decimal.Decimal `json:"opening"`
	Movements     []Movement      `json:"movements"`
	PeriodDebit   decimal.Decimal `json:"period_debit"`
	PeriodCredit  decimal.Decimal `json:"period_credit"`
	Closing       decimal.Decimal `json:"closing"`
}

// BuildGeneralLedger replays the period's entries account by account on
// top of the opening totals. Accounts only touched before the period still
// appear, with an empty movement list.
func BuildGeneralLedger(periodEntries []Entry, opening map[string]Totals, prefixes []string, labelOf func(string) string) []GeneralLedgerAccount {
	accounts := make(map[string]*GeneralLedgerAccount)

	get := func(number string) *GeneralLedgerAccount {
		a, ok := accounts[number]
		if !ok {
			a = &GeneralLedgerAccount{AccountNumber: number, Movements: []Movement{}}
			if labelOf != nil {
				a.Label = labelOf(number)
			}
			accounts[number] = a
		}
		return a
	}

	for number, totals := range opening {
		if !MatchesPrefix(number, prefixes) {
			continue
		}
		get(number).Opening = totals.Balance()
	}

	for _, e := range periodEntries {
		for _, l := range e.Lines {
			if !MatchesPrefix(l.AccountNumber, prefixes) {
				continue
			}
			a := get(l.AccountNumber)
			m := Movement{EntryID: e.ID, Date: e.Date, Label: e.Label}
			switch l.Sense {
			case Debit:
				m.Debit = l.Amount
				a.PeriodDebit = a.PeriodDebit.Add(l.Amount)
			case Credit:
				m.Credit = l.Amount
				a.PeriodCredit = a.PeriodCredit.Add(l.Amount)
			}
			a.Movements = append(a.Movements, m)
		}
	}

	result := make([]GeneralLedgerAccount, 0, len(accounts))
	for _, a := range accounts {
		a.Closing = a.Opening.Add(a.PeriodDebit).Sub(a.PeriodCredit)
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AccountNumber < result[j].AccountNumber
	})
	return result
}
