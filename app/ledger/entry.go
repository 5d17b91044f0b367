package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sense marks which side of the journal a line sits on.
type Sense string

const (
	Debit  Sense = "DEBIT"
	Credit Sense = "CREDIT"
)

// Operation types attached to journal entries.
const (
	OperationManuelle       = "manuelle"
	OperationPaiement       = "paiement"
	OperationDepense        = "depense"
	OperationRegularisation = "regularisation"
)

// Line is one debit or credit movement inside a journal entry. The account
// label travels with the line; when blank, reports fall back to the chart
// of accounts.
type Line struct {
	AccountNumber string          `json:"account_number"`
	AccountLabel  string          `json:"account_label"`
	Sense         Sense           `json:"sense"`
	Amount        decimal.Decimal `json:"amount"`
}

// Entry is one journal posting. Entries are immutable once posted;
// corrections go through new regularisation entries.
type Entry struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Label         string    `json:"label"`
	OperationType string    `json:"operation_type"`
	Lines         []Line    `json:"lines"`
}

var (
	ErrTooFewLines    = errors.New("ledger: entry requires at least two lines")
	ErrMissingAccount = errors.New("ledger: line missing account number")
)

// Validate checks entry lines for well-formedness. A debit/credit imbalance
// is tolerated here: unbalanced entries are accepted and only reported by
// Balanced, matching how manual postings behave.
func (e *Entry) Validate() error {
	if len(e.Lines) < 2 {
		return ErrTooFewLines
	}
	for i, l := range e.Lines {
		if l.AccountNumber == "" {
			return fmt.Errorf("line %d: %w", i, ErrMissingAccount)
		}
		if l.Sense != Debit && l.Sense != Credit {
			return fmt.Errorf("ledger: line %d has invalid sense %q", i, l.Sense)
		}
		if l.Amount.IsNegative() {
			return fmt.Errorf("ledger: line %d has negative amount %s", i, l.Amount)
		}
	}
	return nil
}

// Balanced reports whether debit and credit totals match within epsilon.
func (e *Entry) Balanced() bool {
	var debit, credit decimal.Decimal
	for _, l := range e.Lines {
		switch l.Sense {
		case Debit:
			debit = debit.Add(l.Amount)
		case Credit:
			credit = credit.Add(l.Amount)
		}
	}
	return debit.Sub(credit).Abs().LessThan(Epsilon)
}
