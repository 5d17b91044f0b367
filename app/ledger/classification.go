package ledger

import "strings"

// Rule names the balance-sheet classification applied to an account class.
// The sign-dependent rules for classes 4 and 28 mirror how the books have
// always been presented; do not "correct" them without the comptable.
type Rule int

const (
	// RulePassif puts the account on the liabilities side (class 1).
	RulePassif Rule = iota
	// RuleActif puts the account on the assets side (classes 2, 3, 5).
	RuleActif
	// RuleContraActif keeps the account on the assets side where a
	// credit-sign balance subtracts from it (class 28, amortissements).
	RuleContraActif
	// RuleParSigne sends the account to whichever side its balance sign
	// points at: debit-heavy is a receivable, credit-heavy a payable
	// (class 4, comptes de tiers).
	RuleParSigne
	// RuleHorsBilan excludes the account from the balance sheet
	// (classes 6 and 7 flow through the income statement instead).
	RuleHorsBilan
)

// ClassificationOf returns the balance-sheet rule for an account number.
// "28" is checked before the generic class-2 rule.
func ClassificationOf(accountNumber string) Rule {
	if strings.HasPrefix(accountNumber, "28") {
		return RuleContraActif
	}
	switch {
	case strings.HasPrefix(accountNumber, "1"):
		return RulePassif
	case strings.HasPrefix(accountNumber, "2"),
		strings.HasPrefix(accountNumber, "3"),
		strings.HasPrefix(accountNumber, "5"):
		return RuleActif
	case strings.HasPrefix(accountNumber, "4"):
		return RuleParSigne
	default:
		return RuleHorsBilan
	}
}

// IsCharge reports whether the account belongs to class 6 (charges).
func IsCharge(accountNumber string) bool {
	return strings.HasPrefix(accountNumber, "6")
}

// IsProduit reports whether the account belongs to class 7 (produits).
func IsProduit(accountNumber string) bool {
	return strings.HasPrefix(accountNumber, "7")
}

// isCapitalAccount reports whether a real capital account (class 10) is
// present; the bilan equilibrium plug is suppressed when one exists.
func isCapitalAccount(accountNumber string) bool {
	return strings.HasPrefix(accountNumber, "10")
}
