package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// PaymentStatus defines the lifecycle of a tuition payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentValidated PaymentStatus = "validated"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentMonth values follow the school calendar (september..june), plus
// "inscription" for the enrollment fee.
const PaymentMonthInscription = "inscription"

// BudgetType classifies a budget line.
type BudgetType string

const (
	BudgetFixed    BudgetType = "fixed"
	BudgetVariable BudgetType = "variable"
	BudgetCredit   BudgetType = "credit"
	BudgetSavings  BudgetType = "savings"
)

// ValidBudgetType reports whether t is one of the known budget types.
func ValidBudgetType(t BudgetType) bool {
	switch t {
	case BudgetFixed, BudgetVariable, BudgetCredit, BudgetSavings:
		return true
	}
	return false
}
