package models

import (
	"time"

	"github.com/lib/pq"
)

// BudgetLine is one row of the monthly budget. AccountPrefixes maps the
// category to chart-of-accounts numbers so the actual amount can be
// reconciled against the ledger; lines without prefixes keep whatever
// actual was stored by hand.
type BudgetLine struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Year            int            `json:"year" gorm:"not null" validate:"required"`
	SchoolYear      string         `json:"school_year" gorm:"not null;index"`
	Month           int            `json:"month" gorm:"not null" validate:"required,min=1,max=12"`
	Type            BudgetType     `json:"type" gorm:"not null;type:varchar(20)" validate:"required"`
	Category        string         `json:"category" gorm:"not null" validate:"required"`
	PlannedAmount   float64        `json:"planned_amount" gorm:"type:numeric;default:0"`
	ActualAmount    float64        `json:"actual_amount" gorm:"type:numeric;default:0"`
	AccountPrefixes pq.StringArray `json:"account_prefixes" gorm:"type:text[]"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
