package models

import "time"

// Expense is an operational outflow (salaries, supplies, utilities).
// Recording an expense mirrors it into the accounting journal as a
// debit on the category's expense account against the cash account.
type Expense struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID    string     `json:"category_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title         string     `json:"title" gorm:"not null" validate:"required"`
	Amount        float64    `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Currency      string     `json:"currency" gorm:"type:varchar(3);default:'CDF'"`
	Date          time.Time  `json:"date" gorm:"not null;index"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

// Category groups expenses and pins them to a chart-of-accounts number so
// validated expenses land on the right expense account in the journal.
type Category struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	AccountNumber string     `json:"account_number,omitempty" gorm:"type:varchar(10)"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
