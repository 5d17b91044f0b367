package models

import "time"

// Payment represents a tuition payment made for a student, tied to a month
// of the school calendar (or "inscription" for the enrollment fee).
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Month         string        `json:"month" gorm:"not null" validate:"required"`
	SchoolYear    string        `json:"school_year" gorm:"not null;index"`
	PaymentMethod string        `json:"payment_method" gorm:"type:varchar(50)"`
	Reference     string        `json:"reference,omitempty"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)"`
	PaymentDate   time.Time     `json:"payment_date" gorm:"not null;index"`
	RecordedBy    string        `json:"recorded_by,omitempty" gorm:"type:uuid"`
	ValidatedAt   *time.Time    `json:"validated_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time    `json:"deleted_at,omitempty" gorm:"index"`
	Student       *Student      `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// IsValidated reports whether the payment counts towards collected tuition.
func (p *Payment) IsValidated() bool {
	return p.Status == PaymentValidated
}
