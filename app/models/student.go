package models

import "time"

// Student represents an enrolled pupil. The matricule is the school-wide
// identifier printed on receipts and report cards (YEAR-CLASSCODE-SEQ).
type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Matricule     string     `json:"matricule" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender        Gender     `json:"gender" gorm:"type:varchar(10)"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	ClassID       string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ParentName    string     `json:"parent_name,omitempty"`
	ParentPhone   string     `json:"parent_phone,omitempty" gorm:"type:varchar(20)"`
	SchoolYear    string     `json:"school_year" gorm:"not null;index"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class         *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	TotalPaid     float64    `json:"total_paid" gorm:"-"`
	TotalExpected float64    `json:"total_expected" gorm:"-"`
}
