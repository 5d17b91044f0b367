package models

import "time"

// Class carries the fee schedule for its students: an enrollment fee paid
// once per school year and a monthly tuition amount.
type Class struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name             string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code             string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Level            string     `json:"level,omitempty"`
	FraisInscription float64    `json:"frais_inscription" gorm:"type:numeric;default:0"`
	FraisMensuel     float64    `json:"frais_mensuel" gorm:"type:numeric;default:0"`
	TitulaireID      *string    `json:"titulaire_id,omitempty" gorm:"index;type:uuid"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
	StudentCount     int        `json:"student_count" gorm:"-"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Titulaire        *User      `json:"titulaire,omitempty" gorm:"foreignKey:TitulaireID;references:ID"`
	Students         []*Student `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
