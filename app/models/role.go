package models

import "time"

// Role names used by the authorization middleware.
const (
	RoleAdmin      = "admin"
	RoleComptable  = "comptable"
	RoleSecretaire = "secretaire"
	RoleDirecteur  = "directeur"
)

type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type UserRole struct {
	UserID string `json:"user_id" gorm:"primaryKey;type:uuid"`
	RoleID string `json:"role_id" gorm:"primaryKey;type:uuid"`
}
