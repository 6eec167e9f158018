package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Phone    *string   `gorm:"size:20" json:"phone,omitempty"`
	Role     string    `gorm:"size:20;not null;default:'user'" json:"role"`

	ResetPasswordToken     *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
