package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                  string `gorm:"not null"`
	Email                 string `gorm:"uniqueIndex;not null"`
	Password              string `gorm:"not null"`
	EmailVerified         bool
	VerificationExpiresAt *time.Time
	FirstLogin            bool
	LastLogin             *time.Time
	LastReminderSent      *time.Time
	ResetCodeHash         string
	ResetCodeExpiresAt    *time.Time
	IsAdmin               bool
}

// PublicUser is the shape returned to clients. Password and reset fields
// never leave the server.
type PublicUser struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		IsAdmin:       u.IsAdmin,
		CreatedAt:     u.CreatedAt,
	}
}
