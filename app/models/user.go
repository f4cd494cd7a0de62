package models

import "time"

// User is an account that can log in. Veli accounts carry a linked
// Veli profile; the single admin account does not.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Rol          Rol       `json:"rol" gorm:"size:20;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`

	VeliProfile *Veli `json:"veli_profile,omitempty" gorm:"foreignKey:UserID"`
}
