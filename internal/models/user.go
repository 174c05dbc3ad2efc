package models

import (
	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`           // Primary key
	Name         string    `json:"name" db:"name"`       // Display name
	Email        string    `json:"email" db:"email"`     // Unique email
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt hash, never the plaintext
}
