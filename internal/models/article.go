package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleDB represents an article row joined with its author.
type ArticleDB struct {
	ArticleID   uuid.UUID `json:"id" db:"id"`                    // Primary key
	Name        string    `json:"name" db:"name"`                // Article title
	Description string    `json:"description" db:"description"`  // Article body
	CreatedDate time.Time `json:"createdDate" db:"created_date"` // Set by the database on insert
	UpdatedDate time.Time `json:"updatedDate" db:"updated_date"` // Set by the database on every update
	AuthorID    uuid.UUID `json:"authorId" db:"author_id"`       // Owning user
	AuthorName  string    `json:"authorName" db:"author_name"`   // users.name of the owner
}

// IsOwnedBy reports whether the article belongs to the given user.
func (a *ArticleDB) IsOwnedBy(userID uuid.UUID) bool {
	return a.AuthorID != uuid.Nil && a.AuthorID == userID
}
