package models

import (
	"time"

	"github.com/google/uuid"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// SortDirection is ASC, DESC or empty for "not requested".
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// TimeBound is one end of a date range. DayPrecision marks a YYYY-MM-DD input,
// which as an upper bound covers the whole day.
type TimeBound struct {
	Time         time.Time
	DayPrecision bool
}

// ArticleQuery is a typed article listing request.
type ArticleQuery struct {
	Name        string
	Description string
	Author      string // author name substring, public listing only

	CreatedFrom *TimeBound
	CreatedTo   *TimeBound
	UpdatedFrom *TimeBound
	UpdatedTo   *TimeBound

	OrderByName        SortDirection
	OrderByCreatedDate SortDirection
	OrderByUpdatedDate SortDirection

	// OwnerID restricts the listing to one author when set.
	OwnerID uuid.UUID

	Page  int
	Limit int
}

// Offset returns the number of rows to skip for the requested page.
func (q *ArticleQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
