package repositories

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// whereBuilder collects AND-ed conditions with numbered placeholders.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends cond, replacing its single "?" with the next $n placeholder.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(b.args)), 1))
}

func (b *whereBuilder) addRange(column string, from, to *models.TimeBound) {
	if from != nil {
		b.add(column+" >= ?", from.Time)
	}
	if to != nil {
		if to.DayPrecision {
			b.add(column+" < ?", to.Time.Add(24*time.Hour))
		} else {
			b.add(column+" <= ?", to.Time)
		}
	}
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// buildArticleFilter turns a listing request into a WHERE clause over
// articles a JOIN users u.
func buildArticleFilter(q *models.ArticleQuery) (string, []any) {
	var b whereBuilder

	if q.OwnerID != uuid.Nil {
		b.add("a.author_id = ?", q.OwnerID)
	}
	if q.Name != "" {
		b.add("a.name ILIKE ?", containsPattern(q.Name))
	}
	if q.Description != "" {
		b.add("a.description ILIKE ?", containsPattern(q.Description))
	}
	b.addRange("a.created_date", q.CreatedFrom, q.CreatedTo)
	b.addRange("a.updated_date", q.UpdatedFrom, q.UpdatedTo)
	if q.Author != "" && q.OwnerID == uuid.Nil {
		b.add("u.name ILIKE ?", containsPattern(q.Author))
	}

	return b.sql(), b.args
}

// buildArticleOrder returns the ORDER BY clause. The sort fields are applied
// name, created date, updated date; the last one requested wins.
func buildArticleOrder(q *models.ArticleQuery) string {
	order := "a.created_date DESC"

	sorts := []struct {
		column string
		dir    models.SortDirection
	}{
		{"a.name", q.OrderByName},
		{"a.created_date", q.OrderByCreatedDate},
		{"a.updated_date", q.OrderByUpdatedDate},
	}
	for _, s := range sorts {
		switch s.dir {
		case models.SortAsc, models.SortDesc:
			order = s.column + " " + string(s.dir)
		}
	}

	return "ORDER BY " + order + ", a.id"
}
