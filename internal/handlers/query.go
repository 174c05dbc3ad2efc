package handlers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-articles/internal/models"
)

const dateLayout = "2006-01-02"

// parseArticleQuery reads listing filters, sort order and paging from the
// query string. Unusable page and limit values fall back to defaults; bad
// dates and sort directions are reported.
func parseArticleQuery(values url.Values) (*models.ArticleQuery, []string) {
	var errs []string

	q := &models.ArticleQuery{
		Name:        strings.TrimSpace(values.Get("name")),
		Description: strings.TrimSpace(values.Get("description")),
		Author:      strings.TrimSpace(values.Get("author")),
		Page:        parsePositiveInt(values.Get("page"), models.DefaultPage),
		Limit:       parsePositiveInt(values.Get("limit"), models.DefaultLimit),
	}
	if q.Limit > models.MaxLimit {
		q.Limit = models.MaxLimit
	}

	dates := []struct {
		param string
		dst   **models.TimeBound
	}{
		{"createdDateFrom", &q.CreatedFrom},
		{"createdDateTo", &q.CreatedTo},
		{"updatedDateFrom", &q.UpdatedFrom},
		{"updatedDateTo", &q.UpdatedTo},
	}
	for _, d := range dates {
		raw := strings.TrimSpace(values.Get(d.param))
		if raw == "" {
			continue
		}
		bound, ok := parseTimeBound(raw)
		if !ok {
			errs = append(errs, d.param+" must be a date (YYYY-MM-DD) or an RFC3339 timestamp")
			continue
		}
		*d.dst = bound
	}

	sorts := []struct {
		param string
		dst   *models.SortDirection
	}{
		{"orderByName", &q.OrderByName},
		{"orderByCreatedDate", &q.OrderByCreatedDate},
		{"orderByUpdatedDate", &q.OrderByUpdatedDate},
	}
	for _, s := range sorts {
		raw := strings.TrimSpace(values.Get(s.param))
		if raw == "" {
			continue
		}
		dir := models.SortDirection(strings.ToUpper(raw))
		if dir != models.SortAsc && dir != models.SortDesc {
			errs = append(errs, s.param+" must be ASC or DESC")
			continue
		}
		*s.dst = dir
	}

	return q, errs
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseTimeBound(raw string) (*models.TimeBound, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &models.TimeBound{Time: t, DayPrecision: true}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &models.TimeBound{Time: t.UTC()}, true
	}
	return nil, false
}
