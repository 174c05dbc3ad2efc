package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
)

//go:generate mockgen -source=articles.go -destination=articles_mock.go -package=handlers

// ArticleBrowser serves the public article listing.
type ArticleBrowser interface {
	List(ctx context.Context, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleDB, error)
}

// NewListArticlesHandler returns the public article listing.
// @Summary List articles
// @Description Filter, sort and paginate all articles
// @Tags articles
// @Produce json
// @Param name query string false "Name contains (case-insensitive)"
// @Param description query string false "Description contains (case-insensitive)"
// @Param author query string false "Author name contains (case-insensitive)"
// @Param createdDateFrom query string false "YYYY-MM-DD or RFC3339"
// @Param createdDateTo query string false "YYYY-MM-DD or RFC3339"
// @Param updatedDateFrom query string false "YYYY-MM-DD or RFC3339"
// @Param updatedDateTo query string false "YYYY-MM-DD or RFC3339"
// @Param orderByName query string false "ASC or DESC"
// @Param orderByCreatedDate query string false "ASC or DESC"
// @Param orderByUpdatedDate query string false "ASC or DESC"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.ArticlePageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /articles [get]
func NewListArticlesHandler(svc ArticleBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, errs := parseArticleQuery(r.URL.Query())
		if len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid query parameters", errs...)
			return
		}

		page, err := svc.List(r.Context(), q)
		if err != nil {
			logger.Log.Errorw("failed to list articles", "err", err)
			writeError(w, http.StatusBadRequest, "Failed to list articles")
			return
		}

		writeJSON(w, http.StatusOK, toArticlePageResponse(page))
	}
}

// NewGetArticleHandler returns a single article by id.
// @Summary Get article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} handlers.ArticleResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or article not found"
// @Router /articles/{id} [get]
func NewGetArticleHandler(svc ArticleBrowser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := articleIDParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		article, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrArticleNotFound) {
				writeError(w, http.StatusBadRequest, "Article not found")
				return
			}
			logger.Log.Errorw("failed to get article", "article_id", id, "err", err)
			writeError(w, http.StatusBadRequest, "Failed to get article")
			return
		}

		writeJSON(w, http.StatusOK, toArticleResponse(article))
	}
}
