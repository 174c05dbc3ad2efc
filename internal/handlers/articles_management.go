package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/middlewares"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
)

//go:generate mockgen -source=articles_management.go -destination=articles_management_mock.go -package=handlers

// ArticleManager handles article operations on behalf of their author.
type ArticleManager interface {
	List(ctx context.Context, userID uuid.UUID, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ArticleDB, error)
	Create(ctx context.Context, userID uuid.UUID, name, description string) (*models.ArticleDB, error)
	Update(ctx context.Context, userID, id uuid.UUID, name, description string) (*models.ArticleDB, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// writeManagementError maps service failures to HTTP statuses.
func writeManagementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		writeError(w, http.StatusNotFound, "Article not found")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		writeInternalError(w, err)
	}
}

// callerID returns the authenticated user or writes 401.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	}
	return userID, ok
}

// NewListMyArticlesHandler lists the caller's own articles.
// @Summary List my articles
// @Description Same filters, sorting and pagination as the public listing; author is ignored
// @Tags articles-management
// @Produce json
// @Param name query string false "Name contains (case-insensitive)"
// @Param description query string false "Description contains (case-insensitive)"
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
// @Failure 401 {object} handlers.ErrorResponse
// @Router /articles-management [get]
// @Security CookieAuth
func NewListMyArticlesHandler(svc ArticleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		q, errs := parseArticleQuery(r.URL.Query())
		if len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Invalid query parameters", errs...)
			return
		}

		page, err := svc.List(r.Context(), userID, q)
		if err != nil {
			writeManagementError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toArticlePageResponse(page))
	}
}

// NewGetMyArticleHandler returns one of the caller's articles.
// @Summary Get my article
// @Tags articles-management
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} handlers.ArticleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /articles-management/{id} [get]
// @Security CookieAuth
func NewGetMyArticleHandler(svc ArticleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		id, ok := articleIDParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		article, err := svc.GetByID(r.Context(), userID, id)
		if err != nil {
			writeManagementError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toArticleResponse(article))
	}
}

// NewCreateArticleHandler creates an article owned by the caller.
// @Summary Create article
// @Tags articles-management
// @Accept json
// @Produce json
// @Param article body handlers.ArticleRequest true "Article"
// @Success 201 {object} handlers.ArticleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /articles-management [post]
// @Security CookieAuth
func NewCreateArticleHandler(svc ArticleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validateArticle(&req); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", errs...)
			return
		}

		article, err := svc.Create(r.Context(), userID, req.Name, req.Description)
		if err != nil {
			writeManagementError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toArticleResponse(article))
	}
}

// NewUpdateArticleHandler replaces name and description of the caller's article.
// @Summary Update article
// @Tags articles-management
// @Accept json
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Param article body handlers.ArticleRequest true "Article"
// @Success 200 {object} handlers.ArticleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /articles-management/{id} [put]
// @Security CookieAuth
func NewUpdateArticleHandler(svc ArticleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		id, ok := articleIDParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		var req ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if errs := validateArticle(&req); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", errs...)
			return
		}

		article, err := svc.Update(r.Context(), userID, id, req.Name, req.Description)
		if err != nil {
			writeManagementError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toArticleResponse(article))
	}
}

// NewDeleteArticleHandler removes the caller's article.
// @Summary Delete article
// @Tags articles-management
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} handlers.DeleteArticleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /articles-management/{id} [delete]
// @Security CookieAuth
func NewDeleteArticleHandler(svc ArticleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		id, ok := articleIDParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid article id")
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeManagementError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DeleteArticleResponse{ID: id.String()})
	}
}
