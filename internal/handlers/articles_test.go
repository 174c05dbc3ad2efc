package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/models"
	"github.com/sbilibin2017/gw-articles/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle(authorID uuid.UUID) *models.ArticleDB {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return &models.ArticleDB{
		ArticleID:   uuid.New(),
		Name:        "Go Tips",
		Description: "concurrency",
		CreatedDate: created,
		UpdatedDate: created.Add(time.Hour),
		AuthorID:    authorID,
		AuthorName:  "Alice",
	}
}

func TestListArticlesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockArticleBrowser(ctrl)
	article := sampleArticle(uuid.New())

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error) {
				assert.Equal(t, "go", q.Name)
				assert.Equal(t, "alice", q.Author)
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 10, q.Limit)
				return &models.Page[models.ArticleDB]{Data: []models.ArticleDB{*article}, Total: 11, Page: 2, Limit: 10}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/articles?name=go&author=alice&page=2", nil)
		w := httptest.NewRecorder()
		NewListArticlesHandler(mockSvc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ArticlePageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(11), resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, toArticleResponse(article), resp.Data[0])
	})

	t.Run("empty page serializes as empty array", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(&models.Page[models.ArticleDB]{Page: 1, Limit: 10}, nil)

		w := httptest.NewRecorder()
		NewListArticlesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":10}`, w.Body.String())
	})

	t.Run("bad query", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewListArticlesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles?orderByName=sideways", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Invalid query parameters", resp.Message)
		assert.Equal(t, []string{"orderByName must be ASC or DESC"}, resp.Errors)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		NewListArticlesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockArticleBrowser(ctrl)
	article := sampleArticle(uuid.New())

	r := chi.NewRouter()
	r.Get("/articles/{id}", NewGetArticleHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetByID(gomock.Any(), article.ArticleID).Return(article, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/"+article.ArticleID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"id": "`+article.ArticleID.String()+`",
			"name": "Go Tips",
			"description": "concurrency",
			"createdDate": "2024-03-10T09:00:00Z",
			"updatedDate": "2024-03-10T10:00:00Z",
			"author": {"id": "`+article.AuthorID.String()+`", "name": "Alice"}
		}`, w.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid article id", decodeError(t, w).Message)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, services.ErrArticleNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/"+id.String(), nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Article not found", decodeError(t, w).Message)
	})
}
