package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

// ArticleRequest is the body for creating or updating an article
// swagger:model ArticleRequest
type ArticleRequest struct {
	// required: true
	// example: Getting started with Go
	Name string `json:"name"`

	// required: true
	// example: A short tour of the toolchain
	Description string `json:"description"`
}

// AuthorResponse identifies the author of an article
// swagger:model AuthorResponse
type AuthorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ArticleResponse is the public representation of an article
// swagger:model ArticleResponse
type ArticleResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedDate string         `json:"createdDate"`
	UpdatedDate string         `json:"updatedDate"`
	Author      AuthorResponse `json:"author"`
}

// ArticlePageResponse is one page of articles
// swagger:model ArticlePageResponse
type ArticlePageResponse = models.Page[ArticleResponse]

// DeleteArticleResponse echoes the removed id
// swagger:model DeleteArticleResponse
type DeleteArticleResponse struct {
	ID string `json:"id"`
}

func toArticleResponse(a *models.ArticleDB) ArticleResponse {
	return ArticleResponse{
		ID:          a.ArticleID.String(),
		Name:        a.Name,
		Description: a.Description,
		CreatedDate: a.CreatedDate.UTC().Format(time.RFC3339),
		UpdatedDate: a.UpdatedDate.UTC().Format(time.RFC3339),
		Author: AuthorResponse{
			ID:   a.AuthorID.String(),
			Name: a.AuthorName,
		},
	}
}

func toArticlePageResponse(p *models.Page[models.ArticleDB]) ArticlePageResponse {
	data := make([]ArticleResponse, 0, len(p.Data))
	for i := range p.Data {
		data = append(data, toArticleResponse(&p.Data[i]))
	}
	return ArticlePageResponse{
		Data:  data,
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

// articleIDParam parses the {id} URL parameter.
func articleIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
