package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

//go:generate mockgen -source=article.go -destination=article_mock.go -package=services

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrForbidden       = errors.New("article belongs to another user")
)

const articleCacheKeyPrefix = "article_"

// ArticleReader defines read-only operations for articles.
type ArticleReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleDB, error)
	List(ctx context.Context, q *models.ArticleQuery) ([]models.ArticleDB, int64, error)
}

// ArticleService serves the public, read-only article listing.
type ArticleService struct {
	reader ArticleReader
	cache  Cache
	ttl    time.Duration
}

func NewArticleService(reader ArticleReader, cache Cache, ttl time.Duration) *ArticleService {
	return &ArticleService{reader: reader, cache: cache, ttl: ttl}
}

// List returns one page of articles matching q.
func (s *ArticleService) List(ctx context.Context, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error) {
	return listArticles(ctx, s.reader, q)
}

// GetByID returns a single article, served from the cache when possible.
// Cached entries are not invalidated on update or delete and live for the cache TTL.
func (s *ArticleService) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleDB, error) {
	return getOrCompute(ctx, s.cache, articleCacheKeyPrefix+id.String(), s.ttl, func(ctx context.Context) (*models.ArticleDB, error) {
		return getArticle(ctx, s.reader, id)
	})
}

func listArticles(ctx context.Context, reader ArticleReader, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error) {
	articles, total, err := reader.List(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to list articles", "err", err)
		return nil, err
	}
	return &models.Page[models.ArticleDB]{
		Data:  articles,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func getArticle(ctx context.Context, reader ArticleReader, id uuid.UUID) (*models.ArticleDB, error) {
	article, err := reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get article", "article_id", id, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}
