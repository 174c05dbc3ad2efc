package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

//go:generate mockgen -source=article_management.go -destination=article_management_mock.go -package=services

// ArticleWriter defines write operations for articles.
type ArticleWriter interface {
	Create(ctx context.Context, authorID uuid.UUID, name, description string) (*models.ArticleDB, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*models.ArticleDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ArticleManagementService handles article operations scoped to their author.
type ArticleManagementService struct {
	reader    ArticleReader
	writer    ArticleWriter
	users     UserReader
	publisher *EventPublisher
}

func NewArticleManagementService(
	reader ArticleReader,
	writer ArticleWriter,
	users UserReader,
	publisher *EventPublisher,
) *ArticleManagementService {
	return &ArticleManagementService{
		reader:    reader,
		writer:    writer,
		users:     users,
		publisher: publisher,
	}
}

// List returns one page of the caller's own articles.
func (s *ArticleManagementService) List(ctx context.Context, userID uuid.UUID, q *models.ArticleQuery) (*models.Page[models.ArticleDB], error) {
	q.OwnerID = userID
	return listArticles(ctx, s.reader, q)
}

// GetByID returns the article if the caller owns it.
func (s *ArticleManagementService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ArticleDB, error) {
	return s.getOwned(ctx, userID, id)
}

// Create stores a new article authored by the caller.
func (s *ArticleManagementService) Create(ctx context.Context, userID uuid.UUID, name, description string) (*models.ArticleDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("article author no longer exists", "user_id", userID)
		return nil, ErrUnauthorized
	}

	article, err := s.writer.Create(ctx, userID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to create article", "user_id", userID, "err", err)
		return nil, err
	}

	s.publisher.Publish(ctx, models.ArticleCreated, article.ArticleID, userID)
	return article, nil
}

// Update replaces the name and description of an article the caller owns.
func (s *ArticleManagementService) Update(ctx context.Context, userID, id uuid.UUID, name, description string) (*models.ArticleDB, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	article, err := s.writer.Update(ctx, id, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update article", "article_id", id, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	s.publisher.Publish(ctx, models.ArticleUpdated, id, userID)
	return article, nil
}

// Delete removes an article the caller owns.
func (s *ArticleManagementService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete article", "article_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrArticleNotFound
	}

	s.publisher.Publish(ctx, models.ArticleDeleted, id, userID)
	return nil
}

func (s *ArticleManagementService) getOwned(ctx context.Context, userID, id uuid.UUID) (*models.ArticleDB, error) {
	article, err := getArticle(ctx, s.reader, id)
	if err != nil {
		return nil, err
	}
	if !article.IsOwnedBy(userID) {
		logger.Log.Errorw("article access denied", "article_id", id, "user_id", userID)
		return nil, ErrForbidden
	}
	return article, nil
}
