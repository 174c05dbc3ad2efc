package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-articles/internal/models"
)

const articleSelect = `
	SELECT a.id, a.name, a.description, a.created_date, a.updated_date, a.author_id, u.name AS author_name
	FROM articles a
	JOIN users u ON u.id = a.author_id
`

// ArticleReadRepository handles article read operations
type ArticleReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewArticleReadRepository(db *sqlx.DB, txGetter TxGetter) *ArticleReadRepository {
	return &ArticleReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the article with its author's name, or nil if it does not exist.
func (r *ArticleReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArticleDB, error) {
	query := articleSelect + `WHERE a.id = $1`

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &article, query, id)

	logQuery(query, []any{id}, article.ArticleID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns one page of articles matching q and the total number of matches.
func (r *ArticleReadRepository) List(ctx context.Context, q *models.ArticleQuery) ([]models.ArticleDB, int64, error) {
	where, args := buildArticleFilter(q)
	ex := executor(ctx, r.db, r.txGetter)

	countQuery := `
		SELECT COUNT(*)
		FROM articles a
		JOIN users u ON u.id = a.author_id
	` + where

	var total int64
	err := sqlx.GetContext(ctx, ex, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	n := len(args)
	dataQuery := articleSelect + where + "\n" + buildArticleOrder(q) +
		"\nLIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	dataArgs := append(append([]any{}, args...), q.Limit, q.Offset())

	articles := []models.ArticleDB{}
	err = sqlx.SelectContext(ctx, ex, &articles, dataQuery, dataArgs...)
	logQuery(dataQuery, dataArgs, len(articles), err)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// ArticleWriteRepository handles article write operations
type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter TxGetter) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts an article owned by authorID and returns it with server-assigned fields.
func (r *ArticleWriteRepository) Create(ctx context.Context, authorID uuid.UUID, name, description string) (*models.ArticleDB, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO articles (name, description, author_id)
			VALUES ($1, $2, $3)
			RETURNING id, name, description, created_date, updated_date, author_id
		)
		SELECT i.id, i.name, i.description, i.created_date, i.updated_date, i.author_id, u.name AS author_name
		FROM inserted i
		JOIN users u ON u.id = i.author_id
	`
	args := []any{name, description, authorID}

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &article, query, args...)

	logQuery(query, args, article.ArticleID, err)

	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update replaces name and description and bumps updated_date.
// It returns nil if the article does not exist.
func (r *ArticleWriteRepository) Update(ctx context.Context, id uuid.UUID, name, description string) (*models.ArticleDB, error) {
	const query = `
		WITH updated AS (
			UPDATE articles
			SET name = $1, description = $2, updated_date = NOW()
			WHERE id = $3
			RETURNING id, name, description, created_date, updated_date, author_id
		)
		SELECT d.id, d.name, d.description, d.created_date, d.updated_date, d.author_id, u.name AS author_name
		FROM updated d
		JOIN users u ON u.id = d.author_id
	`
	args := []any{name, description, id}

	var article models.ArticleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &article, query, args...)

	logQuery(query, args, article.ArticleID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes the article and reports whether a row was deleted.
func (r *ArticleWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
