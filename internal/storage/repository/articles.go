package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/vc-metrics/internal/models"
)

// CreateArticle добавляет статью в реестр. Дубликат по ID отклоняется
// первичным ключом таблицы.
func (s *Storage) CreateArticle(ctx context.Context, a models.Article) error {
	const op = "storage.CreateArticle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO articles (id, url, title, published_at, hits, views, last_updated)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.DB.ExecContext(ctx, query,
		a.ID, a.URL, a.Title, a.PublishedAt, a.Counters.Hits, a.Counters.Views, a.LastUpdated)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrArticleExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetArticle возвращает статью по её ID.
func (s *Storage) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	const op = "storage.GetArticle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, url, title, published_at, hits, views, last_updated
			  FROM articles
			  WHERE id = $1`
	a := &models.Article{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&a.ID, &a.URL, &a.Title, &a.PublishedAt,
		&a.Counters.Hits, &a.Counters.Views, &a.LastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrArticleNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// ListArticles возвращает статьи, отсортированные по дате публикации по убыванию.
func (s *Storage) ListArticles(ctx context.Context) ([]*models.Article, error) {
	const op = "storage.ListArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, url, title, published_at, hits, views, last_updated
			  FROM articles
			  ORDER BY published_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.URL, &a.Title, &a.PublishedAt,
			&a.Counters.Hits, &a.Counters.Views, &a.LastUpdated); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateArticleCounters перезаписывает счётчики и момент обновления статьи.
// Идентификационные поля (url, title, published_at) обновление не трогает.
func (s *Storage) UpdateArticleCounters(ctx context.Context, id int, c models.Counters, updatedAt time.Time) error {
	const op = "storage.UpdateArticleCounters"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE articles
			  SET hits = $1, views = $2, last_updated = $3
			  WHERE id = $4`
	res, err := s.DB.ExecContext(ctx, query, c.Hits, c.Views, updatedAt, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrArticleNotFound)
	}
	return nil
}

// DeleteArticle удаляет статью из реестра.
func (s *Storage) DeleteArticle(ctx context.Context, id int) error {
	const op = "storage.DeleteArticle"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM articles WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrArticleNotFound)
	}
	return nil
}
