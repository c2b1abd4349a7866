package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/db"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
)

// IFlashNewsRepository defines database operations for flash news items
type IFlashNewsRepository interface {
	GetAll(ctx context.Context) ([]*models.FlashNews, error)
	Create(ctx context.Context, message string) (*models.FlashNews, error)
	Delete(ctx context.Context, id int64) error
}

// FlashNewsRepository handles database operations for flash news items
type FlashNewsRepository struct {
	db *db.PostgresDB
}

// NewFlashNewsRepository creates a new flash news repository
func NewFlashNewsRepository(database *db.PostgresDB) *FlashNewsRepository {
	return &FlashNewsRepository{
		db: database,
	}
}

// GetAll retrieves all flash news items, most recent first
func (r *FlashNewsRepository) GetAll(ctx context.Context) ([]*models.FlashNews, error) {
	query := `
		SELECT id, message
		FROM flash_news
		ORDER BY id DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	news := make([]*models.FlashNews, 0)
	for rows.Next() {
		var item models.FlashNews
		if err := rows.Scan(&item.ID, &item.Message); err != nil {
			return nil, err
		}
		news = append(news, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return news, nil
}

// Create inserts a new flash news item
func (r *FlashNewsRepository) Create(ctx context.Context, message string) (*models.FlashNews, error) {
	query := `
		INSERT INTO flash_news (message)
		VALUES ($1)
		RETURNING id, message
	`

	var item models.FlashNews
	err := r.db.Pool.QueryRow(ctx, query, message).Scan(&item.ID, &item.Message)
	if err != nil {
		return nil, fmt.Errorf("error creating flash news: %w", err)
	}

	return &item, nil
}

// Delete removes a flash news item by ID. The existence check and the delete
// run in one transaction.
func (r *FlashNewsRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM flash_news WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking flash news existence: %w", err)
		}

		if !exists {
			return apperrors.ErrFlashNewsNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM flash_news WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting flash news: %w", err)
		}

		return nil
	})
}
