package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/repositories"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
)

// FlashNewsService defines the interface for flash news operations
type FlashNewsService interface {
	GetAllNews(ctx context.Context) ([]*models.FlashNews, error)
	CreateNews(ctx context.Context, message string) (*models.FlashNews, error)
	DeleteNews(ctx context.Context, id int64) error
}

// flashNewsServiceImpl implements the FlashNewsService interface
type flashNewsServiceImpl struct {
	newsRepo repositories.IFlashNewsRepository
}

// NewFlashNewsService creates a new flash news service instance
func NewFlashNewsService(newsRepo repositories.IFlashNewsRepository) FlashNewsService {
	return &flashNewsServiceImpl{
		newsRepo: newsRepo,
	}
}

// GetAllNews retrieves all flash news items, most recent first
func (s *flashNewsServiceImpl) GetAllNews(ctx context.Context) ([]*models.FlashNews, error) {
	news, err := s.newsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving flash news: %w", err)
	}

	return news, nil
}

// CreateNews stores a new announcement. The message is trimmed first and
// rejected if nothing remains.
func (s *flashNewsServiceImpl) CreateNews(ctx context.Context, message string) (*models.FlashNews, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrFlashNewsEmptyMessage, "News message cannot be empty.")
	}

	item, err := s.newsRepo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("error creating flash news: %w", err)
	}

	return item, nil
}

// DeleteNews removes a flash news item by ID
func (s *flashNewsServiceImpl) DeleteNews(ctx context.Context, id int64) error {
	err := s.newsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFlashNewsNotFound) {
			return err
		}
		return fmt.Errorf("error deleting flash news: %w", err)
	}

	return nil
}
