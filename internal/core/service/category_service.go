package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
)

// CategoryService creates categories. Only administrators reach this
// service; the route is gated by the RBAC middleware.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) CreateCategory(ctx context.Context, title, description string) (*domain.Category, error) {
	created, err := s.categories.Create(ctx, &domain.Category{
		Title:       title,
		Description: description,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Int64("category_id", created.ID).Msg("category created")
	return created, nil
}
