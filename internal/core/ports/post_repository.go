package ports

import (
	"context"

	"github.com/contentory/publishing-api/internal/core/domain"
)

// PostRepository persists posts and runs the bounded listing query.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	DeleteByID(ctx context.Context, id int64) error
	// Query applies the filter, sort and page window in one read and
	// projects each row joined with author email and category title.
	Query(ctx context.Context, filter domain.PostFilter, offset, limit int64, sort domain.PostSort) ([]domain.PostView, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}
