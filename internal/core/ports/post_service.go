package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contentory/publishing-api/internal/core/domain"
)

type CreatePostInput struct {
	Title      string
	Content    string
	Price      primitive.Decimal128
	CategoryID int64
}

type ListPostsInput struct {
	Filter    domain.PostFilter
	Page      int64
	Size      int64
	SortField string
	SortDesc  bool
}

type PostService interface {
	CreatePost(ctx context.Context, author *domain.User, input CreatePostInput) (*domain.Post, error)
	// DeletePost removes a post when the actor owns it or is an
	// administrator.
	DeletePost(ctx context.Context, actor *domain.User, id int64) error
	ListPosts(ctx context.Context, input ListPostsInput) ([]domain.PostView, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, title, description string) (*domain.Category, error)
}
