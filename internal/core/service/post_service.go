package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PostService struct {
	posts      ports.PostRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewPostService(posts ports.PostRepository, categories ports.CategoryRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, categories: categories, logger: logger}
}

// CreatePost inserts a post owned by author. The category reference must
// resolve before the insert; a dangling reference never reaches storage.
func (s *PostService) CreatePost(ctx context.Context, author *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:      input.Title,
		Content:    input.Content,
		Price:      input.Price,
		AuthorID:   author.ID,
		CategoryID: input.CategoryID,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int64("post_id", created.ID).Str("author_id", author.ID).Msg("post created")
	return created, nil
}

// DeletePost removes a post when the actor owns it or holds ADMIN.
// Existence is checked before authorization: a post id leaks no sensitive
// structure, so reporting not-found first is safe and more useful.
func (s *PostService) DeletePost(ctx context.Context, actor *domain.User, id int64) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actor.ID && !actor.Roles.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("post_id", id).Str("actor_id", actor.ID).Msg("post deleted")
	return nil
}

// ListPosts runs one bounded read over the post collection. Page is
// zero-based; size defaults to 10 and is clamped to 100 so a single
// request cannot demand an unbounded result set. The window is
// offset-based, so concurrent writes may shift rows between pages; this
// is a best-effort listing, not a snapshot.
func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) ([]domain.PostView, error) {
	size := input.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	page := input.Page
	if page < 0 {
		page = 0
	}

	sort := domain.NormalizePostSort(input.SortField, input.SortDesc)
	return s.posts.Query(ctx, input.Filter, page*size, size, sort)
}
