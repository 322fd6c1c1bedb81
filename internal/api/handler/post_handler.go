package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contentory/publishing-api/internal/api/metrics"
	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create publishes a new post owned by the authenticated principal.
//
// @Summary      Create a post
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /post/create_post [post]
func (h *PostHandler) Create(c echo.Context) error {
	author, err := principal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), author, ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Price:      price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Delete removes a post. The owner may delete their own post; an
// administrator may delete any post.
//
// @Summary      Delete a post
// @Tags         post
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /post/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "id must be an integer")
	}

	if err := h.postService.DeletePost(c.Request().Context(), actor, id); err != nil {
		return err
	}

	if actor.Roles.IsAdmin() {
		metrics.PostsDeletedTotal.WithLabelValues("admin").Inc()
	} else {
		metrics.PostsDeletedTotal.WithLabelValues("owner").Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a filtered, sorted, paginated view of posts joined with
// author email and category title.
//
// @Summary      List posts
// @Tags         post
// @Produce      json
// @Param        title        query     string  false  "Title substring (case-insensitive)"
// @Param        price_gte    query     string  false  "Minimum price, inclusive"
// @Param        price_lte    query     string  false  "Maximum price, inclusive"
// @Param        category_id  query     int     false  "Exact category id"
// @Param        page         query     int     false  "Zero-based page"
// @Param        size         query     int     false  "Page size, capped at 100"
// @Param        sort         query     string  false  "Sort field: id, title, price, category_id"
// @Param        desc         query     bool    false  "Sort descending"
// @Success      200  {object}  listPostsResponse
// @Failure      422  {object}  map[string]string
// @Router       /post/all_posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var req listPostsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid query parameters")
	}

	filter := domain.PostFilter{Title: req.Title}
	if req.PriceGTE != "" {
		gte, err := parsePrice(req.PriceGTE)
		if err != nil {
			return err
		}
		filter.PriceGTE = &gte
	}
	if req.PriceLTE != "" {
		lte, err := parsePrice(req.PriceLTE)
		if err != nil {
			return err
		}
		filter.PriceLTE = &lte
	}
	if req.CategoryID > 0 {
		filter.CategoryID = &req.CategoryID
	}

	started := time.Now()
	views, err := h.postService.ListPosts(c.Request().Context(), ports.ListPostsInput{
		Filter:    filter,
		Page:      req.Page,
		Size:      req.Size,
		SortField: req.Sort,
		SortDesc:  req.Desc,
	})
	if err != nil {
		return err
	}
	metrics.PostListDuration.Observe(time.Since(started).Seconds())

	posts := make([]postViewResponse, 0, len(views))
	for _, v := range views {
		posts = append(posts, postViewResponse{
			ID:            v.ID,
			Title:         v.Title,
			Content:       v.Content,
			Price:         v.Price.String(),
			AuthorEmail:   v.AuthorEmail,
			CategoryTitle: v.CategoryTitle,
		})
	}

	page := req.Page
	if page < 0 {
		page = 0
	}
	return c.JSON(http.StatusOK, listPostsResponse{Posts: posts, Page: page, Size: int64(len(posts))})
}

// parsePrice parses a non-negative decimal string into an exact Decimal128.
func parsePrice(s string) (primitive.Decimal128, error) {
	if strings.HasPrefix(s, "-") {
		return primitive.Decimal128{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "price must not be negative")
	}
	d, err := primitive.ParseDecimal128(s)
	if err != nil || d.IsNaN() || d.IsInf() != 0 {
		return primitive.Decimal128{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "price must be a decimal number")
	}
	return d, nil
}

func toPostResponse(post *domain.Post) postResponse {
	return postResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Price:      post.Price.String(),
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}
}
