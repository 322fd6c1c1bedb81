package handler

// --- Request / Response types for the post and category routes ---

// Prices travel as decimal strings on the wire and are parsed with
// primitive.ParseDecimal128; binary floats never touch money.

type createPostRequest struct {
	Title      string `json:"title"       validate:"required,max=128"`
	Content    string `json:"content"     validate:"required"`
	Price      string `json:"price"       validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

type createCategoryRequest struct {
	Title       string `json:"title"       validate:"required,max=32"`
	Description string `json:"description" validate:"required"`
}

type listPostsRequest struct {
	Title      string `query:"title"`
	PriceGTE   string `query:"price_gte"`
	PriceLTE   string `query:"price_lte"`
	CategoryID int64  `query:"category_id"`
	Page       int64  `query:"page"`
	Size       int64  `query:"size"`
	Sort       string `query:"sort"`
	Desc       bool   `query:"desc"`
}

type postResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Price      string `json:"price"`
	AuthorID   string `json:"author_id"`
	CategoryID int64  `json:"category_id"`
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// postViewResponse is one denormalized listing row.
type postViewResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Price         string `json:"price"`
	AuthorEmail   string `json:"author_email"`
	CategoryTitle string `json:"category_title"`
}

type listPostsResponse struct {
	Posts []postViewResponse `json:"posts"`
	Page  int64              `json:"page"`
	Size  int64              `json:"size"`
}
