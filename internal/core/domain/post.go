package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a published article. IDs are sequential integers allocated by
// the store. Price is a fixed-point decimal; it never passes through a
// binary float.
type Post struct {
	ID         int64
	Title      string
	Content    string
	Price      primitive.Decimal128
	AuthorID   string
	CategoryID int64
}

// Category groups posts. Categories are referenced by posts, never owned
// by them, and have an independent lifecycle.
type Category struct {
	ID          int64
	Title       string
	Description string
}

// PostFilter shapes one listing query. Every predicate is optional; nil or
// zero-value predicates impose no constraint. The filter lives only for
// the duration of a single request.
type PostFilter struct {
	// Title matches as a case-insensitive substring when non-empty.
	Title string
	// PriceGTE / PriceLTE bound the price range, inclusive on both ends.
	PriceGTE *primitive.Decimal128
	PriceLTE *primitive.Decimal128
	// CategoryID matches exactly when non-nil.
	CategoryID *int64
}

// Post sort fields accepted by the listing query. Anything else falls back
// to SortByID.
const (
	SortByID       = "id"
	SortByTitle    = "title"
	SortByPrice    = "price"
	SortByCategory = "category_id"
)

// PostSort is a single-field sort order, ascending by default.
type PostSort struct {
	Field string
	Desc  bool
}

// NormalizePostSort whitelists the sort field, falling back to id ascending
// for unknown fields rather than erroring.
func NormalizePostSort(field string, desc bool) PostSort {
	switch field {
	case SortByTitle, SortByPrice, SortByCategory:
		return PostSort{Field: field, Desc: desc}
	default:
		return PostSort{Field: SortByID, Desc: desc}
	}
}

// PostView is the denormalized listing row: a post joined with its author's
// email and its category's title. Read-only projection.
type PostView struct {
	ID            int64
	Title         string
	Content       string
	Price         primitive.Decimal128
	AuthorEmail   string
	CategoryTitle string
}
