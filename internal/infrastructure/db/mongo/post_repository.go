package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contentory/publishing-api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, coll: db.Collection(postsCollection)}
}

// postDoc is the persisted shape of a post. Price is a Decimal128 so range
// filters compare exact decimals, never floats.
type postDoc struct {
	ID         int64                `bson:"_id"`
	Title      string               `bson:"title"`
	Content    string               `bson:"content"`
	Price      primitive.Decimal128 `bson:"price"`
	AuthorID   string               `bson:"author_id"`
	CategoryID int64                `bson:"category_id"`
}

func (d postDoc) toDomain() *domain.Post {
	return &domain.Post{
		ID:         d.ID,
		Title:      d.Title,
		Content:    d.Content,
		Price:      d.Price,
		AuthorID:   d.AuthorID,
		CategoryID: d.CategoryID,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, postsCollection)
	if err != nil {
		return nil, err
	}

	doc := postDoc{
		ID:         id,
		Title:      post.Title,
		Content:    post.Content,
		Price:      post.Price,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, classify("insert post", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, classify("find post", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return classify("delete post", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// queryRow is the shape produced by the listing pipeline after the
// author/category lookups are unwound.
type queryRow struct {
	ID       int64                `bson:"_id"`
	Title    string               `bson:"title"`
	Content  string               `bson:"content"`
	Price    primitive.Decimal128 `bson:"price"`
	Author   struct {
		Email string `bson:"email"`
	} `bson:"author"`
	Category struct {
		Title string `bson:"title"`
	} `bson:"category"`
}

// Query composes the optional filter predicates, the sort order and the
// page window into a single aggregation, then joins author and category
// server-side. Filter, sort and window apply before the lookups so the
// join cost is bounded by the page size.
func (r *PostRepository) Query(ctx context.Context, filter domain.PostFilter, offset, limit int64, sort domain.PostSort) ([]domain.PostView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildMatch(filter)}},
		bson.D{{Key: "$sort", Value: buildSort(sort)}},
		bson.D{{Key: "$skip", Value: offset}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         categoriesCollection,
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: "$category"}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, classify("query posts", err)
	}
	defer cursor.Close(ctx)

	views := make([]domain.PostView, 0, limit)
	for cursor.Next(ctx) {
		var row queryRow
		if err := cursor.Decode(&row); err != nil {
			return nil, classify("decode post row", err)
		}
		views = append(views, domain.PostView{
			ID:            row.ID,
			Title:         row.Title,
			Content:       row.Content,
			Price:         row.Price,
			AuthorEmail:   row.Author.Email,
			CategoryTitle: row.Category.Title,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, classify("query posts", err)
	}
	return views, nil
}

// buildMatch renders the filter as a conjunction; omitted predicates add
// no clause at all.
func buildMatch(filter domain.PostFilter) bson.M {
	match := bson.M{}
	if filter.Title != "" {
		match["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Title), "$options": "i"}
	}
	price := bson.M{}
	if filter.PriceGTE != nil {
		price["$gte"] = *filter.PriceGTE
	}
	if filter.PriceLTE != nil {
		price["$lte"] = *filter.PriceLTE
	}
	if len(price) > 0 {
		match["price"] = price
	}
	if filter.CategoryID != nil {
		match["category_id"] = *filter.CategoryID
	}
	return match
}

// buildSort maps the whitelisted sort field to its document key and adds
// the _id tiebreaker so page windows stay stable under equal keys.
func buildSort(sort domain.PostSort) bson.D {
	dir := 1
	if sort.Desc {
		dir = -1
	}

	key := "_id"
	switch sort.Field {
	case domain.SortByTitle:
		key = "title"
	case domain.SortByPrice:
		key = "price"
	case domain.SortByCategory:
		key = "category_id"
	}

	if key == "_id" {
		return bson.D{{Key: "_id", Value: dir}}
	}
	return bson.D{{Key: key, Value: dir}, {Key: "_id", Value: 1}}
}
