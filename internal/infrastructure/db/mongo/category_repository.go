package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contentory/publishing-api/internal/core/domain"
)

const categoriesCollection = "categories"

type CategoryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{db: db, coll: db.Collection(categoriesCollection)}
}

type categoryDoc struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, categoriesCollection)
	if err != nil {
		return nil, err
	}

	doc := categoryDoc{ID: id, Title: category.Title, Description: category.Description}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, classify("insert category", err)
	}

	return &domain.Category{ID: doc.ID, Title: doc.Title, Description: doc.Description}, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, classify("find category", err)
	}
	return &domain.Category{ID: doc.ID, Title: doc.Title, Description: doc.Description}, nil
}
