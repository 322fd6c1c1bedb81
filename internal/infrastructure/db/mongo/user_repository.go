package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contentory/publishing-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc is the persisted shape of a user. Roles are stored as the
// original string labels so the documents stay readable in the shell.
type userDoc struct {
	ID           string   `bson:"_id"`
	Name         string   `bson:"name"`
	Surname      string   `bson:"surname"`
	Email        string   `bson:"email"`
	PasswordHash string   `bson:"hashed_password"`
	IsActive     bool     `bson:"is_active"`
	Roles        []string `bson:"roles"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Surname:      u.Surname,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		Roles:        u.Roles.Labels(),
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Surname:      d.Surname,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		Roles:        domain.RolesFromLabels(d.Roles),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, classify("insert user", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, classify("find user", err)
	}
	return doc.toDomain(), nil
}

// UpdateRoles replaces the role set of the user in one atomic update.
// An empty set is refused outright: the non-empty invariant holds even if
// a future caller bypasses the RoleSet helpers.
func (r *UserRepository) UpdateRoles(ctx context.Context, id string, roles domain.RoleSet) (string, error) {
	labels := roles.Labels()
	if len(labels) == 0 {
		return "", errors.New("update roles: refusing to persist an empty role set")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"roles": labels}})
	if err != nil {
		return "", classify("update roles", err)
	}
	if res.MatchedCount == 0 {
		return "", domain.ErrUserNotFound
	}
	return id, nil
}
