package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

const adminsCollection = "admins"

type MongoAdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{coll: db.Collection(adminsCollection)}
}

type mongoAdmin struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	LastName     string `bson:"last_name,omitempty"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

func toMongoAdmin(a *domain.Admin) mongoAdmin {
	return mongoAdmin{
		ID:           a.ID,
		Username:     a.Username,
		LastName:     a.LastName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.Unix(),
	}
}

func (d mongoAdmin) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           d.ID,
		Username:     d.Username,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    unixToTime(d.CreatedAt),
	}
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if _, err := r.coll.InsertOne(ctx, toMongoAdmin(admin)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	var doc mongoAdmin
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var doc mongoAdmin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoAdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []domain.Admin
	for cursor.Next(ctx) {
		var doc mongoAdmin
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode admin: %w", err)
		}
		admins = append(admins, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (r *MongoAdminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": admin.ID}, toMongoAdmin(admin))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAdminExists
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *MongoAdminRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}
