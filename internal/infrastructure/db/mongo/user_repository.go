package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	LastName     string `bson:"last_name,omitempty"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Address      string `bson:"address,omitempty"`
	AvatarURL    string `bson:"avatar_url,omitempty"`
	Active       bool   `bson:"active"`
	LastActivity int64  `bson:"last_activity,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	doc := mongoUser{
		ID:           u.ID,
		Username:     u.Username,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		AvatarURL:    u.AvatarURL,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt.Unix(),
	}
	if u.LastActivity != nil {
		doc.LastActivity = u.LastActivity.Unix()
	}
	return doc
}

func (d mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID,
		Username:     d.Username,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Address:      d.Address,
		AvatarURL:    d.AvatarURL,
		Active:       d.Active,
		CreatedAt:    unixToTime(d.CreatedAt),
	}
	if d.LastActivity != 0 {
		la := unixToTime(d.LastActivity)
		u.LastActivity = &la
	}
	return u
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, toMongoUser(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var doc mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []domain.User
	for cursor.Next(ctx) {
		var doc mongoUser
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
