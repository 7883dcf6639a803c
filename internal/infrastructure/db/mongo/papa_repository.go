package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

const papasCollection = "papas"

type MongoPapaRepository struct {
	coll *mongo.Collection
}

func NewPapaRepository(db *mongo.Database) *MongoPapaRepository {
	return &MongoPapaRepository{coll: db.Collection(papasCollection)}
}

type mongoPapa struct {
	ID            string `bson:"_id"`
	FirstName     string `bson:"first_name"`
	LastName      string `bson:"last_name"`
	RUT           string `bson:"rut"`
	BirthDate     int64  `bson:"birth_date"`
	Nationality   string `bson:"nationality"`
	Occupation    string `bson:"occupation"`
	MaritalStatus string `bson:"marital_status"`
	ChildrenCount int    `bson:"children_count"`
	Hobbies       string `bson:"hobbies"`
	PapaType      string `bson:"papa_type"`
	Motto         string `bson:"motto"`
	Description   string `bson:"description"`
	Price         int    `bson:"price"`
	ImageURL      string `bson:"image_url,omitempty"`
}

func toMongoPapa(p *domain.Papa) mongoPapa {
	return mongoPapa{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		RUT:           p.RUT,
		BirthDate:     p.BirthDate.Unix(),
		Nationality:   p.Nationality,
		Occupation:    p.Occupation,
		MaritalStatus: p.MaritalStatus,
		ChildrenCount: p.ChildrenCount,
		Hobbies:       p.Hobbies,
		PapaType:      p.PapaType,
		Motto:         p.Motto,
		Description:   p.Description,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
	}
}

func (d mongoPapa) toDomain() *domain.Papa {
	return &domain.Papa{
		ID:            d.ID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		RUT:           d.RUT,
		BirthDate:     time.Unix(d.BirthDate, 0).UTC(),
		Nationality:   d.Nationality,
		Occupation:    d.Occupation,
		MaritalStatus: d.MaritalStatus,
		ChildrenCount: d.ChildrenCount,
		Hobbies:       d.Hobbies,
		PapaType:      d.PapaType,
		Motto:         d.Motto,
		Description:   d.Description,
		Price:         d.Price,
		ImageURL:      d.ImageURL,
	}
}

func (r *MongoPapaRepository) Create(ctx context.Context, papa *domain.Papa) error {
	if _, err := r.coll.InsertOne(ctx, toMongoPapa(papa)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPapaExists
		}
		return fmt.Errorf("insert papa: %w", err)
	}
	return nil
}

func (r *MongoPapaRepository) FindByID(ctx context.Context, id string) (*domain.Papa, error) {
	var doc mongoPapa
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPapaNotFound
		}
		return nil, fmt.Errorf("find papa: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoPapaRepository) FindAll(ctx context.Context) ([]domain.Papa, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list papas: %w", err)
	}
	defer cursor.Close(ctx)

	var papas []domain.Papa
	for cursor.Next(ctx) {
		var doc mongoPapa
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode papa: %w", err)
		}
		papas = append(papas, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list papas: %w", err)
	}
	return papas, nil
}

func (r *MongoPapaRepository) Update(ctx context.Context, papa *domain.Papa) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": papa.ID}, toMongoPapa(papa))
	if err != nil {
		return fmt.Errorf("update papa: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPapaNotFound
	}
	return nil
}

func (r *MongoPapaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete papa: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPapaNotFound
	}
	return nil
}
