package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

const reservationsCollection = "reservations"

type MongoReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *MongoReservationRepository {
	return &MongoReservationRepository{coll: db.Collection(reservationsCollection)}
}

type mongoReservation struct {
	ID           string `bson:"_id"`
	UserID       string `bson:"user_id"`
	PapaID       string `bson:"papa_id"`
	ReservedAt   int64  `bson:"reserved_at"`
	VisitDate    int64  `bson:"visit_date"`
	VisitAddress string `bson:"visit_address"`
	Status       string `bson:"status"`
}

func toMongoReservation(res *domain.Reservation) mongoReservation {
	return mongoReservation{
		ID:           res.ID,
		UserID:       res.UserID,
		PapaID:       res.PapaID,
		ReservedAt:   res.ReservedAt.Unix(),
		VisitDate:    domain.VisitDay(res.VisitDate).Unix(),
		VisitAddress: res.VisitAddress,
		Status:       string(res.Status),
	}
}

func (d mongoReservation) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:           d.ID,
		UserID:       d.UserID,
		PapaID:       d.PapaID,
		ReservedAt:   time.Unix(d.ReservedAt, 0).UTC(),
		VisitDate:    time.Unix(d.VisitDate, 0).UTC(),
		VisitAddress: d.VisitAddress,
		Status:       domain.ReservationStatus(d.Status),
	}
}

// Create relies on the partial unique index over (papa_id, visit_date)
// limited to CONFIRMED documents, so a concurrent insert for an already
// taken slot surfaces as a duplicate key error.
func (r *MongoReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if _, err := r.coll.InsertOne(ctx, toMongoReservation(res)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDateTaken
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *MongoReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var doc mongoReservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoReservationRepository) FindByVisitDate(ctx context.Context, day time.Time) ([]domain.Reservation, error) {
	return r.findMany(ctx, bson.M{"visit_date": domain.VisitDay(day).Unix()})
}

func (r *MongoReservationRepository) ConfirmedExists(ctx context.Context, papaID string, day time.Time) (bool, error) {
	filter := bson.M{
		"papa_id":    papaID,
		"visit_date": domain.VisitDay(day).Unix(),
		"status":     string(domain.ReservationConfirmed),
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count reservations: %w", err)
	}
	return count > 0, nil
}

func (r *MongoReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": res.ID}, toMongoReservation(res))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDateTaken
		}
		return fmt.Errorf("update reservation: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *MongoReservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *MongoReservationRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Reservation, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []domain.Reservation
	for cursor.Next(ctx) {
		var doc mongoReservation
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		reservations = append(reservations, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}
