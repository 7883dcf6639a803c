package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes the services rely on:
//   - unique email per user and per admin
//   - a partial unique index on (papa_id, visit_date) scoped to CONFIRMED
//     reservations, which closes the check-then-act window between the
//     conflict query and the insert. Cancelled rows fall outside the
//     index, so a cancelled slot never blocks a new booking.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(indexCtx, uniqueEmail); err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	if _, err := db.Collection(adminsCollection).Indexes().CreateOne(indexCtx, uniqueEmail); err != nil {
		return fmt.Errorf("create admins email index: %w", err)
	}

	confirmedSlot := mongo.IndexModel{
		Keys: bson.D{{Key: "papa_id", Value: 1}, {Key: "visit_date", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: "status", Value: "CONFIRMED"}}),
	}
	if _, err := db.Collection(reservationsCollection).Indexes().CreateOne(indexCtx, confirmedSlot); err != nil {
		return fmt.Errorf("create reservations slot index: %w", err)
	}

	return nil
}
