package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, name string) (*DB, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(name)}, nil
}

// EnsureIndexes creates the indexes the repositories rely on: username
// uniqueness and the (userId, date) lookup used by the logs query.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	_, err = d.Exercises().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create exercise index: %w", err)
	}

	return nil
}

func (d *DB) Users() *mongo.Collection {
	return d.db.Collection(usersCollection)
}

func (d *DB) Exercises() *mongo.Collection {
	return d.db.Collection(exercisesCollection)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
