package database

import (
	"context"
	"exercise-tracker/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExerciseRepository wraps store access for exercise records.
type ExerciseRepository struct {
	coll *mongo.Collection
}

func NewExerciseRepository(db *DB) *ExerciseRepository {
	return &ExerciseRepository{coll: db.Exercises()}
}

// Create inserts the exercise and fills in its assigned id.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	res, err := r.coll.InsertOne(ctx, exercise)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		exercise.ID = id
	}
	return nil
}

// FindForUser returns the user's exercises sorted ascending by date, capped
// at limit. The inclusive [from, to] date filter is applied only when both
// bounds are set; a single bound disables range filtering entirely.
func (r *ExerciseRepository) FindForUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]models.Exercise, error) {
	filter := bson.M{"userId": userID}
	if !from.IsZero() && !to.IsZero() {
		filter["date"] = bson.M{"$gte": from, "$lte": to}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := make([]models.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
