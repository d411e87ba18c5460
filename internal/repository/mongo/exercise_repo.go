package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Description == "" || exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise description and user ID are required")
	}

	exercise.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, "insert exercise")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// Find returns the exercises selected by filter in natural order.
func (r *mongoExerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	findOptions := options.Find()
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, buildExerciseQuery(filter), findOptions)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find exercises")
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, pkgerrors.Wrap(err, "decode exercises")
	}
	return exercises, nil
}

// buildExerciseQuery turns a filter into a query document.
// Date bounds are only added when present.
func buildExerciseQuery(filter repository.ExerciseFilter) bson.M {
	query := bson.M{"userId": filter.UserID}
	if filter.From == nil && filter.To == nil {
		return query
	}
	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	query["date"] = dateRange
	return query
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Covers the log query: owner plus date range.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("user_date"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return pkgerrors.Wrapf(err, "create indexes for %s", collection.Name())
}
