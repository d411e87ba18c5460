package repository

import (
	"alcyxob/exercise-tracker/internal/domain" // Import our defined domain models
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrInvalidID = RepositoryError("invalid id")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ParseID converts the hex form used on the wire into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseFilter selects a user's exercises. Nil bounds are open; both bounds are inclusive.
// Limit <= 0 means no limit. No ordering is applied: results come back in store order.
type ExerciseFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64
}

// Matches reports whether e satisfies everything in f except Limit.
func (f ExerciseFilter) Matches(e *domain.Exercise) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	return true
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
}
