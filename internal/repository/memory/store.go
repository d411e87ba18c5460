// Package memory keeps users and exercises in process memory.
// Insertion order is the store-native order reported by List and Find.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time assertions: the store views satisfy both repositories.
var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.ExerciseRepository = (*ExerciseRepository)(nil)
)

// Store is the shared backing state. Thread-safe via sync.RWMutex.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	userIndex map[primitive.ObjectID]int
	exercises []domain.Exercise
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{userIndex: make(map[primitive.ObjectID]int)}
}

// Users returns a UserRepository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Exercises returns an ExerciseRepository view of the store.
func (s *Store) Exercises() *ExerciseRepository { return &ExerciseRepository{s: s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = primitive.NewObjectID()
	r.s.userIndex[user.ID] = len(r.s.users)
	r.s.users = append(r.s.users, *user)
	return user.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.userIndex[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := r.s.users[i]
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]domain.User, len(r.s.users))
	copy(users, r.s.users)
	return users, nil
}

type ExerciseRepository struct{ s *Store }

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if exercise.Description == "" || exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise description and user ID are required")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	r.s.exercises = append(r.s.exercises, *exercise)
	return exercise.ID, nil
}

func (r *ExerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Exercise{}
	for i := range r.s.exercises {
		if filter.Limit > 0 && int64(len(out)) >= filter.Limit {
			break
		}
		if filter.Matches(&r.s.exercises[i]) {
			out = append(out, r.s.exercises[i])
		}
	}
	return out, nil
}
