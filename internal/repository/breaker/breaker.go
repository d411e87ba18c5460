// Package breaker wraps repositories in a circuit breaker so an unreachable store
// fails requests fast instead of letting each one wait out its timeout.
package breaker

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrOpen is returned while the breaker rejects calls.
var ErrOpen = gobreaker.ErrOpenState

// Settings controls when the breaker trips.
type Settings struct {
	Name        string
	MaxFailures uint32        // consecutive failures before opening
	OpenTimeout time.Duration // how long to stay open before probing again
}

// New builds a breaker that ignores not-found and caller-cancelled errors;
// only store failures count against it.
func New(s Settings, log logrus.FieldLogger) *gobreaker.CircuitBreaker {
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, repository.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithField("breaker", name).Warnf("circuit breaker state changed from %s to %s", from, to)
		},
	})
}

type userRepository struct {
	next repository.UserRepository
	cb   *gobreaker.CircuitBreaker
}

// WrapUsers guards every call to next with cb.
func WrapUsers(next repository.UserRepository, cb *gobreaker.CircuitBreaker) repository.UserRepository {
	return &userRepository{next: next, cb: cb}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Create(ctx, user)
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.(primitive.ObjectID), nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.User), nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.User), nil
}

type exerciseRepository struct {
	next repository.ExerciseRepository
	cb   *gobreaker.CircuitBreaker
}

// WrapExercises guards every call to next with cb.
func WrapExercises(next repository.ExerciseRepository, cb *gobreaker.CircuitBreaker) repository.ExerciseRepository {
	return &exerciseRepository{next: next, cb: cb}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Create(ctx, exercise)
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.(primitive.ObjectID), nil
}

func (r *exerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Find(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Exercise), nil
}
