package gormstore

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Username == "" {
		return primitive.NilObjectID, stderrors.New("username is required")
	}
	user.ID = primitive.NewObjectID()
	rec := toUserRecord(user)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert user")
	}
	return user.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Take(&rec).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "find user")
	}
	user, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	users := make([]domain.User, 0, len(recs))
	for _, rec := range recs {
		u, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Description == "" || exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, stderrors.New("exercise description and user ID are required")
	}
	exercise.ID = primitive.NewObjectID()
	rec := toExerciseRecord(exercise)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert exercise")
	}
	return exercise.ID, nil
}

// Find applies the filter without an ORDER BY, so rows come back in scan order.
func (r *exerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	var recs []exerciseRecord
	if err := exerciseQuery(r.db.WithContext(ctx), filter).Find(&recs).Error; err != nil {
		return nil, errors.Wrap(err, "find exercises")
	}
	exercises := make([]domain.Exercise, 0, len(recs))
	for _, rec := range recs {
		e, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, nil
}

// exerciseQuery adds the filter's conditions to db. Both date bounds are inclusive.
func exerciseQuery(db *gorm.DB, filter repository.ExerciseFilter) *gorm.DB {
	q := db.Where("user_id = ?", filter.UserID.Hex())
	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.UTC())
	}
	if filter.Limit > 0 {
		q = q.Limit(int(filter.Limit))
	}
	return q
}
