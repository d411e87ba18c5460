package gormstore

import (
	"alcyxob/exercise-tracker/internal/domain"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRecord struct {
	ID       string `gorm:"primaryKey;type:char(24)"`
	Username string `gorm:"type:varchar(255);not null;index"`
}

func (userRecord) TableName() string {
	return "users"
}

type exerciseRecord struct {
	ID          string    `gorm:"primaryKey;type:char(24)"`
	UserID      string    `gorm:"type:char(24);not null;index:idx_user_date,priority:1"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"not null;index:idx_user_date,priority:2"`
}

func (exerciseRecord) TableName() string {
	return "exercises"
}

func toUserRecord(u *domain.User) userRecord {
	return userRecord{ID: u.ID.Hex(), Username: u.Username}
}

func (r userRecord) toDomain() (domain.User, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return domain.User{}, errors.Wrapf(err, "user %q has a malformed id", r.ID)
	}
	return domain.User{ID: id, Username: r.Username}, nil
}

func toExerciseRecord(e *domain.Exercise) exerciseRecord {
	return exerciseRecord{
		ID:          e.ID.Hex(),
		UserID:      e.UserID.Hex(),
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}
}

func (r exerciseRecord) toDomain() (domain.Exercise, error) {
	id, err := primitive.ObjectIDFromHex(r.ID)
	if err != nil {
		return domain.Exercise{}, errors.Wrapf(err, "exercise %q has a malformed id", r.ID)
	}
	userID, err := primitive.ObjectIDFromHex(r.UserID)
	if err != nil {
		return domain.Exercise{}, errors.Wrapf(err, "exercise %q has a malformed user id", r.ID)
	}
	return domain.Exercise{
		ID:          id,
		UserID:      userID,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date.UTC(),
	}, nil
}
