package gormstore

import (
	"alcyxob/exercise-tracker/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseRecord_RoundTrip(t *testing.T) {
	in := domain.Exercise{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		Description: "swim",
		Duration:    45,
		Date:        time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}
	rec := toExerciseRecord(&in)
	assert.Equal(t, in.UserID.Hex(), rec.UserID)

	out, err := rec.toDomain()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRecords_MalformedIDs(t *testing.T) {
	_, err := userRecord{ID: "nope", Username: "bob"}.toDomain()
	assert.Error(t, err)

	_, err = exerciseRecord{ID: primitive.NewObjectID().Hex(), UserID: "nope"}.toDomain()
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("sqlite", "file::memory:")
	assert.Error(t, err)
}
