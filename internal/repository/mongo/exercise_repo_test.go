package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildExerciseQuery_UserOnly(t *testing.T) {
	id := primitive.NewObjectID()
	q := buildExerciseQuery(repository.ExerciseFilter{UserID: id})
	assert.Equal(t, bson.M{"userId": id}, q)
}

func TestBuildExerciseQuery_Bounds(t *testing.T) {
	id := primitive.NewObjectID()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	q := buildExerciseQuery(repository.ExerciseFilter{UserID: id, From: &from, To: &to, Limit: 3})
	assert.Equal(t, bson.M{
		"userId": id,
		"date":   bson.M{"$gte": from, "$lte": to},
	}, q)

	q = buildExerciseQuery(repository.ExerciseFilter{UserID: id, To: &to})
	assert.Equal(t, bson.M{"userId": id, "date": bson.M{"$lte": to}}, q)
}

func TestDocumentKeys(t *testing.T) {
	raw, err := bson.Marshal(domain.Exercise{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		Description: "run",
		Duration:    30,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	var doc bson.M
	assert.NoError(t, bson.Unmarshal(raw, &doc))
	for _, k := range []string{"_id", "userId", "description", "duration", "date"} {
		assert.Contains(t, doc, k)
	}
	assert.Len(t, doc, 5)

	raw, err = bson.Marshal(domain.User{Username: "alice"})
	assert.NoError(t, err)
	doc = bson.M{}
	assert.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, bson.M{"username": "alice"}, doc)
}
