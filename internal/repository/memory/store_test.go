package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestUsers_CreateGetList(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	a := &domain.User{Username: "alice"}
	idA, err := users.Create(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, idA, a.ID)

	_, err = users.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err, "duplicate usernames are allowed")

	got, err := users.GetByID(ctx, idA)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, idA, list[0].ID, "list keeps insertion order")
}

func TestUsers_GetMissing(t *testing.T) {
	_, err := NewStore().Users().GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsers_CreateRejectsEmptyUsername(t *testing.T) {
	_, err := NewStore().Users().Create(context.Background(), &domain.User{})
	assert.Error(t, err)
}

func TestExercises_FindFiltersAndLimits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ex := store.Exercises()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	for _, d := range []int{5, 1, 3, 9} {
		_, err := ex.Create(ctx, &domain.Exercise{UserID: owner, Description: fmt.Sprintf("d%d", d), Duration: d, Date: day(d)})
		require.NoError(t, err)
	}
	_, err := ex.Create(ctx, &domain.Exercise{UserID: other, Description: "x", Date: day(3)})
	require.NoError(t, err)

	all, err := ex.Find(ctx, repository.ExerciseFilter{UserID: owner})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"d5", "d1", "d3", "d9"}, descriptions(all), "insertion order, no sort")

	from, to := day(3), day(5)
	ranged, err := ex.Find(ctx, repository.ExerciseFilter{UserID: owner, From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, []string{"d5", "d3"}, descriptions(ranged), "bounds are inclusive")

	limited, err := ex.Find(ctx, repository.ExerciseFilter{UserID: owner, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"d5", "d1"}, descriptions(limited))

	limitedRange, err := ex.Find(ctx, repository.ExerciseFilter{UserID: owner, From: &from, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"d5"}, descriptions(limitedRange))
}

func TestExercises_FindEmpty(t *testing.T) {
	got, err := NewStore().Exercises().Find(context.Background(), repository.ExerciseFilter{UserID: primitive.NewObjectID()})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	owner := primitive.NewObjectID()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Exercises().Create(ctx, &domain.Exercise{UserID: owner, Description: "run", Duration: i, Date: day(1)})
			_, _ = store.Exercises().Find(ctx, repository.ExerciseFilter{UserID: owner})
		}(i)
	}
	wg.Wait()

	got, err := store.Exercises().Find(ctx, repository.ExerciseFilter{UserID: owner})
	require.NoError(t, err)
	assert.Len(t, got, 50)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStore().Users().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func descriptions(exs []domain.Exercise) []string {
	out := make([]string, len(exs))
	for i, e := range exs {
		out[i] = e.Description
	}
	return out
}
