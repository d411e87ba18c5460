package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository" // Import repository package
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// maxDuration keeps coerced minutes inside a 32-bit int.
const maxDuration = math.MaxInt32

// AddExerciseInput carries the raw request fields; coercion happens in the service.
type AddExerciseInput struct {
	Description string
	Duration    string
	Date        string // optional, defaults to today
	// BodyErr is a request body that could not be decoded at all.
	// It is reported only once the user is known to exist.
	BodyErr error
}

// LogQuery carries the raw query parameters of a log request.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// ExerciseResult is what AddExercise hands back: the stored exercise and its owner.
type ExerciseResult struct {
	User     domain.User
	Exercise domain.Exercise
}

// ExerciseLog is a user's filtered exercise history.
type ExerciseLog struct {
	User      domain.User
	Exercises []domain.Exercise
}

// ExerciseService is the exercise log: adding entries and querying them.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID string, in AddExerciseInput) (*ExerciseResult, error)
	GetLogs(ctx context.Context, userID string, q LogQuery) (*ExerciseLog, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	storeTimeout time.Duration
	now          func() time.Time
	log          logrus.FieldLogger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository, opts ...Option) ExerciseService {
	o := applyOptions(opts)
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		storeTimeout: o.storeTimeout,
		now:          o.now,
		log:          o.log,
	}
}

// AddExercise records an exercise for an existing user.
func (s *exerciseService) AddExercise(ctx context.Context, userID string, in AddExerciseInput) (*ExerciseResult, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.BodyErr != nil {
		return nil, validationError("malformed request body: %v", in.BodyErr)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, validationError("description is required")
	}
	duration, err := parseDuration(in.Duration)
	if err != nil {
		return nil, err
	}
	date := domain.Day(s.now().UTC())
	if strings.TrimSpace(in.Date) != "" {
		date, err = domain.ParseDate(in.Date)
		if err != nil {
			return nil, validationError("date %q is not a recognised date", in.Date)
		}
	}

	exercise := domain.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	id, err := s.exerciseRepo.Create(ctx, &exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id

	return &ExerciseResult{User: *user, Exercise: exercise}, nil
}

// GetLogs returns the user's exercises within the optional inclusive date bounds.
// Bounds that do not parse are dropped rather than rejected.
func (s *exerciseService) GetLogs(ctx context.Context, userID string, q LogQuery) (*ExerciseLog, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := repository.ExerciseFilter{
		UserID: user.ID,
		From:   s.parseBound("from", q.From),
		To:     s.parseBound("to", q.To),
		Limit:  parseLimit(q.Limit),
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	exercises, err := s.exerciseRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	return &ExerciseLog{User: *user, Exercises: exercises}, nil
}

// resolveUser maps both malformed and unknown ids to ErrUserNotFound.
func (s *exerciseService) resolveUser(ctx context.Context, userID string) (*domain.User, error) {
	id, err := repository.ParseID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *exerciseService) parseBound(name, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{"param": name, "value": raw}).Warn("ignoring unparseable date bound")
		return nil
	}
	return &t
}

// parseDuration coerces minutes from a form or JSON value. Fractions are truncated.
func parseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, validationError("duration is required")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, validationError("duration %q is not a number", raw)
	}
	if f < 0 {
		return 0, validationError("duration must not be negative")
	}
	if f > maxDuration {
		return 0, validationError("duration %q is too large", raw)
	}
	return int(math.Trunc(f)), nil
}

// parseLimit returns 0 (no limit) for anything but a positive integer.
func parseLimit(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
