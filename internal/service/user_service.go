package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"strings"
	"time"
)

// UserService is the user directory: registration and listing.
type UserService interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	userRepo     repository.UserRepository
	storeTimeout time.Duration
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, opts ...Option) UserService {
	o := applyOptions(opts)
	return &userService{
		userRepo:     userRepo,
		storeTimeout: o.storeTimeout,
	}
}

// Register creates a user. Usernames need not be unique.
func (s *userService) Register(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationError("username is required")
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	user := &domain.User{Username: username}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// ListAll returns every user in store order. Never returns a nil slice without an error.
func (s *userService) ListAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
