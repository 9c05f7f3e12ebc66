package catalog

import (
	"context"
	"fmt"

	"storefront/pkg/domain"
	"storefront/pkg/logger"
	"storefront/pkg/serrors"
	"storefront/pkg/storage"

	"go.uber.org/zap"
)

type userService struct {
	storage storage.Storage
}

// NewUserService returns a UserService backed by storage.
func NewUserService(storage storage.Storage) UserService {
	return &userService{storage: storage}
}

func (s *userService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID() != 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "a new user cannot carry id %d", user.ID())
	}
	normalizeUser(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.storage.UserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("could not look up user email: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrDuplicate, "a user with email %s already exists", user.Email)
	}

	id, err := s.storage.StoreUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	if err := user.SetID(id); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", zap.Int64("user_id", int64(id)))

	return user, nil
}

func (s *userService) All(ctx context.Context) ([]*domain.User, error) {
	users, err := s.storage.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

func (s *userService) ByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %d not found", id)
	}

	return user, nil
}

func (s *userService) Update(ctx context.Context, id domain.UserID, user *domain.User) (*domain.User, error) {
	normalizeUser(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ByID(ctx, id); err != nil {
		return nil, err
	}
	if err := bindID(user, id); err != nil {
		return nil, err
	}

	owner, err := s.storage.UserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("could not look up user email: %w", err)
	}
	if owner != nil && owner.ID() != id {
		return nil, serrors.With(serrors.ErrDuplicate, "a user with email %s already exists", user.Email)
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	logger.Info(ctx, "user updated", zap.Int64("user_id", int64(id)))

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id domain.UserID) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	logger.Info(ctx, "user deleted", zap.Int64("user_id", int64(id)))

	return nil
}
