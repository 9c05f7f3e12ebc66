package storage

import (
	"context"

	"storefront/pkg/domain"
)

// UserStorage persists users. Emails are unique.
type UserStorage interface {
	StoreUser(ctx context.Context, user *domain.User) (domain.UserID, error)
	Users(ctx context.Context) ([]*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches the email exactly as stored.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	// DeleteUser removes the user together with their purchases.
	DeleteUser(ctx context.Context, id domain.UserID) error
}
