package storage

import (
	"context"

	"storefront/pkg/domain"
)

// PurchaseStorage persists purchases. A (user, content) pair can be stored once.
type PurchaseStorage interface {
	StorePurchase(ctx context.Context, purchase *domain.Purchase) (domain.PurchaseID, error)
	// Purchases returns every purchase ordered by id.
	Purchases(ctx context.Context) ([]*domain.Purchase, error)
	PurchaseByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	// PurchasesByUser returns the purchases of a user, most recent first.
	PurchasesByUser(ctx context.Context, userID domain.UserID) ([]*domain.Purchase, error)
	// PurchaseExists reports whether the user already bought the content item.
	PurchaseExists(ctx context.Context, userID domain.UserID, contentID domain.ContentID) (bool, error)
}
