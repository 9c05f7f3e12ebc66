package catalog

import (
	"context"

	"storefront/pkg/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *

// CreatorService manages creators and reports on their earnings.
type CreatorService interface {
	Create(ctx context.Context, creator *domain.Creator) (*domain.Creator, error)
	All(ctx context.Context) ([]*domain.Creator, error)
	ByID(ctx context.Context, id domain.CreatorID) (*domain.Creator, error)
	Update(ctx context.Context, id domain.CreatorID, creator *domain.Creator) (*domain.Creator, error)
	Delete(ctx context.Context, id domain.CreatorID) error
	// TopEarningCreator fails with serrors.ErrNotFound while nothing was sold.
	TopEarningCreator(ctx context.Context) (*domain.Creator, error)
	// TopEarnings returns the revenue of the top earning creator, zero while nothing was sold.
	TopEarnings(ctx context.Context) (decimal.Decimal, error)
	// TopEarner returns the top earning creator and its revenue read together.
	// It fails with serrors.ErrNotFound while nothing was sold.
	TopEarner(ctx context.Context) (*domain.Creator, decimal.Decimal, error)
}

// ContentService manages one content variant. Games, movies and music albums
// share the same rules and differ only in T.
type ContentService[T domain.Content] interface {
	Create(ctx context.Context, content T) (T, error)
	All(ctx context.Context) ([]T, error)
	ByID(ctx context.Context, id domain.ContentID) (T, error)
	Update(ctx context.Context, id domain.ContentID, content T) (T, error)
	Delete(ctx context.Context, id domain.ContentID) error
	// Available lists the items that can currently be purchased, sorted by name.
	Available(ctx context.Context) ([]T, error)
	// Search lists the items whose name contains keyword, sorted by name.
	Search(ctx context.Context, keyword string) ([]T, error)
}

// UserService manages customers. Emails are unique.
type UserService interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	All(ctx context.Context) ([]*domain.User, error)
	ByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	Update(ctx context.Context, id domain.UserID, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) error
}

// PurchaseService records purchases.
type PurchaseService interface {
	// Purchase runs the purchase workflow and returns the stored purchase.
	Purchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	All(ctx context.Context) ([]*domain.Purchase, error)
	ByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error)
	// ByUser fails with serrors.ErrNotFound when the user does not exist.
	ByUser(ctx context.Context, userID domain.UserID) ([]*domain.Purchase, error)
}
