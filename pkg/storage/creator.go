package storage

import (
	"context"

	"storefront/pkg/domain"

	"github.com/shopspring/decimal"
)

// CreatorStorage persists creators and answers the revenue queries that
// aggregate purchases per creator.
type CreatorStorage interface {
	// StoreCreator inserts a creator and returns the assigned id.
	StoreCreator(ctx context.Context, creator *domain.Creator) (domain.CreatorID, error)
	// Creators returns every creator ordered by id.
	Creators(ctx context.Context) ([]*domain.Creator, error)
	// CreatorByID returns nil when the creator does not exist.
	CreatorByID(ctx context.Context, id domain.CreatorID) (*domain.Creator, error)
	// UpdateCreator overwrites the stored fields of creator, matched by its id.
	UpdateCreator(ctx context.Context, creator *domain.Creator) error
	// DeleteCreator removes the creator. Deleting a missing id is not an error.
	DeleteCreator(ctx context.Context, id domain.CreatorID) error
	// HasContentByCreatorID reports whether any content item references the creator.
	HasContentByCreatorID(ctx context.Context, id domain.CreatorID) (bool, error)
	// TopEarner returns the creator whose content earned the most together with
	// that revenue, the lowest id winning ties. Both come from one read. It
	// returns a nil creator and zero revenue when there are no purchases.
	TopEarner(ctx context.Context) (*domain.Creator, decimal.Decimal, error)
}
