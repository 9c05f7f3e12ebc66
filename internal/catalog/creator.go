package catalog

import (
	"context"
	"fmt"

	"storefront/pkg/domain"
	"storefront/pkg/logger"
	"storefront/pkg/serrors"
	"storefront/pkg/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type creatorService struct {
	storage storage.Storage
}

// NewCreatorService returns a CreatorService backed by storage.
func NewCreatorService(storage storage.Storage) CreatorService {
	return &creatorService{storage: storage}
}

func (s *creatorService) Create(ctx context.Context, creator *domain.Creator) (*domain.Creator, error) {
	if creator.ID() != 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "a new creator cannot carry id %d", creator.ID())
	}
	creator.SetCountry(creator.Country)
	creator.SetBio(creator.Bio)
	if err := creator.Validate(); err != nil {
		return nil, err
	}

	id, err := s.storage.StoreCreator(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("could not create creator: %w", err)
	}
	if err := creator.SetID(id); err != nil {
		return nil, err
	}

	logger.Info(ctx, "creator created", zap.Int64("creator_id", int64(id)))

	return creator, nil
}

func (s *creatorService) All(ctx context.Context) ([]*domain.Creator, error) {
	creators, err := s.storage.Creators(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list creators: %w", err)
	}

	return creators, nil
}

func (s *creatorService) ByID(ctx context.Context, id domain.CreatorID) (*domain.Creator, error) {
	creator, err := s.storage.CreatorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get creator: %w", err)
	}
	if creator == nil {
		return nil, serrors.With(serrors.ErrNotFound, "creator %d not found", id)
	}

	return creator, nil
}

func (s *creatorService) Update(
	ctx context.Context,
	id domain.CreatorID,
	creator *domain.Creator,
) (*domain.Creator, error) {
	creator.SetCountry(creator.Country)
	creator.SetBio(creator.Bio)
	if err := creator.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ByID(ctx, id); err != nil {
		return nil, err
	}
	if err := bindID(creator, id); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateCreator(ctx, creator); err != nil {
		return nil, fmt.Errorf("could not update creator: %w", err)
	}

	logger.Info(ctx, "creator updated", zap.Int64("creator_id", int64(id)))

	return creator, nil
}

func (s *creatorService) Delete(ctx context.Context, id domain.CreatorID) error {
	if _, err := s.ByID(ctx, id); err != nil {
		return err
	}

	hasContent, err := s.storage.HasContentByCreatorID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not check creator content: %w", err)
	}
	if hasContent {
		return serrors.With(serrors.ErrInvalidInput, "cannot delete creator with existing content")
	}

	if err := s.storage.DeleteCreator(ctx, id); err != nil {
		return fmt.Errorf("could not delete creator: %w", err)
	}

	logger.Info(ctx, "creator deleted", zap.Int64("creator_id", int64(id)))

	return nil
}

func (s *creatorService) TopEarner(ctx context.Context) (*domain.Creator, decimal.Decimal, error) {
	creator, revenue, err := s.storage.TopEarner(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("could not get top earning creator: %w", err)
	}
	if creator == nil {
		return nil, decimal.Zero, serrors.With(serrors.ErrNotFound, "no purchases recorded yet")
	}

	return creator, revenue, nil
}

func (s *creatorService) TopEarningCreator(ctx context.Context) (*domain.Creator, error) {
	creator, _, err := s.TopEarner(ctx)

	return creator, err
}

func (s *creatorService) TopEarnings(ctx context.Context) (decimal.Decimal, error) {
	_, revenue, err := s.storage.TopEarner(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not get top earnings: %w", err)
	}

	return revenue, nil
}

// identifiable is satisfied by every entity with a set-once id.
type identifiable[I ~int64] interface {
	ID() I
	SetID(id I) error
}

// bindID makes sure entity refers to id, assigning it when still unset.
func bindID[I ~int64](entity identifiable[I], id I) error {
	switch entity.ID() {
	case 0:
		return entity.SetID(id)
	case id:
		return nil
	default:
		return serrors.With(serrors.ErrInvalidInput, "id %d does not match path id %d", entity.ID(), id)
	}
}
