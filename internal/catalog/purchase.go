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

type purchaseService struct {
	options Options
	storage storage.Storage
}

// NewPurchaseService returns a PurchaseService backed by storage.
func NewPurchaseService(storage storage.Storage, options Options) PurchaseService {
	return &purchaseService{options: options.withDefaults(), storage: storage}
}

// Purchase records that a user bought a content item. The checks run in a
// fixed order so callers can tell a missing reference from a broken rule:
//
//  1. the purchase itself is valid
//  2. the user exists
//  3. the content exists, probing games, then movies, then music albums
//  4. the content is available
//  5. the user does not own the content yet
//
// Steps 2 to 5, the insert and the PurchaseRecorded job run in one storage
// transaction. When a Locker is configured the whole sequence is additionally
// serialized per (user, content).
func (s *purchaseService) Purchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if purchase.ID() != 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "a new purchase cannot carry id %d", purchase.ID())
	}
	if purchase.Date.IsZero() {
		purchase.Date = s.options.Now().UTC()
	}
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	ctx = logger.WithFields(ctx,
		zap.Int64("user_id", int64(purchase.UserID)),
		zap.Int64("content_id", int64(purchase.ContentID)))

	release, err := s.options.Locker.Acquire(ctx, lockKey(purchase), s.options.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("could not lock purchase: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not release purchase lock", zap.Error(err))
		}
	}()

	var id domain.PurchaseID
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		content, err := s.checkPurchasable(ctx, tx, purchase)
		if err != nil {
			return err
		}

		id, err = tx.StorePurchase(ctx, purchase)
		if err != nil {
			return fmt.Errorf("could not store purchase: %w", err)
		}

		if _, err := tx.AddJob(ctx, PurchaseRecordedArgs{
			PurchaseID:  id,
			UserID:      purchase.UserID,
			ContentID:   purchase.ContentID,
			ContentType: content.Type(),
			PricePaid:   purchase.PricePaid,
			maxAttempts: s.options.JobMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add purchase recorded job: %w", err)
		}

		return nil
	}); err != nil {
		logger.Debug(ctx, "purchase rejected", zap.Error(err))

		return nil, err
	}
	// the id is assigned only once the transaction committed
	if err := purchase.SetID(id); err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase recorded",
		zap.Int64("purchase_id", int64(purchase.ID())),
		zap.String("price_paid", purchase.PricePaid.StringFixed(2)))

	return purchase, nil
}

// checkPurchasable runs steps 2 to 5 of the workflow and returns the content.
func (s *purchaseService) checkPurchasable(
	ctx context.Context,
	tx storage.AllStorage,
	purchase *domain.Purchase,
) (domain.Content, error) {
	user, err := tx.UserByID(ctx, purchase.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %d not found", purchase.UserID)
	}

	content, err := findContent(ctx, tx, purchase.ContentID)
	if err != nil {
		return nil, err
	}
	if !content.Base().Available {
		return nil, serrors.With(serrors.ErrInvalidInput, "content is not available")
	}

	owned, err := tx.PurchaseExists(ctx, purchase.UserID, purchase.ContentID)
	if err != nil {
		return nil, fmt.Errorf("could not check existing purchase: %w", err)
	}
	if owned {
		return nil, serrors.With(serrors.ErrDuplicate, "user %d already purchased content %d",
			purchase.UserID, purchase.ContentID)
	}

	return content, nil
}

// findContent probes every content type in order and returns the first match.
func findContent(ctx context.Context, s storage.ContentStorage, id domain.ContentID) (domain.Content, error) {
	for _, contentType := range domain.ContentTypes {
		content, err := s.ContentByID(ctx, contentType, id)
		if err != nil {
			return nil, fmt.Errorf("could not get content: %w", err)
		}
		if content != nil {
			return content, nil
		}
	}

	return nil, serrors.With(serrors.ErrNotFound, "content %d not found", id)
}

func lockKey(purchase *domain.Purchase) string {
	return fmt.Sprintf("purchase:%d:%d", purchase.UserID, purchase.ContentID)
}

func (s *purchaseService) All(ctx context.Context) ([]*domain.Purchase, error) {
	purchases, err := s.storage.Purchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list purchases: %w", err)
	}

	return purchases, nil
}

func (s *purchaseService) ByID(ctx context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	purchase, err := s.storage.PurchaseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get purchase: %w", err)
	}
	if purchase == nil {
		return nil, serrors.With(serrors.ErrNotFound, "purchase %d not found", id)
	}

	return purchase, nil
}

func (s *purchaseService) ByUser(ctx context.Context, userID domain.UserID) ([]*domain.Purchase, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %d not found", userID)
	}

	purchases, err := s.storage.PurchasesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list user purchases: %w", err)
	}

	return purchases, nil
}
