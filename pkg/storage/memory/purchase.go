package memory

import (
	"cmp"
	"context"
	"slices"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"
)

func (m *Memory) StorePurchase(_ context.Context, purchase *domain.Purchase) (domain.PurchaseID, error) {
	unlock, err := m.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	userID, contentID := int64(purchase.UserID), int64(purchase.ContentID)
	if _, ok := m.data.users[userID]; !ok {
		return 0, serrors.With(serrors.ErrInvalidInput, "could not store purchase: user %d does not exist", userID)
	}
	if _, ok := m.data.contents[contentID]; !ok {
		return 0, serrors.With(serrors.ErrInvalidInput, "could not store purchase: content %d does not exist", contentID)
	}
	if m.data.purchaseExists(userID, contentID) {
		return 0, serrors.With(serrors.ErrDuplicate,
			"could not store purchase: user %d already owns content %d", userID, contentID)
	}

	m.data.purchaseSeq++
	id := m.data.purchaseSeq
	m.data.purchases[id] = purchaseRecord{
		userID:    userID,
		contentID: contentID,
		pricePaid: purchase.PricePaid,
		date:      purchase.Date,
	}

	return domain.PurchaseID(id), nil
}

func (d *data) purchaseExists(userID, contentID int64) bool {
	for _, p := range d.purchases {
		if p.userID == userID && p.contentID == contentID {
			return true
		}
	}

	return false
}

func (m *Memory) Purchases(_ context.Context) ([]*domain.Purchase, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	return m.data.purchasesWhere(func(purchaseRecord) bool { return true })
}

func (d *data) purchasesWhere(keep func(purchaseRecord) bool) ([]*domain.Purchase, error) {
	out := make([]*domain.Purchase, 0)
	for _, id := range sortedIDs(d.purchases) {
		rec := d.purchases[id]
		if !keep(rec) {
			continue
		}
		p, err := rec.toDomain(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func (m *Memory) PurchaseByID(_ context.Context, id domain.PurchaseID) (*domain.Purchase, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, ok := m.data.purchases[int64(id)]
	if !ok {
		return nil, nil
	}

	return rec.toDomain(int64(id))
}

func (m *Memory) PurchasesByUser(_ context.Context, userID domain.UserID) ([]*domain.Purchase, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out, err := m.data.purchasesWhere(func(p purchaseRecord) bool { return p.userID == int64(userID) })
	if err != nil {
		return nil, err
	}

	// most recent first, newest id first on equal dates
	slices.SortStableFunc(out, func(a, b *domain.Purchase) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		return cmp.Compare(b.ID(), a.ID())
	})

	return out, nil
}

func (m *Memory) PurchaseExists(_ context.Context, userID domain.UserID, contentID domain.ContentID) (bool, error) {
	unlock, err := m.rlock()
	if err != nil {
		return false, err
	}
	defer unlock()

	return m.data.purchaseExists(int64(userID), int64(contentID)), nil
}
