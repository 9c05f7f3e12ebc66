package memory

import (
	"context"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

func (m *Memory) StoreCreator(_ context.Context, creator *domain.Creator) (domain.CreatorID, error) {
	unlock, err := m.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	m.data.creatorSeq++
	id := m.data.creatorSeq
	m.data.creators[id] = creatorFromDomain(creator)

	return domain.CreatorID(id), nil
}

func (m *Memory) Creators(_ context.Context) ([]*domain.Creator, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*domain.Creator, 0, len(m.data.creators))
	for _, id := range sortedIDs(m.data.creators) {
		c, err := m.data.creators[id].toDomain(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func (m *Memory) CreatorByID(_ context.Context, id domain.CreatorID) (*domain.Creator, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	return m.data.creator(int64(id))
}

func (d *data) creator(id int64) (*domain.Creator, error) {
	rec, ok := d.creators[id]
	if !ok {
		return nil, nil
	}

	return rec.toDomain(id)
}

func (m *Memory) UpdateCreator(_ context.Context, creator *domain.Creator) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	id := int64(creator.ID())
	if _, ok := m.data.creators[id]; ok {
		m.data.creators[id] = creatorFromDomain(creator)
	}

	return nil
}

func (m *Memory) DeleteCreator(_ context.Context, id domain.CreatorID) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if m.data.hasContentByCreator(int64(id)) {
		return serrors.With(serrors.ErrInvalidInput, "could not delete creator: creator %d is referenced by content", id)
	}
	delete(m.data.creators, int64(id))

	return nil
}

func (m *Memory) HasContentByCreatorID(_ context.Context, id domain.CreatorID) (bool, error) {
	unlock, err := m.rlock()
	if err != nil {
		return false, err
	}
	defer unlock()

	return m.data.hasContentByCreator(int64(id)), nil
}

func (d *data) hasContentByCreator(id int64) bool {
	for _, c := range d.contents {
		if c.creatorID == id {
			return true
		}
	}

	return false
}

// topCreator mirrors the SQL aggregation: revenue per creator, highest first,
// lowest creator id on ties. ok is false when nothing was sold.
func (d *data) topCreator() (id int64, revenue decimal.Decimal, ok bool) {
	totals := make(map[int64]decimal.Decimal)
	for _, p := range d.purchases {
		content, found := d.contents[p.contentID]
		if !found {
			continue
		}
		totals[content.creatorID] = totals[content.creatorID].Add(p.pricePaid)
	}

	for _, creatorID := range sortedIDs(totals) {
		if !ok || totals[creatorID].GreaterThan(revenue) {
			id, revenue, ok = creatorID, totals[creatorID], true
		}
	}

	return id, revenue, ok
}

func (m *Memory) TopEarner(_ context.Context) (*domain.Creator, decimal.Decimal, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer unlock()

	id, revenue, ok := m.data.topCreator()
	if !ok {
		return nil, decimal.Zero, nil
	}

	creator, err := m.data.creator(id)
	if err != nil {
		return nil, decimal.Zero, err
	}

	return creator, revenue, nil
}
