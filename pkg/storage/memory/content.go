package memory

import (
	"context"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"
)

func (m *Memory) StoreContent(_ context.Context, content domain.Content) (domain.ContentID, error) {
	unlock, err := m.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	rec := contentFromDomain(content)
	if _, ok := m.data.creators[rec.creatorID]; !ok {
		return 0, serrors.With(serrors.ErrInvalidInput, "could not store content: creator %d does not exist", rec.creatorID)
	}

	m.data.contentSeq++
	id := m.data.contentSeq
	m.data.contents[id] = rec

	return domain.ContentID(id), nil
}

func (m *Memory) Contents(_ context.Context, contentType domain.ContentType) ([]domain.Content, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]domain.Content, 0)
	for _, id := range sortedIDs(m.data.contents) {
		if m.data.contents[id].contentType != contentType {
			continue
		}
		c, err := m.data.content(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func (m *Memory) ContentByID(
	_ context.Context,
	contentType domain.ContentType,
	id domain.ContentID,
) (domain.Content, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, ok := m.data.contents[int64(id)]
	if !ok || rec.contentType != contentType {
		return nil, nil
	}

	return m.data.content(int64(id))
}

func (d *data) content(id int64) (domain.Content, error) {
	rec := d.contents[id]
	creator, err := d.creator(rec.creatorID)
	if err != nil {
		return nil, err
	}

	return rec.toDomain(id, creator)
}

func (m *Memory) UpdateContent(_ context.Context, id domain.ContentID, content domain.Content) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	current, ok := m.data.contents[int64(id)]
	if !ok || current.contentType != content.Type() {
		return nil
	}

	rec := contentFromDomain(content)
	if _, ok := m.data.creators[rec.creatorID]; !ok {
		return serrors.With(serrors.ErrInvalidInput, "could not update content: creator %d does not exist", rec.creatorID)
	}
	m.data.contents[int64(id)] = rec

	return nil
}

func (m *Memory) DeleteContent(_ context.Context, contentType domain.ContentType, id domain.ContentID) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	rec, ok := m.data.contents[int64(id)]
	if !ok || rec.contentType != contentType {
		return nil
	}

	delete(m.data.contents, int64(id))
	for pid, p := range m.data.purchases {
		if p.contentID == int64(id) {
			delete(m.data.purchases, pid)
		}
	}

	return nil
}
