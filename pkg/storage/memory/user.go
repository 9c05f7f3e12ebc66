package memory

import (
	"context"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"
)

func (m *Memory) StoreUser(_ context.Context, user *domain.User) (domain.UserID, error) {
	unlock, err := m.lock()
	if err != nil {
		return 0, err
	}
	defer unlock()

	if m.data.emailTaken(user.Email, 0) {
		return 0, serrors.With(serrors.ErrDuplicate, "could not store user: email %s already exists", user.Email)
	}

	m.data.userSeq++
	id := m.data.userSeq
	m.data.users[id] = userRecord{name: user.Name, email: user.Email}

	return domain.UserID(id), nil
}

func (d *data) emailTaken(email string, except int64) bool {
	for id, u := range d.users {
		if id != except && u.email == email {
			return true
		}
	}

	return false
}

func (m *Memory) Users(_ context.Context) ([]*domain.User, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]*domain.User, 0, len(m.data.users))
	for _, id := range sortedIDs(m.data.users) {
		u, err := m.data.users[id].toDomain(id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, nil
}

func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, ok := m.data.users[int64(id)]
	if !ok {
		return nil, nil
	}

	return rec.toDomain(int64(id))
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	unlock, err := m.rlock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	for id, rec := range m.data.users {
		if rec.email == email {
			return rec.toDomain(id)
		}
	}

	return nil, nil
}

func (m *Memory) UpdateUser(_ context.Context, user *domain.User) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	id := int64(user.ID())
	if _, ok := m.data.users[id]; !ok {
		return nil
	}
	if m.data.emailTaken(user.Email, id) {
		return serrors.With(serrors.ErrDuplicate, "could not update user: email %s already exists", user.Email)
	}
	m.data.users[id] = userRecord{name: user.Name, email: user.Email}

	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id domain.UserID) error {
	unlock, err := m.lock()
	if err != nil {
		return err
	}
	defer unlock()

	delete(m.data.users, int64(id))
	for pid, p := range m.data.purchases {
		if p.userID == int64(id) {
			delete(m.data.purchases, pid)
		}
	}

	return nil
}
