// Package memory implements storage.Storage in process memory. It backs the
// service tests and the "memory" storage driver used for demos. The same
// uniqueness and reference rules as the SQL schema are enforced.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"storefront/pkg/storage"

	"github.com/riverqueue/river"
)

var _ storage.Storage = (*Memory)(nil)

// data is the whole state of the store. Records are plain values so cloning
// the maps is enough to snapshot it.
type data struct {
	creators  map[int64]creatorRecord
	contents  map[int64]contentRecord
	users     map[int64]userRecord
	purchases map[int64]purchaseRecord
	jobs      []river.JobArgs

	creatorSeq  int64
	contentSeq  int64
	userSeq     int64
	purchaseSeq int64
}

func newData() *data {
	return &data{
		creators:  make(map[int64]creatorRecord),
		contents:  make(map[int64]contentRecord),
		users:     make(map[int64]userRecord),
		purchases: make(map[int64]purchaseRecord),
	}
}

func (d *data) clone() *data {
	c := *d
	c.creators = maps.Clone(d.creators)
	c.contents = maps.Clone(d.contents)
	c.users = maps.Clone(d.users)
	c.purchases = maps.Clone(d.purchases)
	c.jobs = slices.Clone(d.jobs)

	return &c
}

// Memory is a map backed storage. The zero value is not usable, call New.
type Memory struct {
	mu   *sync.RWMutex
	data *data

	// tx is set on handles returned by Begin. Such a handle owns the write
	// lock until Commit or Rollback, so its methods skip locking. Once done is
	// set every method fails with storage.ErrNotInTx.
	tx       bool
	done     bool
	snapshot *data
}

// New returns an empty store.
func New() *Memory {
	return &Memory{mu: &sync.RWMutex{}, data: newData()}
}

// rlock takes the read lock. A transaction handle already owns the write lock
// and fails with storage.ErrNotInTx once it was committed or rolled back.
func (m *Memory) rlock() (func(), error) {
	if m.tx {
		if m.done {
			return nil, storage.ErrNotInTx
		}

		return func() {}, nil
	}
	m.mu.RLock()

	return m.mu.RUnlock, nil
}

// lock takes the write lock, see rlock.
func (m *Memory) lock() (func(), error) {
	if m.tx {
		if m.done {
			return nil, storage.ErrNotInTx
		}

		return func() {}, nil
	}
	m.mu.Lock()

	return m.mu.Unlock, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Begin takes the write lock and returns a handle whose changes can be undone
// with Rollback. Other callers block until the transaction ends.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.tx {
		return nil, storage.ErrAlreadyInTx
	}

	m.mu.Lock()

	return &Memory{
		mu:       m.mu,
		data:     m.data,
		tx:       true,
		snapshot: m.data.clone(),
	}, nil
}

// Commit releases the transaction lock and keeps the changes.
func (m *Memory) Commit() error {
	if !m.tx || m.done {
		return storage.ErrNotInTx
	}
	m.done = true
	m.mu.Unlock()

	return nil
}

// Rollback restores the state captured by Begin and releases the lock.
func (m *Memory) Rollback() error {
	if !m.tx || m.done {
		return storage.ErrNotInTx
	}
	*m.data = *m.snapshot
	m.done = true
	m.mu.Unlock()

	return nil
}

// WithTx runs cb inside a transaction, rolling back when it returns an error.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// AddJob records the job. Nothing consumes it; Jobs exposes the list.
func (m *Memory) AddJob(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
	unlock, err := m.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	m.data.jobs = append(m.data.jobs, args)

	return true, nil
}

// Jobs returns the jobs added so far, oldest first. A finished transaction
// handle returns nil.
func (m *Memory) Jobs() []river.JobArgs {
	unlock, err := m.rlock()
	if err != nil {
		return nil
	}
	defer unlock()

	return slices.Clone(m.data.jobs)
}
