package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"
	"storefront/pkg/storage"
	"storefront/pkg/storage/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testJob struct{}

func (testJob) Kind() string { return "MemoryTestJob" }

func seedCreator(t *testing.T, s storage.AllStorage, name string) *domain.Creator {
	t.Helper()

	c := domain.NewCreator(name, "", "")
	id, err := s.StoreCreator(context.Background(), c)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))

	return c
}

func seedContent(t *testing.T, s storage.AllStorage, c domain.Content) domain.Content {
	t.Helper()

	id, err := s.StoreContent(context.Background(), c)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))

	return c
}

func seedUser(t *testing.T, s storage.AllStorage, email string) *domain.User {
	t.Helper()

	u := domain.NewUser("user "+email, email)
	id, err := s.StoreUser(context.Background(), u)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))

	return u
}

func TestMemory_WithTx(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	err := m.WithTx(ctx, func(tx storage.AllStorage) error {
		seedCreator(t, tx, "Mojang")
		_, err := tx.AddJob(ctx, testJob{}, nil)

		return err
	})
	require.NoError(t, err)
	require.Len(t, m.Jobs(), 1)

	boom := errors.New("boom")
	err = m.WithTx(ctx, func(tx storage.AllStorage) error {
		seedCreator(t, tx, "Rolled back")
		_, err := tx.AddJob(ctx, testJob{}, nil)
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	creators, err := m.Creators(ctx)
	require.NoError(t, err)
	require.Len(t, creators, 1)
	require.Equal(t, "Mojang", creators[0].Name)
	require.Len(t, m.Jobs(), 1, "jobs added in a rolled back transaction are discarded")
}

func TestMemory_TxState(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)

	tx, err := m.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.(*memory.Memory).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, tx.Commit())
	require.ErrorIs(t, tx.Commit(), storage.ErrNotInTx)
}

func TestMemory_FinishedTxIsUnusable(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	committed, err := m.Begin(ctx)
	require.NoError(t, err)
	_, err = committed.StoreCreator(ctx, domain.NewCreator("Mojang", "", ""))
	require.NoError(t, err)
	require.NoError(t, committed.Commit())

	_, err = committed.StoreCreator(ctx, domain.NewCreator("Late", "", ""))
	require.ErrorIs(t, err, storage.ErrNotInTx)
	_, err = committed.Creators(ctx)
	require.ErrorIs(t, err, storage.ErrNotInTx)
	_, err = committed.AddJob(ctx, testJob{}, nil)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	rolledBack, err := m.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, rolledBack.Rollback())
	_, err = rolledBack.StoreUser(ctx, domain.NewUser("Jane", "jane@example.com"))
	require.ErrorIs(t, err, storage.ErrNotInTx)
	require.ErrorIs(t, rolledBack.DeleteCreator(ctx, 1), storage.ErrNotInTx)

	creators, err := m.Creators(ctx)
	require.NoError(t, err)
	require.Len(t, creators, 1, "only the committed write is kept")
	users, err := m.Users(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
	require.Empty(t, m.Jobs())
}

func TestMemory_ContentRules(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	ghost := domain.NewCreator("Ghost", "", "")
	require.NoError(t, ghost.SetID(42))
	_, err := m.StoreContent(ctx, domain.NewGame("Orphan", ghost, 2000, true))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	creator := seedCreator(t, m, "Michael Jackson")
	album := seedContent(t, m, domain.NewMusicAlbum("Thriller", creator, 1982, true, 9))

	got, err := m.ContentByID(ctx, domain.ContentTypeMusicAlbum, album.ID())
	require.NoError(t, err)
	require.Equal(t, "Michael Jackson", got.Base().Creator.Name)

	got.Base().Name = "changed outside"
	again, err := m.ContentByID(ctx, domain.ContentTypeMusicAlbum, album.ID())
	require.NoError(t, err)
	require.Equal(t, "Thriller", again.Base().Name, "returned values do not alias stored state")

	asGame, err := m.ContentByID(ctx, domain.ContentTypeGame, album.ID())
	require.NoError(t, err)
	require.Nil(t, asGame)

	require.ErrorIs(t, m.DeleteCreator(ctx, creator.ID()), serrors.ErrInvalidInput)
}

func TestMemory_Uniqueness(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	john := seedUser(t, m, "john@example.com")
	jane := seedUser(t, m, "jane@example.com")

	_, err := m.StoreUser(ctx, domain.NewUser("Another John", "john@example.com"))
	require.ErrorIs(t, err, serrors.ErrDuplicate)

	jane.SetEmail("john@example.com")
	require.ErrorIs(t, m.UpdateUser(ctx, jane), serrors.ErrDuplicate)

	creator := seedCreator(t, m, "Mojang")
	game := seedContent(t, m, domain.NewGame("Minecraft", creator, 2011, true))

	_, err = m.StorePurchase(ctx, domain.NewPurchase(john.ID(), game.ID(), game.Price()))
	require.NoError(t, err)
	_, err = m.StorePurchase(ctx, domain.NewPurchase(john.ID(), game.ID(), game.Price()))
	require.ErrorIs(t, err, serrors.ErrDuplicate)

	_, err = m.StorePurchase(ctx, domain.NewPurchase(999, game.ID(), game.Price()))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	require.NoError(t, m.DeleteUser(ctx, john.ID()))
	purchases, err := m.Purchases(ctx)
	require.NoError(t, err)
	require.Empty(t, purchases)
}

func TestMemory_PurchasesByUser(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	user := seedUser(t, m, "bob@example.com")
	creator := seedCreator(t, m, "Nolan")
	older := seedContent(t, m, domain.NewMovie("Memento", creator, 2000, true, true, 113))
	newer := seedContent(t, m, domain.NewMovie("Inception", creator, 2010, true, false, 148))

	now := time.Now().UTC()
	for _, p := range []*domain.Purchase{
		{UserID: user.ID(), ContentID: older.ID(), PricePaid: older.Price(), Date: now.Add(-time.Hour)},
		{UserID: user.ID(), ContentID: newer.ID(), PricePaid: newer.Price(), Date: now},
	} {
		_, err := m.StorePurchase(ctx, p)
		require.NoError(t, err)
	}

	purchases, err := m.PurchasesByUser(ctx, user.ID())
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	require.Equal(t, newer.ID(), purchases[0].ContentID)
	require.Equal(t, older.ID(), purchases[1].ContentID)
}

func TestMemory_TopEarningCreator(t *testing.T) {
	t.Parallel()

	m := memory.New()
	ctx := context.Background()

	top, revenue, err := m.TopEarner(ctx)
	require.NoError(t, err)
	require.Nil(t, top)
	require.True(t, revenue.IsZero())

	first := seedCreator(t, m, "First")
	second := seedCreator(t, m, "Second")
	a := seedContent(t, m, domain.NewGame("A", first, 2000, true))
	b := seedContent(t, m, domain.NewGame("B", second, 2000, true))
	user := seedUser(t, m, "tie@example.com")

	// second is stored first so the tie break cannot rely on insertion order
	_, err = m.StorePurchase(ctx, domain.NewPurchase(user.ID(), b.ID(), decimal.RequireFromString("10")))
	require.NoError(t, err)
	_, err = m.StorePurchase(ctx, domain.NewPurchase(user.ID(), a.ID(), decimal.RequireFromString("10")))
	require.NoError(t, err)

	top, revenue, err = m.TopEarner(ctx)
	require.NoError(t, err)
	require.Equal(t, first.ID(), top.ID())
	require.Equal(t, "10.00", revenue.StringFixed(2))
}
