package catalog_test

import (
	"context"
	"testing"

	"storefront/internal/catalog"
	"storefront/pkg/domain"
	"storefront/pkg/serrors"
	"storefront/pkg/storage/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newMemoryCatalog(t *testing.T) (*memory.Memory, *catalog.Catalog) {
	t.Helper()

	store := memory.New()

	return store, catalog.New(store, catalog.Options{})
}

// scenarioA creates Eric Barone, Stardew Valley and Yelena and buys the game.
func scenarioA(t *testing.T, c *catalog.Catalog) (*domain.User, domain.Content, *domain.Purchase) {
	t.Helper()
	ctx := context.Background()

	creator, err := c.Creators.Create(ctx, domain.NewCreator("Eric Barone", "USA", ""))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultBio, creator.Bio)

	game, err := c.Games.Create(ctx, domain.NewGame("Stardew Valley", creator, 2016, true))
	require.NoError(t, err)
	require.Equal(t, "15.99", game.Price().StringFixed(2))

	user, err := c.Users.Create(ctx, domain.NewUser("Yelena", "yelena@mail.com"))
	require.NoError(t, err)

	purchase, err := c.Purchases.Purchase(ctx, domain.NewPurchase(user.ID(), game.ID(), game.Price()))
	require.NoError(t, err)
	require.NotZero(t, purchase.ID())

	return user, game, purchase
}

func TestScenarioA_PurchaseFlow(t *testing.T) {
	t.Parallel()

	store, c := newMemoryCatalog(t)
	user, game, purchase := scenarioA(t, c)

	stored, err := c.Purchases.ByID(context.Background(), purchase.ID())
	require.NoError(t, err)
	require.Equal(t, user.ID(), stored.UserID)
	require.Equal(t, game.ID(), stored.ContentID)

	jobs := store.Jobs()
	require.Len(t, jobs, 1)
	args, ok := jobs[0].(catalog.PurchaseRecordedArgs)
	require.True(t, ok)
	require.Equal(t, purchase.ID(), args.PurchaseID)
	require.Equal(t, domain.ContentTypeGame, args.ContentType)
	require.True(t, decimal.RequireFromString("15.99").Equal(args.PricePaid))

	top, err := c.Creators.TopEarningCreator(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Eric Barone", top.Name)
	earnings, err := c.Creators.TopEarnings(context.Background())
	require.NoError(t, err)
	require.Equal(t, "15.99", earnings.StringFixed(2))
}

func TestScenarioB_DuplicatePurchase(t *testing.T) {
	t.Parallel()

	store, c := newMemoryCatalog(t)
	user, game, _ := scenarioA(t, c)

	_, err := c.Purchases.Purchase(context.Background(), domain.NewPurchase(user.ID(), game.ID(), game.Price()))
	require.ErrorIs(t, err, serrors.ErrDuplicate)
	require.Len(t, store.Jobs(), 1, "the rejected purchase enqueues nothing")
}

func TestScenarioC_InvalidUserNeverReachesStorage(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)

	// a nil storage would panic on any call
	users := catalog.NewUserService(nil)
	_, err := users.Create(context.Background(), domain.NewUser("", "no-email"))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	_, err = c.Users.Create(context.Background(), domain.NewUser("Yelena", "no-email"))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.EqualError(t, err, "invalid email format")
}

func TestScenarioD_CreatorDeletionBlockedByContent(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	creator, err := c.Creators.Create(ctx, domain.NewCreator("CD Projekt Red", "Poland", ""))
	require.NoError(t, err)
	game, err := c.Games.Create(ctx, domain.NewGame("The Witcher 3", creator, 2015, true))
	require.NoError(t, err)

	err = c.Creators.Delete(ctx, creator.ID())
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.EqualError(t, err, "cannot delete creator with existing content")

	require.NoError(t, c.Games.Delete(ctx, game.ID()))
	require.NoError(t, c.Creators.Delete(ctx, creator.ID()))

	_, err = c.Creators.ByID(ctx, creator.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestScenarioE_UnavailableIsNotMissing(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	creator, err := c.Creators.Create(ctx, domain.NewCreator("Wachowskis", "USA", ""))
	require.NoError(t, err)
	movie, err := c.Movies.Create(ctx, domain.NewMovie("The Matrix", creator, 1999, false, true, 136))
	require.NoError(t, err)
	user, err := c.Users.Create(ctx, domain.NewUser("Neo", "neo@zion.io"))
	require.NoError(t, err)

	_, err = c.Purchases.Purchase(ctx, domain.NewPurchase(user.ID(), movie.ID(), movie.Price()))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.EqualError(t, err, "content is not available")

	_, err = c.Purchases.Purchase(ctx, domain.NewPurchase(user.ID(), movie.ID()+100, movie.Price()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPurchase_ProbesEveryContentType(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	creator, err := c.Creators.Create(ctx, domain.NewCreator("Pink Floyd", "UK", ""))
	require.NoError(t, err)
	album, err := c.Albums.Create(ctx, domain.NewMusicAlbum("The Wall", creator, 1979, true, 26))
	require.NoError(t, err)
	user, err := c.Users.Create(ctx, domain.NewUser("Roger", "roger@example.com"))
	require.NoError(t, err)

	purchase, err := c.Purchases.Purchase(ctx, domain.NewPurchase(user.ID(), album.ID(), album.Price()))
	require.NoError(t, err)
	require.Equal(t, "51.74", purchase.PricePaid.StringFixed(2))

	byUser, err := c.Purchases.ByUser(ctx, user.ID())
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	_, err = c.Purchases.ByUser(ctx, user.ID()+1)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestContentService_ReferentialGating(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	ghost := domain.NewCreator("Ghost", "", "")
	require.NoError(t, ghost.SetID(404))

	_, err := c.Games.Create(ctx, domain.NewGame("Orphan", ghost, 2020, true))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = c.Games.Create(ctx, domain.NewGame("", ghost, 2020, true))
	require.ErrorIs(t, err, serrors.ErrInvalidInput, "validation runs before the creator lookup")
}

func TestContentService_CRUD(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	nolan, err := c.Creators.Create(ctx, domain.NewCreator("Christopher Nolan", "UK", "Director"))
	require.NoError(t, err)

	inception, err := c.Movies.Create(ctx, domain.NewMovie("Inception", nolan, 2010, true, false, 148))
	require.NoError(t, err)
	_, err = c.Movies.Create(ctx, domain.NewMovie("Memento", nolan, 2000, false, true, 113))
	require.NoError(t, err)
	_, err = c.Movies.Create(ctx, domain.NewMovie("Interstellar", nolan, 2014, true, true, 169))
	require.NoError(t, err)

	first, err := c.Movies.ByID(ctx, inception.ID())
	require.NoError(t, err)
	second, err := c.Movies.ByID(ctx, inception.ID())
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = c.Games.ByID(ctx, inception.ID())
	require.ErrorIs(t, err, serrors.ErrNotFound, "a movie id is not a game id")

	available, err := c.Movies.Available(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	require.Equal(t, "Inception", available[0].Name)
	require.Equal(t, "Interstellar", available[1].Name)

	found, err := c.Movies.Search(ctx, "  MEM ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Memento", found[0].Name)

	changed := domain.NewMovie("Inception", nolan, 2010, true, true, 148)
	updated, err := c.Movies.Update(ctx, inception.ID(), changed)
	require.NoError(t, err)
	require.Equal(t, inception.ID(), updated.ID())
	require.Equal(t, "4.99", updated.Price().StringFixed(2))

	_, err = c.Movies.Update(ctx, 999, domain.NewMovie("Tenet", nolan, 2020, true, true, 150))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = c.Movies.Update(ctx, inception.ID(), domain.NewMovie("Inception", nolan, 2010, true, true, 0))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	require.NoError(t, c.Movies.Delete(ctx, inception.ID()))
	require.ErrorIs(t, c.Movies.Delete(ctx, inception.ID()), serrors.ErrNotFound)

	all, err := c.Movies.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUserService_CRUD(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	john, err := c.Users.Create(ctx, domain.NewUser(" John ", "john@EXAMPLE.com"))
	require.NoError(t, err)
	require.Equal(t, "John", john.Name)
	require.Equal(t, "john@example.com", john.Email)

	_, err = c.Users.Create(ctx, domain.NewUser("John again", "john@Example.COM"))
	require.ErrorIs(t, err, serrors.ErrDuplicate)

	jane, err := c.Users.Create(ctx, domain.NewUser("Jane", "jane@example.com"))
	require.NoError(t, err)

	_, err = c.Users.Update(ctx, jane.ID(), domain.NewUser("Jane", "john@example.com"))
	require.ErrorIs(t, err, serrors.ErrDuplicate)

	updated, err := c.Users.Update(ctx, jane.ID(), domain.NewUser("Jane Doe", "jane@example.com"))
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", updated.Name)

	_, err = c.Users.Update(ctx, 999, domain.NewUser("Nobody", "nobody@example.com"))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, c.Users.Delete(ctx, john.ID()))
	require.ErrorIs(t, c.Users.Delete(ctx, john.ID()), serrors.ErrNotFound)

	users, err := c.Users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCreatorService(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	_, err := c.Creators.TopEarningCreator(ctx)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	earnings, err := c.Creators.TopEarnings(ctx)
	require.NoError(t, err)
	require.True(t, earnings.IsZero())

	_, err = c.Creators.Create(ctx, domain.NewCreator(" ", "", ""))
	require.ErrorIs(t, err, serrors.ErrInvalidInput)

	creator, err := c.Creators.Create(ctx, domain.NewCreator("Mojang", "", ""))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultCountry, creator.Country)

	_, err = c.Creators.Create(ctx, creator)
	require.ErrorIs(t, err, serrors.ErrInvalidInput, "an already stored creator cannot be created again")

	updated, err := c.Creators.Update(ctx, creator.ID(), domain.NewCreator("Mojang Studios", "Sweden", ""))
	require.NoError(t, err)
	require.Equal(t, creator.ID(), updated.ID())

	stored, err := c.Creators.ByID(ctx, creator.ID())
	require.NoError(t, err)
	require.Equal(t, "Mojang Studios", stored.Name)
	require.Equal(t, "Sweden", stored.Country)

	_, err = c.Creators.Update(ctx, 999, domain.NewCreator("Nobody", "", ""))
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, c.Creators.Delete(ctx, 999), serrors.ErrNotFound)

	all, err := c.Creators.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestByID_RepeatedReadsAreEqual(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()
	user, game, purchase := scenarioA(t, c)
	creatorID := game.Base().CreatorID()

	firstCreator, err := c.Creators.ByID(ctx, creatorID)
	require.NoError(t, err)
	secondCreator, err := c.Creators.ByID(ctx, creatorID)
	require.NoError(t, err)
	require.Equal(t, firstCreator, secondCreator)

	firstGame, err := c.Games.ByID(ctx, game.ID())
	require.NoError(t, err)
	secondGame, err := c.Games.ByID(ctx, game.ID())
	require.NoError(t, err)
	require.Equal(t, firstGame, secondGame)
	require.Equal(t, firstGame.Describe(), secondGame.Describe())

	firstUser, err := c.Users.ByID(ctx, user.ID())
	require.NoError(t, err)
	secondUser, err := c.Users.ByID(ctx, user.ID())
	require.NoError(t, err)
	require.Equal(t, firstUser, secondUser)

	firstPurchase, err := c.Purchases.ByID(ctx, purchase.ID())
	require.NoError(t, err)
	secondPurchase, err := c.Purchases.ByID(ctx, purchase.ID())
	require.NoError(t, err)
	require.Equal(t, firstPurchase, secondPurchase)
	require.NotSame(t, firstPurchase, secondPurchase, "reads return copies")
}

func TestPurchase_RejectsSubCentPrice(t *testing.T) {
	t.Parallel()

	store, c := newMemoryCatalog(t)
	ctx := context.Background()

	creator, err := c.Creators.Create(ctx, domain.NewCreator("Mojang", "", ""))
	require.NoError(t, err)
	game, err := c.Games.Create(ctx, domain.NewGame("Minecraft", creator, 2011, true))
	require.NoError(t, err)
	user, err := c.Users.Create(ctx, domain.NewUser("Jane", "jane@example.com"))
	require.NoError(t, err)

	for _, price := range []string{"0.001", "1.999", "100000000"} {
		_, err = c.Purchases.Purchase(ctx, domain.NewPurchase(user.ID(), game.ID(), decimal.RequireFromString(price)))
		require.ErrorIs(t, err, serrors.ErrInvalidInput, price)
	}

	purchases, err := c.Purchases.All(ctx)
	require.NoError(t, err)
	require.Empty(t, purchases)
	require.Empty(t, store.Jobs())

	earnings, err := c.Creators.TopEarnings(ctx)
	require.NoError(t, err)
	require.True(t, earnings.IsZero())
}

func TestCreatorService_TopEarner(t *testing.T) {
	t.Parallel()

	_, c := newMemoryCatalog(t)
	ctx := context.Background()

	_, _, err := c.Creators.TopEarner(ctx)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, game, _ := scenarioA(t, c)

	top, revenue, err := c.Creators.TopEarner(ctx)
	require.NoError(t, err)
	require.Equal(t, game.Base().CreatorID(), top.ID())
	require.Equal(t, "15.99", revenue.StringFixed(2))
}
