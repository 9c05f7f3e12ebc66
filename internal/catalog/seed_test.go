package catalog_test

import (
	"context"
	"testing"

	"storefront/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	t.Parallel()

	store, c := newMemoryCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.Seed(ctx, c))

	movies, err := c.Movies.All(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	albums, err := c.Albums.Available(ctx)
	require.NoError(t, err)
	require.Equal(t, "Dark Side of the Moon", albums[0].Name)

	purchases, err := c.Purchases.All(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 4)
	require.Len(t, store.Jobs(), 4)

	top, err := c.Creators.TopEarningCreator(ctx)
	require.NoError(t, err)
	require.Equal(t, "Mojang Studios", top.Name)
	earnings, err := c.Creators.TopEarnings(ctx)
	require.NoError(t, err)
	require.Equal(t, "29.99", earnings.StringFixed(2))

	// a second run leaves the data alone
	require.NoError(t, catalog.Seed(ctx, c))
	users, err := c.Users.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
}
