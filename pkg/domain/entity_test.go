package domain_test

import (
	"testing"
	"time"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreator(t *testing.T) {
	t.Parallel()

	c := domain.NewCreator("Pink Floyd", "", "   ")
	require.Equal(t, domain.DefaultCountry, c.Country)
	require.Equal(t, domain.DefaultBio, c.Bio)
	require.NoError(t, c.Validate())

	c.SetCountry("UK")
	require.Equal(t, "UK", c.Country)

	c.Name = " "
	err := c.Validate()
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
	require.EqualError(t, err, "creator name cannot be empty")
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		user    *domain.User
		message string
	}{
		{name: "valid", user: domain.NewUser("John", "john@example.com")},
		{name: "email is trimmed", user: domain.NewUser("John", "  john+tag@example.com ")},
		{name: "empty name", user: domain.NewUser("", "john@example.com"), message: "user name cannot be empty"},
		{name: "empty email", user: domain.NewUser("John", " "), message: "user email cannot be empty"},
		{name: "missing at", user: domain.NewUser("John", "john.example.com"), message: "invalid email format"},
		{name: "missing local part", user: domain.NewUser("John", "@example.com"), message: "invalid email format"},
		{name: "bad local part", user: domain.NewUser("John", "jo hn@example.com"), message: "invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.user.Validate()
			if tc.message == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, serrors.ErrInvalidInput)
			require.EqualError(t, err, tc.message)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "John@example.com", domain.NormalizeEmail("  John@EXAMPLE.Com "))
	require.Equal(t, "no-at-sign", domain.NormalizeEmail("no-at-sign"))
}

func TestPurchaseValidate(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("4.99")

	cases := []struct {
		name     string
		purchase *domain.Purchase
		message  string
	}{
		{name: "valid", purchase: domain.NewPurchase(1, 2, price)},
		{name: "invalid user", purchase: domain.NewPurchase(0, 2, price), message: "invalid user id"},
		{name: "invalid content", purchase: domain.NewPurchase(1, -1, price), message: "invalid content id"},
		{name: "zero price", purchase: domain.NewPurchase(1, 2, decimal.Zero), message: "price must be positive"},
		{
			name:     "negative price",
			purchase: domain.NewPurchase(1, 2, decimal.RequireFromString("-1")),
			message:  "price must be positive",
		},
		{name: "trailing zeros", purchase: domain.NewPurchase(1, 2, decimal.RequireFromString("4.990"))},
		{name: "largest price", purchase: domain.NewPurchase(1, 2, domain.MaxPricePaid)},
		{
			name:     "sub-cent price",
			purchase: domain.NewPurchase(1, 2, decimal.RequireFromString("0.001")),
			message:  "price must have at most 2 decimal places",
		},
		{
			name:     "three decimal places",
			purchase: domain.NewPurchase(1, 2, decimal.RequireFromString("1.999")),
			message:  "price must have at most 2 decimal places",
		},
		{
			name:     "price too large",
			purchase: domain.NewPurchase(1, 2, decimal.RequireFromString("100000000")),
			message:  "price must not exceed 99999999.99",
		},
		{
			name:     "missing date",
			purchase: &domain.Purchase{UserID: 1, ContentID: 2, PricePaid: price},
			message:  "purchase date is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.purchase.Validate()
			if tc.message == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, serrors.ErrInvalidInput)
			require.EqualError(t, err, tc.message)
		})
	}
}

func TestRestorePurchase(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p, err := domain.RestorePurchase(5, 1, 2, decimal.RequireFromString("15.99"), date)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseID(5), p.ID())
	require.Equal(t, date, p.Date)

	p, err = domain.RestorePurchase(6, 1, 2, decimal.RequireFromString("15.99"), time.Time{})
	require.NoError(t, err)
	require.False(t, p.Date.IsZero())

	_, err = domain.RestorePurchase(0, 1, 2, decimal.RequireFromString("15.99"), date)
	require.ErrorIs(t, err, serrors.ErrInvalidInput)
}

func TestSortAndFilter(t *testing.T) {
	t.Parallel()

	creator := newCreator(t, 1)
	games := []domain.Content{
		domain.NewGame("witcher 3", creator, 2015, true),
		domain.NewGame("Minecraft", creator, 2011, true),
		domain.NewGame("Among Us", creator, 2018, true),
	}
	for i, g := range games {
		require.NoError(t, g.SetID(domain.ContentID(10-i)))
	}

	byName := domain.SortByName(games)
	require.Equal(t, "Among Us", byName[0].DisplayName())
	require.Equal(t, "witcher 3", byName[2].DisplayName())
	require.Equal(t, "witcher 3", games[0].DisplayName(), "input must not be reordered")

	found := domain.FilterByName(games, "CRAFT")
	require.Len(t, found, 1)
	require.Equal(t, "Minecraft", found[0].DisplayName())
	require.Len(t, domain.FilterByName(games, ""), 3)
}
