package catalog

import (
	"context"
	"fmt"
	"time"

	"storefront/pkg/domain"
	"storefront/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedContent struct {
	name, description string
	creator           *domain.Creator
	year              int
	rentable          bool
	duration, tracks  int
	contentType       domain.ContentType
}

type seedPurchase struct {
	user    int
	content int
	date    string
	price   string
}

// Seed loads a small sample catalog through the services, so every rule
// applies to it. It does nothing when creators already exist.
func Seed(ctx context.Context, c *Catalog) error {
	existing, err := c.Creators.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info(ctx, "catalog already has data, skipping seed", zap.Int("creators", len(existing)))

		return nil
	}

	creators := []*domain.Creator{
		domain.NewCreator("Wachowski Sisters", "USA", ""),
		domain.NewCreator("Christopher Nolan", "USA", ""),
		domain.NewCreator("Pink Floyd", "UK", ""),
		domain.NewCreator("Michael Jackson", "USA", ""),
		domain.NewCreator("Mojang Studios", "Sweden", ""),
		domain.NewCreator("CD Projekt Red", "Poland", ""),
	}
	for _, creator := range creators {
		if _, err := c.Creators.Create(ctx, creator); err != nil {
			return fmt.Errorf("could not seed creator %s: %w", creator.Name, err)
		}
	}

	contents := []seedContent{
		{name: "The Matrix", description: "A mind-bending sci-fi thriller", creator: creators[0], year: 1999,
			contentType: domain.ContentTypeMovie, rentable: true, duration: 136},
		{name: "Inception", description: "Dreams within dreams", creator: creators[1], year: 2010,
			contentType: domain.ContentTypeMovie, rentable: true, duration: 148},
		{name: "Dark Side of the Moon", description: "Progressive rock masterpiece", creator: creators[2], year: 1973,
			contentType: domain.ContentTypeMusicAlbum, tracks: 10},
		{name: "Thriller", description: "Best-selling album", creator: creators[3], year: 1982,
			contentType: domain.ContentTypeMusicAlbum, tracks: 9},
		{name: "Minecraft", description: "Sandbox building game", creator: creators[4], year: 2011,
			contentType: domain.ContentTypeGame},
		{name: "The Witcher 3", description: "Epic RPG adventure", creator: creators[5], year: 2015,
			contentType: domain.ContentTypeGame},
	}
	contentIDs := make([]domain.ContentID, 0, len(contents))
	for _, item := range contents {
		id, err := c.seedContent(ctx, item)
		if err != nil {
			return fmt.Errorf("could not seed %s: %w", item.name, err)
		}
		contentIDs = append(contentIDs, id)
	}

	users := []*domain.User{
		domain.NewUser("John Doe", "john@example.com"),
		domain.NewUser("Jane Smith", "jane@example.com"),
		domain.NewUser("Bob Johnson", "bob@example.com"),
	}
	for _, user := range users {
		if _, err := c.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("could not seed user %s: %w", user.Email, err)
		}
	}

	purchases := []seedPurchase{
		{user: 0, content: 0, date: "2024-01-15", price: "14.99"},
		{user: 0, content: 2, date: "2024-01-20", price: "9.99"},
		{user: 1, content: 1, date: "2024-02-01", price: "12.99"},
		{user: 2, content: 4, date: "2024-02-05", price: "29.99"},
	}
	for _, p := range purchases {
		date, err := time.Parse(time.DateOnly, p.date)
		if err != nil {
			return fmt.Errorf("could not parse seed purchase date: %w", err)
		}

		purchase := domain.NewPurchase(users[p.user].ID(), contentIDs[p.content], decimal.RequireFromString(p.price))
		purchase.Date = date
		if _, err := c.Purchases.Purchase(ctx, purchase); err != nil {
			return fmt.Errorf("could not seed purchase: %w", err)
		}
	}

	logger.Info(ctx, "catalog seeded",
		zap.Int("creators", len(creators)),
		zap.Int("contents", len(contents)),
		zap.Int("users", len(users)),
		zap.Int("purchases", len(purchases)))

	return nil
}

func (c *Catalog) seedContent(ctx context.Context, item seedContent) (domain.ContentID, error) {
	switch item.contentType {
	case domain.ContentTypeGame:
		game := domain.NewGame(item.name, item.creator, item.year, true)
		game.SetDescription(item.description)
		created, err := c.Games.Create(ctx, game)
		if err != nil {
			return 0, err
		}

		return created.ID(), nil
	case domain.ContentTypeMovie:
		movie := domain.NewMovie(item.name, item.creator, item.year, true, item.rentable, item.duration)
		movie.SetDescription(item.description)
		created, err := c.Movies.Create(ctx, movie)
		if err != nil {
			return 0, err
		}

		return created.ID(), nil
	default:
		album := domain.NewMusicAlbum(item.name, item.creator, item.year, true, item.tracks)
		album.SetDescription(item.description)
		created, err := c.Albums.Create(ctx, album)
		if err != nil {
			return 0, err
		}

		return created.ID(), nil
	}
}
