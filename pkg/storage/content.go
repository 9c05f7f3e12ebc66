package storage

import (
	"context"

	"storefront/pkg/domain"
)

// ContentStorage persists games, movies and music albums. Every method that
// reads takes the expected content type: an id stored with another type is
// reported as absent.
type ContentStorage interface {
	// StoreContent inserts a content item of any type and returns the assigned id.
	StoreContent(ctx context.Context, content domain.Content) (domain.ContentID, error)
	// Contents returns every item of the given type ordered by id, with creators loaded.
	Contents(ctx context.Context, contentType domain.ContentType) ([]domain.Content, error)
	// ContentByID returns nil when no item of contentType has the id.
	ContentByID(ctx context.Context, contentType domain.ContentType, id domain.ContentID) (domain.Content, error)
	// UpdateContent overwrites the stored item with the given id.
	UpdateContent(ctx context.Context, id domain.ContentID, content domain.Content) error
	// DeleteContent removes the item. Purchases of it are removed with it.
	DeleteContent(ctx context.Context, contentType domain.ContentType, id domain.ContentID) error
}
