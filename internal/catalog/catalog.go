// Package catalog implements the business rules of the storefront: creator,
// content and user management and the purchase workflow. Services depend on
// storage.Storage only and report failures with serrors kinds.
package catalog

import (
	"storefront/pkg/domain"
	"storefront/pkg/storage"
)

// Catalog bundles every service over one storage.
type Catalog struct {
	Creators  CreatorService
	Games     ContentService[*domain.Game]
	Movies    ContentService[*domain.Movie]
	Albums    ContentService[*domain.MusicAlbum]
	Users     UserService
	Purchases PurchaseService
}

// New wires the services on top of storage.
func New(storage storage.Storage, options Options) *Catalog {
	options = options.withDefaults()

	return &Catalog{
		Creators:  NewCreatorService(storage),
		Games:     NewContentService[*domain.Game](storage, domain.ContentTypeGame),
		Movies:    NewContentService[*domain.Movie](storage, domain.ContentTypeMovie),
		Albums:    NewContentService[*domain.MusicAlbum](storage, domain.ContentTypeMusicAlbum),
		Users:     NewUserService(storage),
		Purchases: NewPurchaseService(storage, options),
	}
}
