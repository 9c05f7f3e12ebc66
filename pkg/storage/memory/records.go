package memory

import (
	"fmt"
	"slices"
	"time"

	"storefront/pkg/domain"

	"github.com/shopspring/decimal"
)

type creatorRecord struct {
	name, country, bio string
}

func (r creatorRecord) toDomain(id int64) (*domain.Creator, error) {
	c := &domain.Creator{Name: r.name, Country: r.country, Bio: r.bio}
	if err := c.SetID(domain.CreatorID(id)); err != nil {
		return nil, fmt.Errorf("could not restore creator %d: %w", id, err)
	}

	return c, nil
}

func creatorFromDomain(c *domain.Creator) creatorRecord {
	return creatorRecord{name: c.Name, country: c.Country, bio: c.Bio}
}

type contentRecord struct {
	contentType     domain.ContentType
	name            string
	creatorID       int64
	releaseYear     int
	available       bool
	description     string
	rentable        bool
	durationMinutes int
	trackCount      int
}

func contentFromDomain(c domain.Content) contentRecord {
	base := c.Base()
	rec := contentRecord{
		contentType: c.Type(),
		name:        base.Name,
		creatorID:   int64(base.CreatorID()),
		releaseYear: base.ReleaseYear,
		available:   base.Available,
		description: base.Description,
	}

	return domain.MatchContent(c,
		func(*domain.Game) contentRecord { return rec },
		func(m *domain.Movie) contentRecord {
			rec.rentable = m.Rentable
			rec.durationMinutes = m.DurationMinutes

			return rec
		},
		func(a *domain.MusicAlbum) contentRecord {
			rec.trackCount = a.TrackCount

			return rec
		},
	)
}

func (r contentRecord) toDomain(id int64, creator *domain.Creator) (domain.Content, error) {
	var content domain.Content
	switch r.contentType {
	case domain.ContentTypeGame:
		content = domain.NewGame(r.name, creator, r.releaseYear, r.available)
	case domain.ContentTypeMovie:
		content = domain.NewMovie(r.name, creator, r.releaseYear, r.available, r.rentable, r.durationMinutes)
	case domain.ContentTypeMusicAlbum:
		content = domain.NewMusicAlbum(r.name, creator, r.releaseYear, r.available, r.trackCount)
	default:
		return nil, fmt.Errorf("unknown content type %q for content %d", r.contentType, id)
	}

	content.Base().SetDescription(r.description)
	if err := content.SetID(domain.ContentID(id)); err != nil {
		return nil, fmt.Errorf("could not restore content %d: %w", id, err)
	}

	return content, nil
}

type userRecord struct {
	name, email string
}

func (r userRecord) toDomain(id int64) (*domain.User, error) {
	u := &domain.User{Name: r.name, Email: r.email}
	if err := u.SetID(domain.UserID(id)); err != nil {
		return nil, fmt.Errorf("could not restore user %d: %w", id, err)
	}

	return u, nil
}

type purchaseRecord struct {
	userID    int64
	contentID int64
	pricePaid decimal.Decimal
	date      time.Time
}

func (r purchaseRecord) toDomain(id int64) (*domain.Purchase, error) {
	p, err := domain.RestorePurchase(domain.PurchaseID(id), domain.UserID(r.userID),
		domain.ContentID(r.contentID), r.pricePaid, r.date)
	if err != nil {
		return nil, fmt.Errorf("could not restore purchase %d: %w", id, err)
	}

	return p, nil
}

// sortedIDs returns the keys of m in ascending order.
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
