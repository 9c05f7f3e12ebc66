package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"storefront/pkg/domain"

	"github.com/shopspring/decimal"
)

type PgCreator struct {
	ID      int64  `db:"id"      goqu:"skipinsert,skipupdate"`
	Name    string `db:"name"`
	Country string `db:"country"`
	Bio     string `db:"bio"`
}

func (p *PgCreator) ToDomain() (*domain.Creator, error) {
	c := &domain.Creator{Name: p.Name, Country: p.Country, Bio: p.Bio}
	if err := c.SetID(domain.CreatorID(p.ID)); err != nil {
		return nil, fmt.Errorf("could not restore creator %d: %w", p.ID, err)
	}

	return c, nil
}

func (p *PgCreator) FromDomain(c *domain.Creator) {
	*p = PgCreator{
		ID:      int64(c.ID()),
		Name:    c.Name,
		Country: c.Country,
		Bio:     c.Bio,
	}
}

// PgCreatorRevenue is a creator row joined with the sum of purchases of its content.
type PgCreatorRevenue struct {
	PgCreator
	Revenue decimal.Decimal `db:"revenue"`
}

type PgContent struct {
	ID              int64         `db:"id"               goqu:"skipinsert,skipupdate"`
	ContentType     string        `db:"content_type"`
	Name            string        `db:"name"`
	CreatorID       int64         `db:"creator_id"`
	ReleaseYear     int           `db:"release_year"`
	Available       bool          `db:"available"`
	Description     string        `db:"description"`
	Rentable        sql.NullBool  `db:"rentable"`
	DurationMinutes sql.NullInt32 `db:"duration_minutes"`
	TrackCount      sql.NullInt32 `db:"track_count"`
}

// PgContentRow is a content row joined with the columns of its creator.
type PgContentRow struct {
	PgContent
	CreatorName    string `db:"creator_name"`
	CreatorCountry string `db:"creator_country"`
	CreatorBio     string `db:"creator_bio"`
}

func (p *PgContent) FromDomain(c domain.Content) {
	base := c.Base()
	*p = PgContent{
		ID:          int64(c.ID()),
		ContentType: string(c.Type()),
		Name:        base.Name,
		CreatorID:   int64(base.CreatorID()),
		ReleaseYear: base.ReleaseYear,
		Available:   base.Available,
		Description: base.Description,
	}

	domain.MatchContent(c,
		func(*domain.Game) struct{} { return struct{}{} },
		func(m *domain.Movie) struct{} {
			p.Rentable = sql.NullBool{Bool: m.Rentable, Valid: true}
			p.DurationMinutes = sql.NullInt32{Int32: int32(m.DurationMinutes), Valid: true} //nolint: gosec

			return struct{}{}
		},
		func(a *domain.MusicAlbum) struct{} {
			p.TrackCount = sql.NullInt32{Int32: int32(a.TrackCount), Valid: true} //nolint: gosec

			return struct{}{}
		},
	)
}

func (p *PgContentRow) ToDomain() (domain.Content, error) {
	creator, err := (&PgCreator{
		ID:      p.CreatorID,
		Name:    p.CreatorName,
		Country: p.CreatorCountry,
		Bio:     p.CreatorBio,
	}).ToDomain()
	if err != nil {
		return nil, err
	}

	contentType, err := domain.ParseContentType(p.ContentType)
	if err != nil {
		return nil, fmt.Errorf("could not restore content %d: %w", p.ID, err)
	}

	var content domain.Content
	switch contentType {
	case domain.ContentTypeGame:
		content = domain.NewGame(p.Name, creator, p.ReleaseYear, p.Available)
	case domain.ContentTypeMovie:
		content = domain.NewMovie(p.Name, creator, p.ReleaseYear, p.Available,
			p.Rentable.Bool, int(p.DurationMinutes.Int32))
	case domain.ContentTypeMusicAlbum:
		content = domain.NewMusicAlbum(p.Name, creator, p.ReleaseYear, p.Available, int(p.TrackCount.Int32))
	default:
		return nil, fmt.Errorf("unknown content type %q for content %d", p.ContentType, p.ID)
	}

	content.Base().SetDescription(p.Description)
	if err := content.SetID(domain.ContentID(p.ID)); err != nil {
		return nil, fmt.Errorf("could not restore content %d: %w", p.ID, err)
	}

	return content, nil
}

type PgUser struct {
	ID    int64  `db:"id"    goqu:"skipinsert,skipupdate"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (p *PgUser) ToDomain() (*domain.User, error) {
	u := &domain.User{Name: p.Name, Email: p.Email}
	if err := u.SetID(domain.UserID(p.ID)); err != nil {
		return nil, fmt.Errorf("could not restore user %d: %w", p.ID, err)
	}

	return u, nil
}

func (p *PgUser) FromDomain(u *domain.User) {
	*p = PgUser{ID: int64(u.ID()), Name: u.Name, Email: u.Email}
}

type PgPurchase struct {
	ID           int64           `db:"id"            goqu:"skipinsert,skipupdate"`
	UserID       int64           `db:"user_id"`
	ContentID    int64           `db:"content_id"`
	PricePaid    decimal.Decimal `db:"price_paid"`
	PurchaseDate time.Time       `db:"purchase_date"`
}

func (p *PgPurchase) ToDomain() (*domain.Purchase, error) {
	purchase, err := domain.RestorePurchase(
		domain.PurchaseID(p.ID),
		domain.UserID(p.UserID),
		domain.ContentID(p.ContentID),
		p.PricePaid,
		p.PurchaseDate,
	)
	if err != nil {
		return nil, fmt.Errorf("could not restore purchase %d: %w", p.ID, err)
	}

	return purchase, nil
}

func (p *PgPurchase) FromDomain(purchase *domain.Purchase) {
	*p = PgPurchase{
		ID:           int64(purchase.ID()),
		UserID:       int64(purchase.UserID),
		ContentID:    int64(purchase.ContentID),
		PricePaid:    purchase.PricePaid,
		PurchaseDate: purchase.Date,
	}
}

func toDomainSlice[P any, D any](rows []P, convert func(*P) (D, error)) ([]D, error) {
	out := make([]D, 0, len(rows))
	for i := range rows {
		d, err := convert(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
