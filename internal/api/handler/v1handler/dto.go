package v1handler

import (
	"time"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

type CreatorRequest struct {
	Name    string `json:"name"    validate:"required"`
	Country string `json:"country"`
	Bio     string `json:"bio"`
}

func (req *CreatorRequest) toDomain() *domain.Creator {
	return domain.NewCreator(req.Name, req.Country, req.Bio)
}

type CreatorResponse struct {
	ID      domain.CreatorID `json:"id"`
	Name    string           `json:"name"`
	Country string           `json:"country"`
	Bio     string           `json:"bio"`
}

func DomainCreatorToV1(in *domain.Creator) CreatorResponse {
	return CreatorResponse{ID: in.ID(), Name: in.Name, Country: in.Country, Bio: in.Bio}
}

type TopCreatorResponse struct {
	Creator CreatorResponse `json:"creator"`
	Revenue string          `json:"revenue"`
}

// contentFields are shared by every content request.
type contentFields struct {
	Name        string `json:"name"        validate:"required"`
	CreatorID   int64  `json:"creatorId"   validate:"required,gt=0"`
	ReleaseYear int    `json:"releaseYear" validate:"required"`
	Available   *bool  `json:"available"   validate:"required"`
	Description string `json:"description"`
}

// creatorRef returns a reference the service swaps for the stored creator.
func (f *contentFields) creatorRef() (*domain.Creator, error) {
	creator := &domain.Creator{}
	if err := creator.SetID(domain.CreatorID(f.CreatorID)); err != nil {
		return nil, err
	}

	return creator, nil
}

type GameRequest struct {
	contentFields
}

func (req *GameRequest) toDomain() (*domain.Game, error) {
	creator, err := req.creatorRef()
	if err != nil {
		return nil, err
	}

	game := domain.NewGame(req.Name, creator, req.ReleaseYear, *req.Available)
	game.SetDescription(req.Description)

	return game, nil
}

type MovieRequest struct {
	contentFields

	Rentable        *bool `json:"rentable"        validate:"required"`
	DurationMinutes int   `json:"durationMinutes" validate:"required"`
}

func (req *MovieRequest) toDomain() (*domain.Movie, error) {
	creator, err := req.creatorRef()
	if err != nil {
		return nil, err
	}

	movie := domain.NewMovie(req.Name, creator, req.ReleaseYear, *req.Available, *req.Rentable, req.DurationMinutes)
	movie.SetDescription(req.Description)

	return movie, nil
}

type AlbumRequest struct {
	contentFields

	TrackCount int `json:"trackCount" validate:"required"`
}

func (req *AlbumRequest) toDomain() (*domain.MusicAlbum, error) {
	creator, err := req.creatorRef()
	if err != nil {
		return nil, err
	}

	album := domain.NewMusicAlbum(req.Name, creator, req.ReleaseYear, *req.Available, req.TrackCount)
	album.SetDescription(req.Description)

	return album, nil
}

type ContentResponse struct {
	ID              domain.ContentID   `json:"id"`
	Type            domain.ContentType `json:"type"`
	Name            string             `json:"name"`
	CreatorID       domain.CreatorID   `json:"creatorId"`
	CreatorName     string             `json:"creatorName"`
	ReleaseYear     int                `json:"releaseYear"`
	Available       bool               `json:"available"`
	Description     string             `json:"description"`
	Price           string             `json:"price"`
	Rentable        *bool              `json:"rentable,omitempty"`
	DurationMinutes *int               `json:"durationMinutes,omitempty"`
	TrackCount      *int               `json:"trackCount,omitempty"`
}

func DomainContentToV1(in domain.Content) ContentResponse {
	base := in.Base()
	out := ContentResponse{
		ID:          in.ID(),
		Type:        in.Type(),
		Name:        base.Name,
		CreatorID:   base.CreatorID(),
		ReleaseYear: base.ReleaseYear,
		Available:   base.Available,
		Description: base.Description,
		Price:       in.Price().StringFixed(2),
	}
	if base.Creator != nil {
		out.CreatorName = base.Creator.Name
	}

	return domain.MatchContent(in,
		func(*domain.Game) ContentResponse { return out },
		func(m *domain.Movie) ContentResponse {
			out.Rentable = &m.Rentable
			out.DurationMinutes = &m.DurationMinutes

			return out
		},
		func(a *domain.MusicAlbum) ContentResponse {
			out.TrackCount = &a.TrackCount

			return out
		},
	)
}

type UserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (req *UserRequest) toDomain() *domain.User {
	return domain.NewUser(req.Name, req.Email)
}

type UserResponse struct {
	ID    domain.UserID `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}

func DomainUserToV1(in *domain.User) UserResponse {
	return UserResponse{ID: in.ID(), Name: in.Name, Email: in.Email}
}

type PurchaseRequest struct {
	UserID    int64            `json:"userId"    validate:"required,gt=0"`
	ContentID int64            `json:"contentId" validate:"required,gt=0"`
	PricePaid *decimal.Decimal `json:"pricePaid" validate:"required"`
	// Date is optional and defaults to the time the purchase is recorded.
	Date *time.Time `json:"date"`
}

func (req *PurchaseRequest) toDomain() (*domain.Purchase, error) {
	purchase := domain.NewPurchase(domain.UserID(req.UserID), domain.ContentID(req.ContentID), *req.PricePaid)
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, serrors.With(serrors.ErrInvalidInput, "date is invalid")
		}
		purchase.Date = req.Date.UTC()
	}

	return purchase, nil
}

type PurchaseResponse struct {
	ID        domain.PurchaseID `json:"id"`
	UserID    domain.UserID     `json:"userId"`
	ContentID domain.ContentID  `json:"contentId"`
	PricePaid string            `json:"pricePaid"`
	Date      time.Time         `json:"date"`
}

func DomainPurchaseToV1(in *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:        in.ID(),
		UserID:    in.UserID,
		ContentID: in.ContentID,
		PricePaid: in.PricePaid.StringFixed(2),
		Date:      in.Date,
	}
}

func mapSlice[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}

	return out
}
