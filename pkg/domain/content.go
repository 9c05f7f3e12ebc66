package domain

import (
	"fmt"
	"strings"

	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

// ContentType is the discriminator of the content family.
type ContentType string

const (
	// ContentTypeGame tags a *Game.
	ContentTypeGame ContentType = "GAME"
	// ContentTypeMovie tags a *Movie.
	ContentTypeMovie ContentType = "MOVIE"
	// ContentTypeMusicAlbum tags a *MusicAlbum.
	ContentTypeMusicAlbum ContentType = "MUSIC_ALBUM"
)

// ContentTypes lists every content type in the order purchases probe them.
var ContentTypes = []ContentType{ContentTypeGame, ContentTypeMovie, ContentTypeMusicAlbum} //nolint: gochecknoglobals

// ParseContentType maps a textual tag onto a ContentType. Matching is case
// insensitive and accepts "ALBUM" as an alias of MUSIC_ALBUM.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ContentTypeGame):
		return ContentTypeGame, nil
	case string(ContentTypeMovie):
		return ContentTypeMovie, nil
	case string(ContentTypeMusicAlbum), "ALBUM", "MUSICALBUM":
		return ContentTypeMusicAlbum, nil
	default:
		return "", serrors.With(serrors.ErrInvalidInput, "unknown content type %q", s)
	}
}

const (
	// MinReleaseYear is the earliest accepted release year.
	MinReleaseYear = 1800
	// MaxReleaseYear is the latest accepted release year.
	MaxReleaseYear = 2100
	// DefaultDescription is reported when a content item has no description.
	DefaultDescription = "No description"
)

// Content is a sellable digital item. The set of implementations is closed:
// only *Game, *Movie and *MusicAlbum satisfy it. Use MatchContent to branch on
// the concrete type.
type Content interface {
	Validatable
	Named

	// ID returns the storage assigned identifier.
	ID() ContentID
	// SetID assigns the identifier once.
	SetID(id ContentID) error
	// Type returns the discriminator of the concrete variant.
	Type() ContentType
	// Base exposes the attributes shared by all variants.
	Base() *ContentBase
	// Price is derived from the variant and its fields.
	Price() decimal.Decimal
	// Describe returns a human readable summary.
	Describe() string
	// ChangeAvailability flips the available flag in memory.
	ChangeAvailability()

	isContent()
}

// ContentBase holds the attributes shared by every content variant.
type ContentBase struct {
	identity[ContentID]

	// Name is required.
	Name string `json:"name"`
	// Creator references an existing creator by id. It is shared, not owned.
	Creator *Creator `json:"creator"`
	// ReleaseYear must lie within [MinReleaseYear, MaxReleaseYear].
	ReleaseYear int `json:"releaseYear"`
	// Available marks whether the item can currently be purchased.
	Available bool `json:"available"`
	// Description defaults to DefaultDescription when blank.
	Description string `json:"description"`
}

func newContentBase(name string, creator *Creator, releaseYear int, available bool) ContentBase {
	return ContentBase{
		Name:        name,
		Creator:     creator,
		ReleaseYear: releaseYear,
		Available:   available,
		Description: DefaultDescription,
	}
}

// Base returns the shared attributes.
func (b *ContentBase) Base() *ContentBase { return b }

// ChangeAvailability flips the available flag. Persisting the change is up to the caller.
func (b *ContentBase) ChangeAvailability() { b.Available = !b.Available }

// SetDescription sets the description, falling back to DefaultDescription when blank.
func (b *ContentBase) SetDescription(description string) {
	if strings.TrimSpace(description) == "" {
		b.Description = DefaultDescription

		return
	}
	b.Description = description
}

// SetReleaseYear validates and assigns the release year.
func (b *ContentBase) SetReleaseYear(year int) error {
	if err := validateReleaseYear(year); err != nil {
		return err
	}
	b.ReleaseYear = year

	return nil
}

// SetCreator assigns the creator reference. A nil creator is rejected.
func (b *ContentBase) SetCreator(creator *Creator) error {
	if creator == nil {
		return serrors.With(serrors.ErrInvalidInput, "a content must have a creator")
	}
	b.Creator = creator

	return nil
}

// CreatorID returns the id of the referenced creator, or zero when unset.
func (b *ContentBase) CreatorID() CreatorID {
	if b.Creator == nil {
		return 0
	}

	return b.Creator.ID()
}

// validate checks name, creator presence and release year, in that order.
func (b *ContentBase) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return serrors.With(serrors.ErrInvalidInput, "content name cannot be empty")
	}
	if b.Creator == nil {
		return serrors.With(serrors.ErrInvalidInput, "a content must have a creator")
	}

	return validateReleaseYear(b.ReleaseYear)
}

func validateReleaseYear(year int) error {
	if year < MinReleaseYear || year > MaxReleaseYear {
		return serrors.With(serrors.ErrInvalidInput,
			"release year must be between %d and %d", MinReleaseYear, MaxReleaseYear)
	}

	return nil
}

func (b *ContentBase) describe(contentType ContentType, price decimal.Decimal, extra ...string) string {
	creatorName := "Unknown"
	if b.Creator != nil {
		creatorName = b.Creator.Name
	}

	parts := []string{
		fmt.Sprintf("%s ID: %d", contentType, b.ID()),
		"Name: " + b.Name,
		"Creator: " + creatorName,
		fmt.Sprintf("Release year: %d", b.ReleaseYear),
	}
	parts = append(parts, extra...)
	parts = append(parts,
		"Available: "+yesNo(b.Available),
		"Price: "+price.StringFixed(2),
		"Description: "+b.Description,
	)

	return strings.Join(parts, " | ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}

// MatchContent dispatches on the concrete type of c. All three branches are
// required, so adding a variant breaks every call site at compile time.
func MatchContent[R any](
	c Content,
	onGame func(*Game) R,
	onMovie func(*Movie) R,
	onAlbum func(*MusicAlbum) R,
) R {
	switch v := c.(type) {
	case *Game:
		return onGame(v)
	case *Movie:
		return onMovie(v)
	case *MusicAlbum:
		return onAlbum(v)
	default:
		panic(fmt.Sprintf("domain: unexpected content implementation %T", c))
	}
}
