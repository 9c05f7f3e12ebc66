package domain

import (
	"fmt"

	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

// AlbumTrackPrice is the per-track unit price of a music album.
var AlbumTrackPrice = decimal.RequireFromString("1.99") //nolint: gochecknoglobals

// MusicAlbum is a sellable album priced per track.
type MusicAlbum struct {
	ContentBase

	// TrackCount must be at least one.
	TrackCount int `json:"trackCount"`
}

// NewMusicAlbum builds an unvalidated music album.
func NewMusicAlbum(name string, creator *Creator, releaseYear int, available bool, trackCount int) *MusicAlbum {
	return &MusicAlbum{
		ContentBase: newContentBase(name, creator, releaseYear, available),
		TrackCount:  trackCount,
	}
}

func (a *MusicAlbum) isContent() {}

// Type implements Content.
func (a *MusicAlbum) Type() ContentType { return ContentTypeMusicAlbum }

// Price implements Content.
func (a *MusicAlbum) Price() decimal.Decimal {
	return AlbumTrackPrice.Mul(decimal.NewFromInt(int64(a.TrackCount)))
}

// SetTrackCount validates and assigns the number of tracks.
func (a *MusicAlbum) SetTrackCount(count int) error {
	if err := validateTrackCount(count); err != nil {
		return err
	}
	a.TrackCount = count

	return nil
}

// Validate implements Validatable.
func (a *MusicAlbum) Validate() error {
	if err := a.validate(); err != nil {
		return err
	}

	return validateTrackCount(a.TrackCount)
}

// Describe implements Content.
func (a *MusicAlbum) Describe() string {
	return a.describe(a.Type(), a.Price(), fmt.Sprintf("Tracks: %d", a.TrackCount))
}

func validateTrackCount(count int) error {
	if count <= 0 {
		return serrors.With(serrors.ErrInvalidInput, "an album must have at least one track")
	}

	return nil
}
