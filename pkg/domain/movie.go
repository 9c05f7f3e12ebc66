package domain

import (
	"fmt"

	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

var (
	// MovieRentPrice is charged for rentable movies.
	MovieRentPrice = decimal.RequireFromString("4.99") //nolint: gochecknoglobals
	// MovieBuyPrice is charged for movies that can only be bought.
	MovieBuyPrice = decimal.RequireFromString("25.00") //nolint: gochecknoglobals
)

// Movie is a sellable film.
type Movie struct {
	ContentBase

	// Rentable selects between MovieRentPrice and MovieBuyPrice.
	Rentable bool `json:"rentable"`
	// DurationMinutes must be positive.
	DurationMinutes int `json:"durationMinutes"`
}

// NewMovie builds an unvalidated movie.
func NewMovie(name string, creator *Creator, releaseYear int, available, rentable bool, durationMinutes int) *Movie {
	return &Movie{
		ContentBase:     newContentBase(name, creator, releaseYear, available),
		Rentable:        rentable,
		DurationMinutes: durationMinutes,
	}
}

func (m *Movie) isContent() {}

// Type implements Content.
func (m *Movie) Type() ContentType { return ContentTypeMovie }

// Price implements Content.
func (m *Movie) Price() decimal.Decimal {
	if m.Rentable {
		return MovieRentPrice
	}

	return MovieBuyPrice
}

// ChangeRentability flips the rentable flag.
func (m *Movie) ChangeRentability() { m.Rentable = !m.Rentable }

// SetDurationMinutes validates and assigns the duration.
func (m *Movie) SetDurationMinutes(minutes int) error {
	if err := validateDuration(minutes); err != nil {
		return err
	}
	m.DurationMinutes = minutes

	return nil
}

// Validate implements Validatable.
func (m *Movie) Validate() error {
	if err := m.validate(); err != nil {
		return err
	}

	return validateDuration(m.DurationMinutes)
}

// Describe implements Content.
func (m *Movie) Describe() string {
	return m.describe(m.Type(), m.Price(),
		fmt.Sprintf("Duration in minutes: %d", m.DurationMinutes),
		"Rentable: "+yesNo(m.Rentable),
	)
}

func validateDuration(minutes int) error {
	if minutes <= 0 {
		return serrors.With(serrors.ErrInvalidInput, "invalid movie duration in minutes")
	}

	return nil
}
