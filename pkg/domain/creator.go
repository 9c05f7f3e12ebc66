package domain

import (
	"fmt"
	"strings"

	"storefront/pkg/serrors"
)

const (
	// DefaultCountry is stored when a creator has no country.
	DefaultCountry = "No data"
	// DefaultBio is stored when a creator has no biography.
	DefaultBio = "No biography written yet"
)

// Creator is the author, studio or publisher behind one or more content items.
type Creator struct {
	identity[CreatorID]

	// Name is required.
	Name string `json:"name"`
	// Country defaults to DefaultCountry when blank.
	Country string `json:"country"`
	// Bio defaults to DefaultBio when blank.
	Bio string `json:"bio"`
}

// NewCreator builds an unvalidated creator with normalized country and bio.
func NewCreator(name, country, bio string) *Creator {
	c := &Creator{Name: name}
	c.SetCountry(country)
	c.SetBio(bio)

	return c
}

// SetCountry sets the country, falling back to DefaultCountry when blank.
func (c *Creator) SetCountry(country string) {
	if strings.TrimSpace(country) == "" {
		c.Country = DefaultCountry

		return
	}
	c.Country = country
}

// SetBio sets the biography, falling back to DefaultBio when blank.
func (c *Creator) SetBio(bio string) {
	if strings.TrimSpace(bio) == "" {
		c.Bio = DefaultBio

		return
	}
	c.Bio = bio
}

// Validate implements Validatable.
func (c *Creator) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return serrors.With(serrors.ErrInvalidInput, "creator name cannot be empty")
	}

	return nil
}

// Describe returns a human readable summary of the creator.
func (c *Creator) Describe() string {
	return fmt.Sprintf("Creator ID: %d | Name: %s | Country: %s | Biography: %s",
		c.ID(), c.Name, c.Country, c.Bio)
}
