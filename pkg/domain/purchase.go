package domain

import (
	"fmt"
	"time"

	"storefront/pkg/serrors"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places a price paid may carry.
const PriceScale = 2

// MaxPricePaid is the largest price a purchase can record.
var MaxPricePaid = decimal.RequireFromString("99999999.99") //nolint: gochecknoglobals

// Purchase records that a user bought a content item at a given price.
type Purchase struct {
	identity[PurchaseID]

	UserID    UserID          `json:"userId"`
	ContentID ContentID       `json:"contentId"`
	PricePaid decimal.Decimal `json:"pricePaid"`
	Date      time.Time       `json:"date"`
}

// NewPurchase builds an unvalidated purchase stamped with the current time.
func NewPurchase(userID UserID, contentID ContentID, pricePaid decimal.Decimal) *Purchase {
	return &Purchase{
		UserID:    userID,
		ContentID: contentID,
		PricePaid: pricePaid,
		Date:      time.Now().UTC(),
	}
}

// RestorePurchase reconstitutes a stored purchase. A zero date is replaced with the current time.
func RestorePurchase(
	id PurchaseID,
	userID UserID,
	contentID ContentID,
	pricePaid decimal.Decimal,
	date time.Time,
) (*Purchase, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}

	p := &Purchase{UserID: userID, ContentID: contentID, PricePaid: pricePaid, Date: date}
	if err := p.SetID(id); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate implements Validatable.
func (p *Purchase) Validate() error {
	if p.UserID <= 0 {
		return serrors.With(serrors.ErrInvalidInput, "invalid user id")
	}
	if p.ContentID <= 0 {
		return serrors.With(serrors.ErrInvalidInput, "invalid content id")
	}
	if !p.PricePaid.IsPositive() {
		return serrors.With(serrors.ErrInvalidInput, "price must be positive")
	}
	if !p.PricePaid.Equal(p.PricePaid.Truncate(PriceScale)) {
		return serrors.With(serrors.ErrInvalidInput, "price must have at most 2 decimal places")
	}
	if p.PricePaid.GreaterThan(MaxPricePaid) {
		return serrors.With(serrors.ErrInvalidInput, "price must not exceed %s", MaxPricePaid.StringFixed(PriceScale))
	}
	if p.Date.IsZero() {
		return serrors.With(serrors.ErrInvalidInput, "purchase date is required")
	}

	return nil
}

// Describe returns a human readable summary of the purchase.
func (p *Purchase) Describe() string {
	return fmt.Sprintf("Purchase ID: %d | User ID: %d | Content ID: %d | Price paid: %s | Date: %s",
		p.ID(), p.UserID, p.ContentID, p.PricePaid.StringFixed(2), p.Date.Format(time.DateTime))
}
