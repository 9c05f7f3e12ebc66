package domain

import (
	"storefront/pkg/serrors"
)

// CreatorID identifies a creator. Assigned by storage.
type CreatorID int64

// ContentID identifies a content item of any type. Content ids are unique
// across games, movies and music albums.
type ContentID int64

// UserID identifies a user within the system.
type UserID int64

// PurchaseID identifies a purchase record.
type PurchaseID int64

// Validatable is implemented by every entity that checks its own invariants
// before it is persisted.
type Validatable interface {
	// Validate returns an ErrInvalidInput error describing the first violated rule.
	Validate() error
}

// IsValid reports whether v passes validation. The validation error itself is dropped.
func IsValid(v Validatable) bool {
	return v.Validate() == nil
}

// identity holds a storage assigned identifier which can be set exactly once.
type identity[T ~int64] struct {
	id T
}

// ID returns the identifier, or zero when the entity was never persisted.
func (i *identity[T]) ID() T { return i.id }

// SetID assigns the identifier. It fails with ErrDuplicate when an id is
// already present and with ErrInvalidInput for non-positive values.
func (i *identity[T]) SetID(id T) error {
	if i.id != 0 {
		return serrors.With(serrors.ErrDuplicate, "id is already set")
	}
	if id <= 0 {
		return serrors.With(serrors.ErrInvalidInput, "id must be positive")
	}
	i.id = id

	return nil
}
