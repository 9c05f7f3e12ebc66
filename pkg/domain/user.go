package domain

import (
	"fmt"
	"regexp"
	"strings"

	"storefront/pkg/serrors"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`) //nolint: gochecknoglobals

// User is a registered customer of the store.
type User struct {
	identity[UserID]

	// Name is required.
	Name string `json:"name"`
	// Email is required, unique and stored trimmed.
	Email string `json:"email"`
}

// NewUser builds an unvalidated user. The email is trimmed.
func NewUser(name, email string) *User {
	u := &User{Name: name}
	u.SetEmail(email)

	return u
}

// SetEmail assigns the trimmed email address.
func (u *User) SetEmail(email string) {
	u.Email = strings.TrimSpace(email)
}

// Validate implements Validatable.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return serrors.With(serrors.ErrInvalidInput, "user name cannot be empty")
	}
	if strings.TrimSpace(u.Email) == "" {
		return serrors.With(serrors.ErrInvalidInput, "user email cannot be empty")
	}
	if !emailPattern.MatchString(u.Email) {
		return serrors.With(serrors.ErrInvalidInput, "invalid email format")
	}

	return nil
}

// Describe returns a human readable summary of the user.
func (u *User) Describe() string {
	return fmt.Sprintf("User ID: %d | Name: %s | Email: %s", u.ID(), u.Name, u.Email)
}

// NormalizeEmail trims the address and lower-cases its domain part. The local
// part is kept as is since some providers treat it case sensitively.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}
