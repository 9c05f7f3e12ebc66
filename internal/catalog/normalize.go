package catalog

import (
	"strings"

	"storefront/pkg/domain"
)

// NormalizeKeyword prepares a search keyword for case-insensitive matching:
// surrounding space is dropped, inner runs of whitespace collapse to a single
// space and letters are lower-cased.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// normalizeUser trims the name and canonicalizes the email so lookups by email
// match regardless of how the domain part was typed.
func normalizeUser(user *domain.User) {
	user.Name = strings.TrimSpace(user.Name)
	user.SetEmail(domain.NormalizeEmail(user.Email))
}
