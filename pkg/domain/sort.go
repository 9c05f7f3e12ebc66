package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Named is implemented by entities listed and searched by their name.
type Named interface {
	DisplayName() string
}

// DisplayName implements Named.
func (c *Creator) DisplayName() string { return c.Name }

// DisplayName implements Named.
func (b *ContentBase) DisplayName() string { return b.Name }

// DisplayName implements Named.
func (u *User) DisplayName() string { return u.Name }

// SortByName returns a copy of items ordered by case-insensitive name.
// The sort is stable so equal names keep their input order.
func SortByName[T Named](items []T) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName()))
	})

	return sorted
}

// FilterByName keeps the items whose name contains keyword, ignoring case.
// A blank keyword keeps everything.
func FilterByName[T Named](items []T, keyword string) []T {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return slices.Clone(items)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.DisplayName()), keyword) {
			out = append(out, item)
		}
	}

	return out
}
