package catalog_test

import (
	"testing"

	"storefront/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestNormalizeKeyword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "lower-case", in: "Matrix", out: "matrix"},
		{name: "trim surrounding space", in: "  dark side ", out: "dark side"},
		{name: "collapse inner whitespace", in: "the\t  wall", out: "the wall"},
		{name: "blank", in: " \n ", out: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.out, catalog.NormalizeKeyword(tc.in))
		})
	}
}
