package postgres_test

import (
	"testing"

	"storefront/pkg/domain"
	"storefront/pkg/serrors"
	"storefront/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgContentRow_ToDomain(t *testing.T) {
	t.Parallel()

	row := &postgres.PgContentRow{
		PgContent: postgres.PgContent{
			ID:          4,
			ContentType: string(domain.ContentTypeGame),
			Name:        "Minecraft",
			CreatorID:   2,
			ReleaseYear: 2011,
			Available:   true,
			Description: "Blocks",
		},
		CreatorName:    "Mojang",
		CreatorCountry: "Sweden",
		CreatorBio:     "",
	}

	content, err := row.ToDomain()
	require.NoError(t, err)
	require.Equal(t, domain.ContentTypeGame, content.Type())
	require.Equal(t, domain.ContentID(4), content.ID())
	require.Equal(t, domain.CreatorID(2), content.Base().CreatorID())
	require.Equal(t, "Blocks", content.Base().Description)

	row.ContentType = "PODCAST"
	_, err = row.ToDomain()
	require.ErrorIs(t, err, serrors.ErrInvalidInput, "an unknown stored type is rejected")
}
