package storage_test

import (
	"errors"
	"testing"

	"storefront/pkg/serrors"
	"storefront/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestFailed(t *testing.T) {
	t.Parallel()

	require.NoError(t, storage.Failed(nil, "store user"))

	cause := errors.New("connection reset")
	err := storage.Failed(cause, "store user")
	require.ErrorIs(t, err, serrors.ErrStorage)
	require.ErrorIs(t, err, cause)
	require.EqualError(t, err, "could not store user: connection reset")

	dup := serrors.With(serrors.ErrDuplicate, "email already registered")
	err = storage.Failed(dup, "store user")
	require.ErrorIs(t, err, serrors.ErrDuplicate)
	require.NotErrorIs(t, err, serrors.ErrStorage)
}
