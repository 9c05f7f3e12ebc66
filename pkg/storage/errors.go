package storage

import (
	"errors"

	"storefront/pkg/serrors"
)

// Transaction state errors returned by Begin, Commit and Rollback.
var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// Failed wraps err into a serrors.ErrStorage error naming the failed operation.
// Errors that already carry a semantic kind pass through unchanged.
func Failed(err error, op string) error {
	if err == nil {
		return nil
	}
	if serrors.KindOf(err) != nil {
		return err
	}

	return serrors.Wrap(serrors.ErrStorage, err, "could not %s", op)
}
