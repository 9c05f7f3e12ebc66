package postgres

import (
	"errors"

	"storefront/pkg/serrors"
	"storefront/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapErr turns a driver error into a semantic one. Constraint violations keep
// their meaning for the caller, anything else is a storage failure of op.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return serrors.Wrap(serrors.ErrDuplicate, err, "could not %s: %s already exists", op, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return serrors.Wrap(serrors.ErrInvalidInput, err, "could not %s: %s", op, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return serrors.Wrap(serrors.ErrInvalidInput, err, "could not %s: %s violated", op, pgErr.ConstraintName)
		case pgerrcode.NumericValueOutOfRange:
			return serrors.Wrap(serrors.ErrInvalidInput, err, "could not %s: value out of range", op)
		}
	}

	return storage.Failed(err, op)
}
