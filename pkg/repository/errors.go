package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the domain repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var (
	// ErrMissingReference reports a row that points at a record which does not
	// exist, such as a shipment written for an unknown email.
	ErrMissingReference = errors.New("referenced record does not exist")
	// ErrConstraint reports a value rejected by a CHECK constraint, such as a
	// category outside the five known ones.
	ErrConstraint = errors.New("value violates a column constraint")
)

// MapError translates driver errors into domain errors. sql.ErrNoRows becomes
// notFoundErr and a unique violation becomes duplicateErr. Foreign key and
// check violations wrap ErrMissingReference and ErrConstraint with the
// constraint name. Anything else is returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return duplicateErr
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrMissingReference, pgErr.ConstraintName)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
	}

	return err
}
