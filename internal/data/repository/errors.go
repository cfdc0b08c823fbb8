package repository

import (
	"errors"
	"fmt"

	"hotel-booking/internal/apperr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translate maps constraint violations onto domain errors. Anything else is
// returned unchanged.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperr.ErrDuplicateKey)
	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, apperr.ErrReferentialIntegrity)
	case pgerrcode.ExclusionViolation:
		return apperr.ErrRoomUnavailable
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return apperr.Validation(fmt.Sprintf("constraint %s violated", pgErr.ConstraintName))
	}
	return err
}
