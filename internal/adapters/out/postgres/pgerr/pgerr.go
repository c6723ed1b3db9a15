// Package pgerr classifies PostgreSQL errors returned through GORM's pgx driver.
package pgerr

import (
	"errors"

	"forwarding/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// UniqueKey names the domain parameter guarded by a unique constraint.
type UniqueKey struct {
	Constraint string
	Param      string
	Value      any
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ConstraintName returns the violated constraint, or "" for other errors.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// AlreadyExists converts a unique violation into errs.ObjectAlreadyExistsError
// for the key whose constraint was violated. A violation of a constraint that
// is not listed is reported by constraint name. Other errors are returned as is.
//
// Example:
//
//	err = pgerr.AlreadyExists(db.Create(&dto).Error,
//	    pgerr.UniqueKey{Constraint: "idx_races_name", Param: "race name", Value: dto.Name})
//	errors.Is(err, errs.ErrObjectAlreadyExists) // true for a duplicate name
func AlreadyExists(err error, keys ...UniqueKey) error {
	if !IsUniqueViolation(err) {
		return err
	}

	constraint := ConstraintName(err)
	for _, key := range keys {
		if key.Constraint == constraint {
			return errs.NewObjectAlreadyExistsErrorWithCause(key.Param, key.Value, err)
		}
	}

	return errs.NewObjectAlreadyExistsErrorWithCause("constraint", constraint, err)
}
