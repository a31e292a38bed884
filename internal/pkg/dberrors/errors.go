package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/enrollment-api/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes raised by schema constraints
const (
	NotNullViolation    = "23502"
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// AsPgError extracts the PostgreSQL error from err's chain
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsConstraintViolation reports whether err was raised by a schema constraint
func IsConstraintViolation(err error) bool {
	switch Code(err) {
	case apperrors.CodeUniqueViolation, apperrors.CodeForeignKeyViolation,
		apperrors.CodeNotNullViolation, apperrors.CodeCheckViolation:
		return true
	}
	return false
}

// Code maps err to an application error code
func Code(err error) string {
	pgErr, ok := AsPgError(err)
	if !ok {
		return apperrors.CodeDatabase
	}

	switch pgErr.Code {
	case UniqueViolation:
		return apperrors.CodeUniqueViolation
	case ForeignKeyViolation:
		return apperrors.CodeForeignKeyViolation
	case NotNullViolation:
		return apperrors.CodeNotNullViolation
	case CheckViolation:
		return apperrors.CodeCheckViolation
	default:
		return apperrors.CodeDatabase
	}
}

// Wrap converts a database error into a CustomError carrying the driver's own text.
// Errors that are already CustomErrors pass through untouched.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	return apperrors.NewOperationError(err, Code(err))
}
