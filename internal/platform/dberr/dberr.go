// Package dberr classifies PostgreSQL constraint failures into the two error
// kinds callers act on: uniqueness violations and referential integrity
// violations.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUniqueViolation is the kind of every duplicate-key failure.
	ErrUniqueViolation = errors.New("uniqueness violation")
	// ErrForeignKeyViolation is the kind of every reference to a missing row.
	ErrForeignKeyViolation = errors.New("referential integrity violation")
)

// ConstraintError reports which constraint a write violated.
type ConstraintError struct {
	Kind       error
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s on %s", e.Kind, e.Constraint, e.Table)
}

// Is matches the error kind, so errors.Is(err, ErrUniqueViolation) works on
// wrapped constraint errors.
func (e *ConstraintError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Wrap converts a driver error into a *ConstraintError when it carries a
// unique or foreign key SQLSTATE. Any other error is returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return &ConstraintError{Kind: ErrUniqueViolation, Table: pgErr.TableName, Constraint: pgErr.ConstraintName, Err: err}
	case pgerrcode.ForeignKeyViolation:
		return &ConstraintError{Kind: ErrForeignKeyViolation, Table: pgErr.TableName, Constraint: pgErr.ConstraintName, Err: err}
	default:
		return err
	}
}

// Constraint returns the name of the violated constraint, or "" when err is
// not a constraint error.
func Constraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}

// IsUniqueViolation reports whether err violated the named unique constraint.
// An empty name matches any unique constraint.
func IsUniqueViolation(err error, constraint string) bool {
	return errors.Is(err, ErrUniqueViolation) && (constraint == "" || Constraint(err) == constraint)
}

// IsForeignKeyViolation reports whether err violated the named foreign key.
// An empty name matches any foreign key.
func IsForeignKeyViolation(err error, constraint string) bool {
	return errors.Is(err, ErrForeignKeyViolation) && (constraint == "" || Constraint(err) == constraint)
}
