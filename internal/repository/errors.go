package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist or isn't owned by the caller
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness constraint fails
	ErrConflict = errors.New("conflict: duplicate value")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable is returned when no database is configured or the connection is gone
	ErrUnavailable = errors.New("database not available")
)
