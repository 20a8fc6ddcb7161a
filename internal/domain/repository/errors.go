package repository

import "errors"

// Constraint sentinels shared by all repositories. Implementations translate
// driver-level constraint violations into these so the application layer can
// map them to the right API error without importing a DB driver.
var (
	// ErrDuplicateKey signals a unique-constraint violation.
	ErrDuplicateKey = errors.New("duplicate key value violates a unique constraint")

	// ErrInvalidReference signals a foreign-key violation, i.e. a referenced
	// record does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrNullValue signals a not-null violation for a required column.
	ErrNullValue = errors.New("required column received a null value")
)
