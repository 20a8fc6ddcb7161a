package postgres

import (
	"strings"

	"subul/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. GORM's TranslateError maps
// the common constraint violations onto its sentinel errors.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// convertConstraintError translates driver constraint violations into the
// repository sentinels. Other errors pass through unchanged.
func convertConstraintError(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateKey
	case isForeignKeyConstraintViolation(err):
		return repository.ErrInvalidReference
	case isNotNullConstraintViolation(err):
		return repository.ErrNullValue
	default:
		return err
	}
}
