package postgres

import (
	"context"

	"subul/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// immutableColumns can never be touched through a partial update. The typed
// patches cannot express them, but the applier strips them anyway so the
// invariant does not depend on every patch type staying well-behaved.
var immutableColumns = [...]string{"id", "created_at"}

// sanitizeChanges returns the change set with immutable columns removed.
// The input map is not modified.
func sanitizeChanges(changes map[string]any) map[string]any {
	sanitized := make(map[string]any, len(changes))
	for column, value := range changes {
		sanitized[column] = value
	}
	for _, column := range immutableColumns {
		delete(sanitized, column)
	}

	return sanitized
}

// applyPatch executes a single parameterized UPDATE setting exactly the
// supplied columns plus updated_at (maintained by GORM) on the row matching
// id. Every value travels as a bound parameter.
//
// Outcomes:
//   - repository.ErrEmptyPatch when the sanitized change set is empty; the
//     store is not touched (no-op, distinct from not-found);
//   - notFound when no row matches id (a normal negative result);
//   - nil when exactly the supplied fields were written.
func applyPatch(ctx context.Context, db *gorm.DB, model any, id uuid.UUID, changes map[string]any, notFound error) error {
	sanitized := sanitizeChanges(changes)
	if len(sanitized) == 0 {
		return repository.ErrEmptyPatch
	}

	result := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Updates(sanitized)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}
