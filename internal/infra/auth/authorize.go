package auth

import (
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/service"
)

// Authorize succeeds iff the identity's role is a member of the allowed set.
// It is a pure membership check with no I/O; the role gate middleware and
// direct callers share it.
func Authorize(identity service.Identity, allowed entity.Roles) error {
	if allowed.Contains(identity.Role) {
		return nil
	}

	return domainerrors.ErrForbidden
}
