package auth

import (
	"testing"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		allowed entity.Roles
		wantErr bool
	}{
		{
			name:    "customer denied admin route",
			role:    entity.RoleCustomer,
			allowed: entity.Roles{entity.RoleAdmin},
			wantErr: true,
		},
		{
			name:    "admin allowed on admin or merchant route",
			role:    entity.RoleAdmin,
			allowed: entity.Roles{entity.RoleAdmin, entity.RoleMerchant},
			wantErr: false,
		},
		{
			name:    "merchant allowed on merchant route",
			role:    entity.RoleMerchant,
			allowed: entity.Roles{entity.RoleMerchant, entity.RoleAdmin},
			wantErr: false,
		},
		{
			name:    "merchant denied admin-only route",
			role:    entity.RoleMerchant,
			allowed: entity.Roles{entity.RoleAdmin},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := service.Identity{ID: uuid.New(), Email: "a@b.c", Role: tt.role}

			err := Authorize(identity, tt.allowed)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
