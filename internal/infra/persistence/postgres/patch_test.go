package postgres

import (
	"testing"

	"subul/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeChanges_StripsImmutableColumns(t *testing.T) {
	changes := map[string]any{
		"id":         "attacker-controlled",
		"created_at": "2020-01-01",
		"name":       "Widget",
		"price":      12.50,
	}

	sanitized := sanitizeChanges(changes)

	assert.NotContains(t, sanitized, "id")
	assert.NotContains(t, sanitized, "created_at")
	assert.Equal(t, "Widget", sanitized["name"])
	assert.Equal(t, 12.50, sanitized["price"])

	// The caller's map stays intact.
	assert.Contains(t, changes, "id")
	assert.Contains(t, changes, "created_at")
}

func TestSanitizeChanges_OnlyImmutableColumnsLeavesEmptySet(t *testing.T) {
	sanitized := sanitizeChanges(map[string]any{
		"id":         "x",
		"created_at": "y",
	})

	assert.Empty(t, sanitized)
}

func TestSanitizeChanges_EmptyInput(t *testing.T) {
	assert.Empty(t, sanitizeChanges(map[string]any{}))
	assert.Empty(t, sanitizeChanges(nil))
}

func TestPatchChanges_EmitExactlySetFields(t *testing.T) {
	name := "Widget"
	price := 12.50

	changes := entity.ProductPatch{Name: &name, Price: &price}.Changes()

	assert.Len(t, changes, 2)
	assert.Equal(t, "Widget", changes["name"])
	assert.Equal(t, 12.50, changes["price"])
}

func TestPatchChanges_EmptyPatch(t *testing.T) {
	assert.Empty(t, entity.ProductPatch{}.Changes())
	assert.Empty(t, entity.UserPatch{}.Changes())
	assert.Empty(t, entity.InventoryPatch{}.Changes())
}

func TestPatchChanges_StatusUsesStringValue(t *testing.T) {
	status := entity.DeliveryStatusInTransit

	changes := entity.DeliveryPatch{DeliveryStatus: &status}.Changes()

	assert.Equal(t, "in_transit", changes["delivery_status"])
}
