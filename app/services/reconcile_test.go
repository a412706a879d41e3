package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestReconcileVariants_PartitionsSubmission(t *testing.T) {
	persisted := []uint{1, 2}
	submitted := []VariantSubmission{
		{ID: uintPtr(1), VariantCode: "NAVY01", VariantName: "Navy", VariantImage: "navy.jpg", StockQuantity: 12},
		{VariantCode: "MOSS01", VariantName: "Moss", VariantImage: "moss.jpg"},
	}

	plan := ReconcileVariants(persisted, submitted)

	assert.Len(t, plan.ToUpdate, 1)
	assert.Equal(t, uint(1), *plan.ToUpdate[0].ID)
	assert.Len(t, plan.ToInsert, 1)
	assert.Equal(t, "MOSS01", plan.ToInsert[0].VariantCode)
	assert.Equal(t, []uint{2}, plan.ToDeleteIDs)
}

func TestReconcileVariants_Idempotent(t *testing.T) {
	// Applying the resulting state as a new submission changes nothing.
	persisted := []uint{1, 3}
	submitted := []VariantSubmission{
		{ID: uintPtr(1), VariantCode: "NAVY01", VariantName: "Navy", VariantImage: "navy.jpg"},
		{ID: uintPtr(3), VariantCode: "MOSS01", VariantName: "Moss", VariantImage: "moss.jpg"},
	}

	plan := ReconcileVariants(persisted, submitted)

	assert.Empty(t, plan.ToInsert)
	assert.Len(t, plan.ToUpdate, 2)
	assert.Empty(t, plan.ToDeleteIDs)
}

func TestReconcileVariants_IgnoresIDsOutsidePersistedSet(t *testing.T) {
	// An id the fabric does not own, whether stale or forged, must not
	// land in the update plan.
	persisted := []uint{1}
	submitted := []VariantSubmission{
		{ID: uintPtr(1), VariantCode: "NAVY01", VariantName: "Navy", VariantImage: "navy.jpg"},
		{ID: uintPtr(99), VariantCode: "HACK01", VariantName: "Hijack", VariantImage: "x.jpg"},
	}

	plan := ReconcileVariants(persisted, submitted)

	assert.Empty(t, plan.ToInsert)
	assert.Len(t, plan.ToUpdate, 1)
	assert.Equal(t, uint(1), *plan.ToUpdate[0].ID)
	assert.Empty(t, plan.ToDeleteIDs)
}

func TestReconcileVariants_EmptySubmissionDeletesAll(t *testing.T) {
	plan := ReconcileVariants([]uint{4, 5, 6}, nil)

	assert.Empty(t, plan.ToInsert)
	assert.Empty(t, plan.ToUpdate)
	assert.Equal(t, []uint{4, 5, 6}, plan.ToDeleteIDs)
}

func TestReconcileVariants_NoPersistedRows(t *testing.T) {
	submitted := []VariantSubmission{
		{VariantCode: "ECR01", VariantName: "Ecru", VariantImage: "ecru.jpg"},
	}

	plan := ReconcileVariants(nil, submitted)

	assert.Len(t, plan.ToInsert, 1)
	assert.Empty(t, plan.ToUpdate)
	assert.Empty(t, plan.ToDeleteIDs)
}
