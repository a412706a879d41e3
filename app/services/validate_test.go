package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validSubmission() *FabricSubmission {
	return &FabricSubmission{
		ExternalID:  strPtr("FAB-001"),
		Name:        strPtr("Harbor Twill"),
		BaseImage:   strPtr("/uploads/harbor.jpg"),
		Composition: strPtr("100% cotton"),
		WidthCM:     intPtr(150),
		WeightGSM:   intPtr(120),
		Variants: []VariantSubmission{
			{VariantCode: "NAVY01", VariantName: "Navy", VariantImage: "/uploads/navy.jpg", StockQuantity: 10},
		},
	}
}

func TestValidateSubmission_FullProfileAcceptsValid(t *testing.T) {
	errs := ValidateSubmission(NewValidator(), validSubmission(), ProfileFull)
	assert.Empty(t, errs)
}

func TestValidateSubmission_FullProfileRequiresCoreFields(t *testing.T) {
	errs := ValidateSubmission(NewValidator(), &FabricSubmission{}, ProfileFull)

	for _, field := range []string{"externalId", "name", "baseImage", "composition", "widthCm", "weightGsm", "variants"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateSubmission_WidthBoundary(t *testing.T) {
	v := NewValidator()

	sub := validSubmission()
	sub.WidthCM = intPtr(49)
	assert.Contains(t, ValidateSubmission(v, sub, ProfileFull), "widthCm")

	sub.WidthCM = intPtr(50)
	assert.NotContains(t, ValidateSubmission(v, sub, ProfileFull), "widthCm")
}

func TestValidateSubmission_WeightBoundary(t *testing.T) {
	v := NewValidator()

	sub := validSubmission()
	sub.WeightGSM = intPtr(9)
	assert.Contains(t, ValidateSubmission(v, sub, ProfileFull), "weightGsm")

	sub.WeightGSM = intPtr(10)
	assert.NotContains(t, ValidateSubmission(v, sub, ProfileFull), "weightGsm")
}

func TestValidateSubmission_ExternalIDMinLength(t *testing.T) {
	sub := validSubmission()
	sub.ExternalID = strPtr("AB")
	assert.Contains(t, ValidateSubmission(NewValidator(), sub, ProfileFull), "externalId")
}

func TestValidateSubmission_EmptyVariantListRejected(t *testing.T) {
	sub := validSubmission()
	sub.Variants = []VariantSubmission{}
	assert.Contains(t, ValidateSubmission(NewValidator(), sub, ProfileFull), "variants")
}

func TestValidateSubmission_VariantFieldsRequired(t *testing.T) {
	sub := validSubmission()
	sub.Variants = []VariantSubmission{{StockQuantity: 5}}

	errs := ValidateSubmission(NewValidator(), sub, ProfileFull)

	assert.Contains(t, errs, "variantCode")
	assert.Contains(t, errs, "variantName")
	assert.Contains(t, errs, "variantImage")
}

func TestValidateSubmission_NegativeStockRejected(t *testing.T) {
	sub := validSubmission()
	sub.Variants[0].StockQuantity = -1
	assert.Contains(t, ValidateSubmission(NewValidator(), sub, ProfileFull), "stockQuantity")
}

func TestValidateSubmission_CoreProfileAllowsPartial(t *testing.T) {
	// A core-only update may submit any subset; nothing is mandatory and
	// the variants list is not part of the submission at all.
	sub := &FabricSubmission{Name: strPtr("Harbor Twill II")}
	assert.Empty(t, ValidateSubmission(NewValidator(), sub, ProfileCore))
}

func TestValidateSubmission_CoreProfileStillChecksConstraints(t *testing.T) {
	sub := &FabricSubmission{WidthCM: intPtr(30)}
	assert.Contains(t, ValidateSubmission(NewValidator(), sub, ProfileCore), "widthCm")
}
