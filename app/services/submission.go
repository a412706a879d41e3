package services

import (
	"time"

	"github.com/karavella/fabric-catalog/app/models"
)

// FabricSubmission is the one canonical definition of a fabric payload.
// Every scalar is a pointer so a field that was never submitted can be
// told apart from a zero value; constraint tags use omitempty, and which
// fields are mandatory is decided by the validation profile, not here.
type FabricSubmission struct {
	ExternalID  *string `form:"externalId" validate:"omitempty,min=3"`
	Name        *string `form:"name" validate:"omitempty,min=1"`
	BaseImage   *string `form:"baseImage" validate:"omitempty,min=1"`
	Composition *string `form:"composition" validate:"omitempty,min=1"`
	WidthCM     *int    `form:"widthCm" validate:"omitempty,gte=50"`
	WeightGSM   *int    `form:"weightGsm" validate:"omitempty,gte=10"`

	NormalWash     *bool `form:"normalWash"`
	HandWash       *bool `form:"handWash"`
	DryCleanOnly   *bool `form:"dryCleanOnly"`
	NoBleach       *bool `form:"noBleach"`
	IronLow        *bool `form:"ironLow"`
	TumbleDryLow   *bool `form:"tumbleDryLow"`
	WaterRepellent *bool `form:"waterRepellent"`
	Blackout       *bool `form:"blackout"`
	FireRetardant  *bool `form:"fireRetardant"`
	Antibacterial  *bool `form:"antibacterial"`
	Stretch        *bool `form:"stretch"`
	JacquardKnit   *bool `form:"jacquardKnit"`
	PlainTulle     *bool `form:"plainTulle"`
	SatinWeave     *bool `form:"satinWeave"`
	TwillWeave     *bool `form:"twillWeave"`

	// nil means "variants were not part of this submission"; an empty
	// non-nil slice is a submission of zero variants and is rejected.
	Variants []VariantSubmission `form:"variants" validate:"omitempty,min=1,dive"`
}

// VariantSubmission carries one color/pattern option. ID is set only
// when the client is referencing an already persisted variant.
type VariantSubmission struct {
	ID            *uint   `form:"id"`
	VariantCode   string  `form:"variantCode" validate:"required"`
	VariantName   string  `form:"variantName" validate:"required"`
	VariantImage  string  `form:"variantImage" validate:"required"`
	StockQuantity int     `form:"stockQuantity" validate:"gte=0"`
	HexColorCode  *string `form:"hexColorCode"`
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// toModel builds a fresh Fabric row for insertion. Absent flags default
// to false; variants are stamped separately with the generated id.
func (s *FabricSubmission) toModel() *models.Fabric {
	return &models.Fabric{
		ExternalID:     derefString(s.ExternalID),
		Name:           derefString(s.Name),
		BaseImage:      derefString(s.BaseImage),
		Composition:    derefString(s.Composition),
		WidthCM:        derefInt(s.WidthCM),
		WeightGSM:      derefInt(s.WeightGSM),
		NormalWash:     derefBool(s.NormalWash),
		HandWash:       derefBool(s.HandWash),
		DryCleanOnly:   derefBool(s.DryCleanOnly),
		NoBleach:       derefBool(s.NoBleach),
		IronLow:        derefBool(s.IronLow),
		TumbleDryLow:   derefBool(s.TumbleDryLow),
		WaterRepellent: derefBool(s.WaterRepellent),
		Blackout:       derefBool(s.Blackout),
		FireRetardant:  derefBool(s.FireRetardant),
		Antibacterial:  derefBool(s.Antibacterial),
		Stretch:        derefBool(s.Stretch),
		JacquardKnit:   derefBool(s.JacquardKnit),
		PlainTulle:     derefBool(s.PlainTulle),
		SatinWeave:     derefBool(s.SatinWeave),
		TwillWeave:     derefBool(s.TwillWeave),
	}
}

func (s *FabricSubmission) boolColumns() map[string]*bool {
	return map[string]*bool{
		"normal_wash":     s.NormalWash,
		"hand_wash":       s.HandWash,
		"dry_clean_only":  s.DryCleanOnly,
		"no_bleach":       s.NoBleach,
		"iron_low":        s.IronLow,
		"tumble_dry_low":  s.TumbleDryLow,
		"water_repellent": s.WaterRepellent,
		"blackout":        s.Blackout,
		"fire_retardant":  s.FireRetardant,
		"antibacterial":   s.Antibacterial,
		"stretch":         s.Stretch,
		"jacquard_knit":   s.JacquardKnit,
		"plain_tulle":     s.PlainTulle,
		"satin_weave":     s.SatinWeave,
		"twill_weave":     s.TwillWeave,
	}
}

// coreColumns returns only the columns that were actually submitted, so
// a core-only update never blanks out fields it didn't receive.
func (s *FabricSubmission) coreColumns() map[string]interface{} {
	columns := make(map[string]interface{})
	if s.ExternalID != nil {
		columns["external_id"] = *s.ExternalID
	}
	if s.Name != nil {
		columns["name"] = *s.Name
	}
	if s.BaseImage != nil {
		columns["base_image"] = *s.BaseImage
	}
	if s.Composition != nil {
		columns["composition"] = *s.Composition
	}
	if s.WidthCM != nil {
		columns["width_cm"] = *s.WidthCM
	}
	if s.WeightGSM != nil {
		columns["weight_gsm"] = *s.WeightGSM
	}
	for column, value := range s.boolColumns() {
		if value != nil {
			columns[column] = *value
		}
	}
	return columns
}

func (v *VariantSubmission) toModel(fabricID uint) models.Variant {
	stock := v.StockQuantity
	if stock < 0 {
		stock = 0
	}
	return models.Variant{
		FabricID:      fabricID,
		VariantCode:   v.VariantCode,
		VariantName:   v.VariantName,
		VariantImage:  v.VariantImage,
		StockQuantity: stock,
		HexColorCode:  v.HexColorCode,
	}
}

func (v *VariantSubmission) columns() map[string]interface{} {
	stock := v.StockQuantity
	if stock < 0 {
		stock = 0
	}
	return map[string]interface{}{
		"variant_code":   v.VariantCode,
		"variant_name":   v.VariantName,
		"variant_image":  v.VariantImage,
		"stock_quantity": stock,
		"hex_color_code": v.HexColorCode,
		"updated_at":     time.Now(),
	}
}
