package models

import (
	"time"
)

// Variant is one color/pattern option of a Fabric. A variant cannot
// outlive its fabric: the foreign key is mandatory and deletes cascade.
// VariantCode is unique per fabric, not globally.
type Variant struct {
	ID            uint    `gorm:"primarykey"`
	FabricID      uint    `gorm:"not null;uniqueIndex:uniq_variant_code_per_fabric"`
	VariantCode   string  `gorm:"size:64;not null;uniqueIndex:uniq_variant_code_per_fabric"`
	VariantName   string  `gorm:"size:255;not null"`
	VariantImage  string  `gorm:"size:512;not null"`
	StockQuantity int     `gorm:"not null;default:0"`
	HexColorCode  *string `gorm:"size:16"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
