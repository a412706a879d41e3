package models

import (
	"time"
)

// Fabric is one textile design in the catalog. ExternalID is the
// caller-supplied product code printed on sample books; it is unique
// across the whole catalog, as is the fabric name.
type Fabric struct {
	ID          uint   `gorm:"primarykey"`
	ExternalID  string `gorm:"size:64;not null;uniqueIndex:uniq_fabrics_external_id"`
	Name        string `gorm:"size:255;not null;uniqueIndex:uniq_fabrics_name"`
	BaseImage   string `gorm:"size:512;not null"`
	Composition string `gorm:"size:255;not null"`
	WidthCM     int    `gorm:"column:width_cm;not null"`
	WeightGSM   int    `gorm:"column:weight_gsm;not null"`

	// Care flags.
	NormalWash   bool `gorm:"not null;default:false"`
	HandWash     bool `gorm:"not null;default:false"`
	DryCleanOnly bool `gorm:"not null;default:false"`
	NoBleach     bool `gorm:"not null;default:false"`
	IronLow      bool `gorm:"not null;default:false"`
	TumbleDryLow bool `gorm:"not null;default:false"`

	// Feature flags.
	WaterRepellent bool `gorm:"not null;default:false"`
	Blackout       bool `gorm:"not null;default:false"`
	FireRetardant  bool `gorm:"not null;default:false"`
	Antibacterial  bool `gorm:"not null;default:false"`
	Stretch        bool `gorm:"not null;default:false"`

	// Weave flags.
	JacquardKnit bool `gorm:"not null;default:false"`
	PlainTulle   bool `gorm:"not null;default:false"`
	SatinWeave   bool `gorm:"not null;default:false"`
	TwillWeave   bool `gorm:"not null;default:false"`

	Variants  []Variant `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
