package fakers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/karavella/fabric-catalog/app/models"
	"gorm.io/gorm"
)

var compositions = []string{
	"100% cotton",
	"70% polyester, 30% cotton",
	"55% linen, 45% viscose",
	"100% polyester",
	"92% polyamide, 8% elastane",
}

var colorways = []struct {
	Name string
	Hex  string
}{
	{"Navy", "#1f2a44"},
	{"Ecru", "#f0e9dd"},
	{"Moss", "#5c6b46"},
	{"Terracotta", "#b9573d"},
	{"Charcoal", "#3a3a3a"},
	{"Dusty Rose", "#c49a9a"},
}

// FabricFaker builds an unsaved fabric with one to four variants.
func FabricFaker(db *gorm.DB) *models.Fabric {
	name := strings.Title(faker.Word()) + " " + strings.Title(faker.Word())
	code := strings.ToUpper(slug.Make(name))

	fabric := &models.Fabric{
		ExternalID:  fmt.Sprintf("FAB-%s-%03d", code[:min(3, len(code))], rand.Intn(1000)),
		Name:        name,
		BaseImage:   "/uploads/samples/base.jpg",
		Composition: compositions[rand.Intn(len(compositions))],
		WidthCM:     140 + rand.Intn(4)*10,
		WeightGSM:   80 + rand.Intn(30)*10,

		NormalWash:   rand.Intn(2) == 0,
		DryCleanOnly: rand.Intn(4) == 0,
		NoBleach:     rand.Intn(2) == 0,
		IronLow:      rand.Intn(2) == 0,
		Blackout:     rand.Intn(5) == 0,
		JacquardKnit: rand.Intn(5) == 0,
		SatinWeave:   rand.Intn(5) == 0,
		TwillWeave:   rand.Intn(5) == 0,
	}

	numVariants := rand.Intn(4) + 1
	for i := 0; i < numVariants; i++ {
		colorway := colorways[(i+rand.Intn(len(colorways)))%len(colorways)]
		hex := colorway.Hex
		fabric.Variants = append(fabric.Variants, models.Variant{
			VariantCode:   fmt.Sprintf("%s%02d", strings.ToUpper(colorway.Name[:3]), i+1),
			VariantName:   colorway.Name,
			VariantImage:  "/uploads/samples/variant.jpg",
			StockQuantity: rand.Intn(500),
			HexColorCode:  &hex,
		})
	}

	return fabric
}
