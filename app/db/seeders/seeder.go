package seeders

import (
	"github.com/karavella/fabric-catalog/app/db/fakers"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister(db *gorm.DB) []Seeder {
	seeders := []Seeder{
		{Seeder: fakers.UserFaker(db)},
	}
	for i := 0; i < 10; i++ {
		seeders = append(seeders, Seeder{Seeder: fakers.FabricFaker(db)})
	}
	return seeders
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister(db) {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
