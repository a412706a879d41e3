package migrations

import (
	"github.com/karavella/fabric-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Fabric{}, &models.Variant{})
}
