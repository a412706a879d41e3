package fakers

import (
	"github.com/go-faker/faker/v4"
	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/karavella/fabric-catalog/app/models"
	"gorm.io/gorm"
)

// UserFaker builds an unsaved staff account. The password is always
// "password" so seeded environments are easy to log into.
func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		Name:         faker.Name(),
		Email:        faker.Email(),
		PasswordHash: helpers.HashPassword("password"),
	}
}
