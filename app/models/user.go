package models

import (
	"time"
)

// User is a staff account. It exists so uploads and the admin forms can
// resolve an identity from the session; the catalog itself has no notion
// of ownership.
type User struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
