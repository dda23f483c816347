package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:25;not null"`
	PasswordHash string `gorm:"not null"`
}
