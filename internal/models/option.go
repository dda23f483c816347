package models

import "gorm.io/gorm"

type Option struct {
	gorm.Model

	PollID uint   `gorm:"not null;index"`
	Text   string `gorm:"size:100;not null"`
	Votes  int    `gorm:"not null;default:0"`

	// Relationships
	Poll Poll `gorm:"foreignKey:PollID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
