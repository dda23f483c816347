package models

import "gorm.io/gorm"

type Poll struct {
	gorm.Model

	Question string `gorm:"size:200;not null"`

	// Relationships
	Options []Option `gorm:"foreignKey:PollID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
