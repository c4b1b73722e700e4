package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	Name   string  `gorm:"not null"`
	Price  float64 `gorm:"not null"`
	UserID uint    `gorm:"not null"`
}
