package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"not null"`
	Email    string `gorm:"not null;unique"`
	Password string `gorm:"not null"`
	Verified bool   `gorm:"not null;default:false"`
	Items    []Item `gorm:"constraint:OnDelete:CASCADE;"`
}
