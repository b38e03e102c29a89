package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	Role         string `gorm:"default:'integrator'"`
	Status       string `gorm:"default:'active'"`
	TokenVersion int    `gorm:"default:1"`
}

// Account returns the ledger account identifier owned by this user.
func (u *User) Account() string {
	return LedgerAccount(u.ID)
}
