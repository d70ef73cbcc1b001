package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all other resources. Every query for categories,
// transactions and budgets is scoped to exactly one user.
type User struct {
	DefaultModel
	Email           string          `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name            string          `json:"name" example:"Jane"`
	Password        string          `json:"-"` // bcrypt hash, never serialized
	StartingBalance decimal.Decimal `json:"startingBalance" gorm:"type:DECIMAL(20,8)" example:"21000"` // Added to the lifetime balance
}

// BeforeSave normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	return nil
}

// SetPassword hashes the cleartext password and stores the hash on the user.
func (u *User) SetPassword(cleartext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// VerifyPassword reports whether the cleartext password matches the stored hash.
func (u User) VerifyPassword(cleartext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cleartext)) == nil
}
