package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of budgets. Every mutation is checked against the
// authenticated user before it touches any resource.
type User struct {
	DefaultModel
	Email    string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Password string `json:"-"` // bcrypt hash, never returned
	Token    string `json:"token" gorm:"uniqueIndex"` // API token for the Authorization header
}

// BeforeSave trims whitespace and lowercases the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// BeforeCreate generates the API token if it is not set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	if u.Token == "" {
		u.Token = uuid.NewString()
	}
	return nil
}

// SetPassword hashes the plain text password and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// CheckPassword verifies a plain text password against the stored hash.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
