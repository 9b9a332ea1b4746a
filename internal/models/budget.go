package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget represents a budget.
//
// A budget is the highest level of organization below the user, all other
// resources reference it directly or transitively.
type Budget struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `json:"userId" example:"0f851a74-4775-44d9-b6e7-e3ae12e54f82"`
	Name   string    `json:"name" example:"Household"`
	Note   string    `json:"note" example:"Our shared expenses"`
}

// BeforeSave trims whitespace from all strings.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	return nil
}

// BelongsToUser reports whether the budget is owned by the user.
func (b Budget) BelongsToUser(userID uuid.UUID) bool {
	return b.UserID == userID
}
