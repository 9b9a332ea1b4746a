package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending category.
//
// Transactions post activity against it, one category budget per month
// tracks its allocation.
type Category struct {
	DefaultModel
	CategoryGroup   CategoryGroup `json:"-"`
	CategoryGroupID uuid.UUID     `json:"categoryGroupId" example:"90d9d107-3acb-4e0f-9be2-a350af4b578c"`
	Name            string        `json:"name" example:"Groceries"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// CategoryBudgets returns all monthly category budgets of this category.
func (c Category) CategoryBudgets(db *gorm.DB) ([]CategoryBudget, error) {
	var categoryBudgets []CategoryBudget

	err := db.Where(CategoryBudget{CategoryID: c.ID}).Find(&categoryBudgets).Error
	if err != nil {
		return nil, err
	}

	return categoryBudgets, nil
}
