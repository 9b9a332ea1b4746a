package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryGroup groups categories of a budget.
type CategoryGroup struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `json:"budgetId" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"`
	Name     string    `json:"name" example:"Daily Life"`
}

func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	return nil
}

// Categories returns all categories in this group.
func (g CategoryGroup) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.Where(Category{CategoryGroupID: g.ID}).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
