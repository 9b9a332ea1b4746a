package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBudget is the allocation of one category for one month.
//
// Assigned is the amount the user allocated, Activity the net signed sum of
// transactions posted in the month, Available the money left to spend.
// Available is carried forward when a new month is created.
type CategoryBudget struct {
	DefaultModel
	MonthlyBudget   MonthlyBudget `json:"-"`
	MonthlyBudgetID uuid.UUID     `json:"monthlyBudgetId" gorm:"uniqueIndex:category_budget_month_category" example:"87bd8076-a2d0-4df3-8c14-0e1b7c4b1f7e"`
	Category        Category      `json:"-"`
	CategoryID      uuid.UUID     `json:"categoryId" gorm:"uniqueIndex:category_budget_month_category" example:"90d9d107-3acb-4e0f-9be2-a350af4b578c"`

	Assigned  decimal.Decimal `json:"assigned" gorm:"type:DECIMAL(19,4)" example:"200000"`
	Activity  decimal.Decimal `json:"activity" gorm:"type:DECIMAL(19,4)" example:"-140000"`
	Available decimal.Decimal `json:"available" gorm:"type:DECIMAL(19,4)" example:"60000"`
}
