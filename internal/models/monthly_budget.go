package models

import (
	"github.com/google/uuid"
	"github.com/kantongku/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget is the aggregate of a budget for one month.
//
// TotalBalance is the pool of money that has not been assigned to a
// category yet. The other totals are always recomputed as the sums over
// the month's category budgets, never updated incrementally, so that the
// category budgets stay the single source of truth.
type MonthlyBudget struct {
	DefaultModel
	Budget   Budget      `json:"-"`
	BudgetID uuid.UUID   `json:"budgetId" gorm:"uniqueIndex:monthly_budget_budget_id_month" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"`
	Month    types.Month `json:"month" gorm:"uniqueIndex:monthly_budget_budget_id_month" example:"2026-08-01T00:00:00Z"`

	TotalBalance   decimal.Decimal `json:"totalBalance" gorm:"type:DECIMAL(19,4)" example:"750000"`
	TotalAssigned  decimal.Decimal `json:"totalAssigned" gorm:"type:DECIMAL(19,4)" example:"500000"`
	TotalActivity  decimal.Decimal `json:"totalActivity" gorm:"type:DECIMAL(19,4)" example:"-140000"`
	TotalAvailable decimal.Decimal `json:"totalAvailable" gorm:"type:DECIMAL(19,4)" example:"360000"`
}

// CategoryBudgets returns all category budgets of the month.
func (m MonthlyBudget) CategoryBudgets(db *gorm.DB) ([]CategoryBudget, error) {
	var categoryBudgets []CategoryBudget

	err := db.Where(CategoryBudget{MonthlyBudgetID: m.ID}).Find(&categoryBudgets).Error
	if err != nil {
		return nil, err
	}

	return categoryBudgets, nil
}
