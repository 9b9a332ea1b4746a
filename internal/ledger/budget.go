package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// CreateBudget creates a budget and bootstraps it with a monthly budget for
// the current month, so money can be assigned immediately.
func (l *Ledger) CreateBudget(ctx context.Context, userID uuid.UUID, name, note string) (models.Budget, error) {
	var budget models.Budget

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget = models.Budget{UserID: userID, Name: name, Note: note}
		err := tx.Create(&budget).Error
		if err != nil {
			return err
		}

		monthlyBudget := models.MonthlyBudget{
			BudgetID: budget.ID,
			Month:    types.MonthOf(time.Now().UTC()),
		}
		return tx.Create(&monthlyBudget).Error
	})

	return budget, err
}

// DeleteBudget deletes a budget with everything in it.
func (l *Ledger) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := l.budgetForUser(tx, userID, id)
		if err != nil {
			return err
		}

		err = tx.Where("budget_id = ?", budget.ID).Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		monthlyBudgetIDs := tx.Model(&models.MonthlyBudget{}).Select("id").Where("budget_id = ?", budget.ID)
		err = tx.Where("monthly_budget_id IN (?)", monthlyBudgetIDs).Delete(&models.CategoryBudget{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("budget_id = ?", budget.ID).Delete(&models.MonthlyBudget{}).Error
		if err != nil {
			return err
		}

		groupIDs := tx.Model(&models.CategoryGroup{}).Select("id").Where("budget_id = ?", budget.ID)
		err = tx.Where("category_group_id IN (?)", groupIDs).Delete(&models.Category{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("budget_id = ?", budget.ID).Delete(&models.CategoryGroup{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("budget_id = ?", budget.ID).Delete(&models.Account{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})
}
