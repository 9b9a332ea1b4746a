package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// CreateMonthlyBudget opens a new month for a budget.
//
// With a reference month, the new month starts with the reference's balance
// and one category budget per reference row, assigned and activity zeroed and
// the available amount carried forward. Without a reference month the new
// month starts empty with a zeroed row for every category of the budget.
func (l *Ledger) CreateMonthlyBudget(ctx context.Context, userID, budgetID uuid.UUID, month types.Month, referenceMonth types.Month) (models.MonthlyBudget, error) {
	var monthlyBudget models.MonthlyBudget

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := l.budgetForUser(tx, userID, budgetID)
		if err != nil {
			return err
		}

		var existing models.MonthlyBudget
		err = tx.First(&existing, "budget_id = ? AND month = ?", budget.ID, month).Error
		if err == nil {
			return models.ErrDuplicateMonth
		}
		if !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		monthlyBudget = models.MonthlyBudget{BudgetID: budget.ID, Month: month}

		if referenceMonth.IsZero() {
			err = tx.Create(&monthlyBudget).Error
			if err != nil {
				return err
			}
			return l.seedFromCategories(tx, budget.ID, monthlyBudget.ID)
		}

		var reference models.MonthlyBudget
		err = tx.First(&reference, "budget_id = ? AND month = ?", budget.ID, referenceMonth).Error
		if err != nil {
			return err
		}

		monthlyBudget.TotalBalance = reference.TotalBalance
		err = tx.Create(&monthlyBudget).Error
		if err != nil {
			return err
		}

		var referenceRows []models.CategoryBudget
		err = tx.Where("monthly_budget_id = ?", reference.ID).Find(&referenceRows).Error
		if err != nil {
			return err
		}

		for _, row := range referenceRows {
			categoryBudget := models.CategoryBudget{
				MonthlyBudgetID: monthlyBudget.ID,
				CategoryID:      row.CategoryID,
				// Unspent money carries over into the new month.
				Available: row.Available,
			}
			err = tx.Create(&categoryBudget).Error
			if err != nil {
				return err
			}
		}

		return l.recomputeMonthlyTotals(tx, &monthlyBudget)
	})

	return monthlyBudget, err
}

// seedFromCategories creates a zeroed category budget row for every category
// of the budget.
func (l *Ledger) seedFromCategories(tx *gorm.DB, budgetID, monthlyBudgetID uuid.UUID) error {
	var categories []models.Category
	err := tx.
		Joins("JOIN category_groups ON category_groups.id = categories.category_group_id").
		Where("category_groups.budget_id = ?", budgetID).
		Find(&categories).Error
	if err != nil {
		return err
	}

	for _, category := range categories {
		categoryBudget := models.CategoryBudget{
			MonthlyBudgetID: monthlyBudgetID,
			CategoryID:      category.ID,
		}
		err = tx.Create(&categoryBudget).Error
		if err != nil {
			return err
		}
	}

	return nil
}
