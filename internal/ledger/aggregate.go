package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// applyActivity adds delta to the category budget of the month the
// transaction falls into and recomputes the monthly totals.
//
// Months that are not budgeted yet and categories without a budget row for
// the month are skipped. Their activity is picked up by the recomputation as
// soon as the rows exist.
func (l *Ledger) applyActivity(tx *gorm.DB, budgetID, categoryID uuid.UUID, month types.Month, delta decimal.Decimal) error {
	var monthlyBudget models.MonthlyBudget
	err := tx.First(&monthlyBudget, "budget_id = ? AND month = ?", budgetID, month).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		return err
	}

	var categoryBudget models.CategoryBudget
	err = tx.First(&categoryBudget, "monthly_budget_id = ? AND category_id = ?", monthlyBudget.ID, categoryID).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		return err
	}

	categoryBudget.Activity = categoryBudget.Activity.Add(delta)
	categoryBudget.Available = categoryBudget.Available.Add(delta)
	err = tx.Save(&categoryBudget).Error
	if err != nil {
		return err
	}

	return l.recomputeMonthlyTotals(tx, &monthlyBudget)
}

// recomputeMonthlyTotals replaces the monthly totals with the sums over the
// category budgets of the month. Summing instead of adding deltas keeps the
// totals from drifting away from their rows.
func (l *Ledger) recomputeMonthlyTotals(tx *gorm.DB, monthlyBudget *models.MonthlyBudget) error {
	var categoryBudgets []models.CategoryBudget
	err := tx.Where("monthly_budget_id = ?", monthlyBudget.ID).Find(&categoryBudgets).Error
	if err != nil {
		return err
	}

	assigned := decimal.Zero
	activity := decimal.Zero
	available := decimal.Zero
	for _, categoryBudget := range categoryBudgets {
		assigned = assigned.Add(categoryBudget.Assigned)
		activity = activity.Add(categoryBudget.Activity)
		available = available.Add(categoryBudget.Available)
	}

	monthlyBudget.TotalAssigned = assigned
	monthlyBudget.TotalActivity = activity
	monthlyBudget.TotalAvailable = available

	return tx.Save(monthlyBudget).Error
}

// CategoryBudgetPatch is a partial update of a category budget. Nil fields
// are left unchanged.
type CategoryBudgetPatch struct {
	Assigned  *decimal.Decimal
	Available *decimal.Decimal
}

// UpdateCategoryBudget changes the assignment of a category for a month.
//
// Raising the assigned amount moves money from the month's balance into the
// category. The move is rejected with ErrInsufficientBudget when the month
// does not hold enough unassigned money, before anything is written.
func (l *Ledger) UpdateCategoryBudget(ctx context.Context, userID, id uuid.UUID, patch CategoryBudgetPatch) (models.CategoryBudget, error) {
	var categoryBudget models.CategoryBudget

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		categoryBudget, err = l.categoryBudgetForUser(tx, userID, id)
		if err != nil {
			return err
		}

		var monthlyBudget models.MonthlyBudget
		err = tx.First(&monthlyBudget, "id = ?", categoryBudget.MonthlyBudgetID).Error
		if err != nil {
			return err
		}

		if patch.Assigned != nil {
			difference := patch.Assigned.Sub(categoryBudget.Assigned)
			if monthlyBudget.TotalBalance.Sub(difference).IsNegative() {
				return models.ErrInsufficientBudget
			}

			monthlyBudget.TotalBalance = monthlyBudget.TotalBalance.Sub(difference)
			categoryBudget.Assigned = *patch.Assigned
			categoryBudget.Available = categoryBudget.Available.Add(difference)
		}

		if patch.Available != nil {
			categoryBudget.Available = *patch.Available
		}

		err = tx.Save(&categoryBudget).Error
		if err != nil {
			return err
		}

		return l.recomputeMonthlyTotals(tx, &monthlyBudget)
	})

	return categoryBudget, err
}
