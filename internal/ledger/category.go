package ledger

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
)

// CreateCategory creates a category and seeds a zeroed category budget for
// every month the budget already tracks, so the category can receive
// assignments and activity right away.
func (l *Ledger) CreateCategory(ctx context.Context, userID, groupID uuid.UUID, name string) (models.Category, error) {
	var category models.Category

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := l.categoryGroupForUser(tx, userID, groupID)
		if err != nil {
			return err
		}

		category = models.Category{CategoryGroupID: group.ID, Name: name}
		err = tx.Create(&category).Error
		if err != nil {
			return err
		}

		var monthlyBudgets []models.MonthlyBudget
		err = tx.Where("budget_id = ?", group.BudgetID).Find(&monthlyBudgets).Error
		if err != nil {
			return err
		}

		for _, monthlyBudget := range monthlyBudgets {
			categoryBudget := models.CategoryBudget{
				MonthlyBudgetID: monthlyBudget.ID,
				CategoryID:      category.ID,
			}
			err = tx.Create(&categoryBudget).Error
			if err != nil {
				return err
			}
		}

		return nil
	})

	return category, err
}

// DeleteCategory deletes a category after restoring every amount assigned to
// it back into the balance of the owning month. Transactions keep their rows
// and lose the category reference.
func (l *Ledger) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := l.categoryForUser(tx, userID, id)
		if err != nil {
			return err
		}

		return l.deleteCategory(tx, category)
	})
}

// DeleteCategoryGroup deletes a group and all of its categories with the
// same restoration semantics as DeleteCategory.
func (l *Ledger) DeleteCategoryGroup(ctx context.Context, userID, id uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := l.categoryGroupForUser(tx, userID, id)
		if err != nil {
			return err
		}

		var categories []models.Category
		err = tx.Where("category_group_id = ?", group.ID).Find(&categories).Error
		if err != nil {
			return err
		}

		for _, category := range categories {
			err = l.deleteCategory(tx, category)
			if err != nil {
				return err
			}
		}

		return tx.Delete(&group).Error
	})
}

func (l *Ledger) deleteCategory(tx *gorm.DB, category models.Category) error {
	var categoryBudgets []models.CategoryBudget
	err := tx.Where("category_id = ?", category.ID).Find(&categoryBudgets).Error
	if err != nil {
		return err
	}

	for _, categoryBudget := range categoryBudgets {
		var monthlyBudget models.MonthlyBudget
		err = tx.First(&monthlyBudget, "id = ?", categoryBudget.MonthlyBudgetID).Error
		if err != nil {
			return err
		}

		// Assigned money flows back into the month's balance before the
		// row disappears.
		monthlyBudget.TotalBalance = monthlyBudget.TotalBalance.Add(categoryBudget.Assigned)
		err = tx.Save(&monthlyBudget).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&categoryBudget).Error
		if err != nil {
			return err
		}

		err = l.recomputeMonthlyTotals(tx, &monthlyBudget)
		if err != nil {
			return err
		}
	}

	err = tx.Model(&models.Transaction{}).Where("category_id = ?", category.ID).Update("category_id", nil).Error
	if err != nil {
		return err
	}

	return tx.Delete(&category).Error
}
