// Package ledger implements the balance mutation rules of the budgeting
// engine.
//
// Every mutation runs in a single database transaction. Balances are always
// re-read inside that transaction before a delta is computed, so the stored
// account balances stay equal to the sum of the effective amounts of all
// transactions booked against them.
package ledger

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// The *ForUser helpers load a resource and verify in the same query that it
// transitively belongs to the user. A resource of another user is
// indistinguishable from a missing one.

func (l *Ledger) budgetForUser(db *gorm.DB, userID, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := db.First(&budget, "id = ? AND user_id = ?", id, userID).Error
	return budget, err
}

func (l *Ledger) accountForUser(db *gorm.DB, userID, id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := db.
		Joins("JOIN budgets ON budgets.id = accounts.budget_id").
		First(&account, "accounts.id = ? AND budgets.user_id = ?", id, userID).Error
	return account, err
}

func (l *Ledger) categoryGroupForUser(db *gorm.DB, userID, id uuid.UUID) (models.CategoryGroup, error) {
	var group models.CategoryGroup
	err := db.
		Joins("JOIN budgets ON budgets.id = category_groups.budget_id").
		First(&group, "category_groups.id = ? AND budgets.user_id = ?", id, userID).Error
	return group, err
}

func (l *Ledger) categoryForUser(db *gorm.DB, userID, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := db.
		Joins("JOIN category_groups ON category_groups.id = categories.category_group_id").
		Joins("JOIN budgets ON budgets.id = category_groups.budget_id").
		First(&category, "categories.id = ? AND budgets.user_id = ?", id, userID).Error
	return category, err
}

func (l *Ledger) monthlyBudgetForUser(db *gorm.DB, userID, id uuid.UUID) (models.MonthlyBudget, error) {
	var monthlyBudget models.MonthlyBudget
	err := db.
		Joins("JOIN budgets ON budgets.id = monthly_budgets.budget_id").
		First(&monthlyBudget, "monthly_budgets.id = ? AND budgets.user_id = ?", id, userID).Error
	return monthlyBudget, err
}

func (l *Ledger) categoryBudgetForUser(db *gorm.DB, userID, id uuid.UUID) (models.CategoryBudget, error) {
	var categoryBudget models.CategoryBudget
	err := db.
		Joins("JOIN monthly_budgets ON monthly_budgets.id = category_budgets.monthly_budget_id").
		Joins("JOIN budgets ON budgets.id = monthly_budgets.budget_id").
		First(&categoryBudget, "category_budgets.id = ? AND budgets.user_id = ?", id, userID).Error
	return categoryBudget, err
}

func (l *Ledger) transactionForUser(db *gorm.DB, userID, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := db.
		Joins("JOIN budgets ON budgets.id = transactions.budget_id").
		First(&transaction, "transactions.id = ? AND budgets.user_id = ?", id, userID).Error
	return transaction, err
}
