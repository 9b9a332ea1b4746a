package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateCategorySeedsMonths() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	january := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 1), decimal.Zero)
	february := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)

	category, err := suite.ledger.CreateCategory(context.Background(), user.ID, group.ID, "Groceries")
	suite.Require().NoError(err)
	suite.Assert().Equal("Groceries", category.Name)

	// One zeroed category budget per existing month.
	for _, monthlyBudget := range []models.MonthlyBudget{january, february} {
		var categoryBudget models.CategoryBudget
		err := models.DB.First(&categoryBudget, "monthly_budget_id = ? AND category_id = ?", monthlyBudget.ID, category.ID).Error
		suite.Require().NoError(err)
		suite.Assert().True(categoryBudget.Assigned.IsZero())
		suite.Assert().True(categoryBudget.Available.IsZero())
	}
}

func (suite *TestSuiteStandard) TestDeleteCategoryRestoresAssigned() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash, Balance: decimal.NewFromInt(500000)})
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.NewFromInt(100000))
	suite.createTestCategoryBudget(monthlyBudget, category, decimal.NewFromInt(150000), decimal.NewFromInt(150000))

	transaction := models.Transaction{
		BudgetID:   budget.ID,
		AccountID:  account.ID,
		CategoryID: &category.ID,
		Type:       models.TransactionTypeExpense,
		Kind:       models.TransactionKindPlain,
		Amount:     decimal.NewFromInt(-20000),
		Date:       date(2026, 2, 6),
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	suite.Require().NoError(suite.ledger.DeleteCategory(context.Background(), user.ID, category.ID))

	// The assigned money flows back into the month's balance and the totals
	// no longer include the deleted row.
	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(250000)), "total balance is %s", monthlyBudget.TotalBalance)
	suite.Assert().True(monthlyBudget.TotalAssigned.IsZero(), "total assigned is %s", monthlyBudget.TotalAssigned)
	suite.Assert().True(monthlyBudget.TotalAvailable.IsZero(), "total available is %s", monthlyBudget.TotalAvailable)

	// Transactions keep their rows but lose the category reference.
	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", transaction.ID).Error)
	suite.Assert().Nil(reloaded.CategoryID)

	err := models.DB.First(&models.Category{}, "id = ?", category.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryGroup() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	groceries := suite.createTestCategory(group, "Groceries")
	transport := suite.createTestCategory(group, "Transport")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)
	suite.createTestCategoryBudget(monthlyBudget, groceries, decimal.NewFromInt(100000), decimal.NewFromInt(100000))
	suite.createTestCategoryBudget(monthlyBudget, transport, decimal.NewFromInt(50000), decimal.NewFromInt(50000))

	suite.Require().NoError(suite.ledger.DeleteCategoryGroup(context.Background(), user.ID, group.ID))

	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(150000)), "total balance is %s", monthlyBudget.TotalBalance)

	var categories int64
	suite.Require().NoError(models.DB.Model(&models.Category{}).Count(&categories).Error)
	suite.Assert().Equal(int64(0), categories)

	var categoryBudgets int64
	suite.Require().NoError(models.DB.Model(&models.CategoryBudget{}).Count(&categoryBudgets).Error)
	suite.Assert().Equal(int64(0), categoryBudgets)
}

func (suite *TestSuiteStandard) TestDeleteCategoryOfOtherUser() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")

	other := models.User{Email: "other@example.com"}
	suite.Require().NoError(models.DB.Create(&other).Error)

	err := suite.ledger.DeleteCategory(context.Background(), other.ID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
