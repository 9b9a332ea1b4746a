package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

func (suite *TestSuiteStandard) TestUpdateCategoryBudgetAssign() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.NewFromInt(300000))
	categoryBudget := suite.createTestCategoryBudget(monthlyBudget, category, decimal.Zero, decimal.Zero)

	assigned := decimal.NewFromInt(200000)
	updated, err := suite.ledger.UpdateCategoryBudget(context.Background(), user.ID, categoryBudget.ID, ledger.CategoryBudgetPatch{Assigned: &assigned})
	suite.Require().NoError(err)

	// Assigning moves money from the month's balance into the category.
	suite.Assert().True(updated.Assigned.Equal(assigned), "assigned is %s", updated.Assigned)
	suite.Assert().True(updated.Available.Equal(assigned), "available is %s", updated.Available)

	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(100000)), "total balance is %s", monthlyBudget.TotalBalance)
	suite.Assert().True(monthlyBudget.TotalAssigned.Equal(assigned), "total assigned is %s", monthlyBudget.TotalAssigned)
	suite.Assert().True(monthlyBudget.TotalAvailable.Equal(assigned), "total available is %s", monthlyBudget.TotalAvailable)
}

func (suite *TestSuiteStandard) TestUpdateCategoryBudgetUnassign() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)
	categoryBudget := suite.createTestCategoryBudget(monthlyBudget, category, decimal.NewFromInt(200000), decimal.NewFromInt(200000))

	// Lowering the assignment puts the difference back into the balance.
	assigned := decimal.NewFromInt(50000)
	_, err := suite.ledger.UpdateCategoryBudget(context.Background(), user.ID, categoryBudget.ID, ledger.CategoryBudgetPatch{Assigned: &assigned})
	suite.Require().NoError(err)

	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(150000)), "total balance is %s", monthlyBudget.TotalBalance)
}

func (suite *TestSuiteStandard) TestUpdateCategoryBudgetInsufficientBudget() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.NewFromInt(100000))
	categoryBudget := suite.createTestCategoryBudget(monthlyBudget, category, decimal.Zero, decimal.Zero)

	assigned := decimal.NewFromInt(100001)
	_, err := suite.ledger.UpdateCategoryBudget(context.Background(), user.ID, categoryBudget.ID, ledger.CategoryBudgetPatch{Assigned: &assigned})
	suite.Assert().ErrorIs(err, models.ErrInsufficientBudget)

	// The failed assignment must not leave any trace.
	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(100000)), "total balance is %s", monthlyBudget.TotalBalance)

	categoryBudget = suite.reloadCategoryBudget(categoryBudget)
	suite.Assert().True(categoryBudget.Assigned.IsZero(), "assigned is %s", categoryBudget.Assigned)
}

func (suite *TestSuiteStandard) TestUpdateCategoryBudgetAvailable() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)
	categoryBudget := suite.createTestCategoryBudget(monthlyBudget, category, decimal.Zero, decimal.NewFromInt(5000))

	available := decimal.NewFromInt(7500)
	updated, err := suite.ledger.UpdateCategoryBudget(context.Background(), user.ID, categoryBudget.ID, ledger.CategoryBudgetPatch{Available: &available})
	suite.Require().NoError(err)

	suite.Assert().True(updated.Available.Equal(available), "available is %s", updated.Available)

	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalAvailable.Equal(available), "total available is %s", monthlyBudget.TotalAvailable)
}

func (suite *TestSuiteStandard) TestUpdateCategoryBudgetOfOtherUser() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)
	categoryBudget := suite.createTestCategoryBudget(monthlyBudget, category, decimal.Zero, decimal.Zero)

	other := models.User{Email: "other@example.com"}
	suite.Require().NoError(models.DB.Create(&other).Error)

	assigned := decimal.NewFromInt(100)
	_, err := suite.ledger.UpdateCategoryBudget(context.Background(), other.ID, categoryBudget.ID, ledger.CategoryBudgetPatch{Assigned: &assigned})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
