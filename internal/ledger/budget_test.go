package ledger_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateBudgetBootstrapsMonth() {
	user := suite.createTestUser()

	budget, err := suite.ledger.CreateBudget(context.Background(), user.ID, "Household", "Shared expenses")
	suite.Require().NoError(err)
	suite.Assert().Equal("Household", budget.Name)

	// The current month is budgetable right away.
	var monthlyBudget models.MonthlyBudget
	err = models.DB.First(&monthlyBudget, "budget_id = ? AND month = ?", budget.ID, types.MonthOf(time.Now().UTC())).Error
	suite.Require().NoError(err)
	suite.Assert().True(monthlyBudget.TotalBalance.IsZero())
}

func (suite *TestSuiteStandard) TestDeleteBudgetCascades() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash, Balance: decimal.NewFromInt(100000)})
	group := suite.createTestCategoryGroup(budget, "Daily Life")
	category := suite.createTestCategory(group, "Groceries")
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.NewMonth(2026, 2), decimal.Zero)
	suite.createTestCategoryBudget(monthlyBudget, category, decimal.Zero, decimal.Zero)

	_, err := suite.ledger.CreateTransaction(context.Background(), user.ID, ledger.TransactionIntent{
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(1000),
		AccountID:  account.ID,
		CategoryID: &category.ID,
		Date:       date(2026, 2, 6),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.DeleteBudget(context.Background(), user.ID, budget.ID))

	for name, model := range map[string]interface{}{
		"budgets":          &models.Budget{},
		"accounts":         &models.Account{},
		"category groups":  &models.CategoryGroup{},
		"categories":       &models.Category{},
		"monthly budgets":  &models.MonthlyBudget{},
		"category budgets": &models.CategoryBudget{},
		"transactions":     &models.Transaction{},
	} {
		var count int64
		suite.Require().NoError(models.DB.Model(model).Count(&count).Error)
		suite.Assert().Equal(int64(0), count, "%s are not deleted", name)
	}
}

func (suite *TestSuiteStandard) TestDeleteBudgetOfOtherUser() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)

	other := models.User{Email: "other@example.com"}
	suite.Require().NoError(models.DB.Create(&other).Error)

	err := suite.ledger.DeleteBudget(context.Background(), other.ID, budget.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
