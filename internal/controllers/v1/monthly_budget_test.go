package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/kantongku/backend/internal/controllers/v1"
	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
	"github.com/kantongku/backend/test"
)

// categoryBudgetFor reads the category budget row of a category through the
// list endpoint. The test setups only ever create one month per category.
func (suite *TestSuiteStandard) categoryBudgetFor(categoryID uuid.UUID) models.CategoryBudget {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/category-budgets?category=%s", categoryID), nil, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryBudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	return response.Data[0]
}

func (suite *TestSuiteStandard) TestMonthlyBudgetRollover() {
	budget := suite.createTestBudget("Household")
	account := suite.createTestAccount(v1.AccountEditable{BudgetID: budget.ID, Name: "Checking", Balance: decimal.NewFromInt(500000)})
	category := suite.createTestCategory(budget.ID, "Groceries")

	// Assign money to the category, then spend part of it
	categoryBudget := suite.categoryBudgetFor(category.ID)
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/category-budgets/%s", categoryBudget.ID), map[string]any{"assigned": 200000}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(140000),
		AccountID:  account.ID,
		CategoryID: &category.ID,
		Date:       time.Now().UTC(),
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	currentMonth := types.MonthOf(time.Now().UTC())
	nextMonth := currentMonth.AddDate(0, 1)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/monthly-budgets", v1.MonthlyBudgetEditable{
		BudgetID:       budget.ID,
		Month:          nextMonth,
		ReferenceMonth: currentMonth,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MonthlyBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	created := response.Data

	// Unassigned money and the unspent amount of the category carry over,
	// assignments and activity start fresh
	suite.Assert().True(created.Month.Equal(nextMonth))
	suite.Assert().True(created.TotalBalance.Equal(decimal.NewFromInt(300000)), "total balance is %s", created.TotalBalance)
	suite.Assert().True(created.TotalAssigned.IsZero())
	suite.Assert().True(created.TotalActivity.IsZero())
	suite.Assert().True(created.TotalAvailable.Equal(decimal.NewFromInt(60000)), "total available is %s", created.TotalAvailable)

	suite.Require().Len(created.CategoryBudgets, 1)
	suite.Assert().Equal(category.ID, created.CategoryBudgets[0].CategoryID)
	suite.Assert().True(created.CategoryBudgets[0].Assigned.IsZero())
	suite.Assert().True(created.CategoryBudgets[0].Activity.IsZero())
	suite.Assert().True(created.CategoryBudgets[0].Available.Equal(decimal.NewFromInt(60000)))
}

func (suite *TestSuiteStandard) TestMonthlyBudgetWithoutReference() {
	budget := suite.createTestBudget("Household")
	category := suite.createTestCategory(budget.ID, "Groceries")

	nextMonth := types.MonthOf(time.Now().UTC()).AddDate(0, 1)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/monthly-budgets", v1.MonthlyBudgetEditable{
		BudgetID: budget.ID,
		Month:    nextMonth,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MonthlyBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The month starts empty with a zeroed row for every category
	suite.Assert().True(response.Data.TotalBalance.IsZero())
	suite.Require().Len(response.Data.CategoryBudgets, 1)
	suite.Assert().Equal(category.ID, response.Data.CategoryBudgets[0].CategoryID)
	suite.Assert().True(response.Data.CategoryBudgets[0].Available.IsZero())
}

func (suite *TestSuiteStandard) TestMonthlyBudgetDuplicateMonth() {
	budget := suite.createTestBudget("Household")

	// The current month is bootstrapped with the budget
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/monthly-budgets", v1.MonthlyBudgetEditable{
		BudgetID: budget.ID,
		Month:    types.MonthOf(time.Now().UTC()),
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.MonthlyBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrDuplicateMonth.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetMissingReferenceMonth() {
	budget := suite.createTestBudget("Household")

	currentMonth := types.MonthOf(time.Now().UTC())

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/monthly-budgets", v1.MonthlyBudgetEditable{
		BudgetID:       budget.ID,
		Month:          currentMonth.AddDate(0, 2),
		ReferenceMonth: currentMonth.AddDate(0, 1),
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetListMonthFilter() {
	budget := suite.createTestBudget("Household")

	currentMonth := types.MonthOf(time.Now().UTC())

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/monthly-budgets", v1.MonthlyBudgetEditable{
		BudgetID:       budget.ID,
		Month:          currentMonth.AddDate(0, 1),
		ReferenceMonth: currentMonth,
	}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/monthly-budgets?budget=%s", budget.ID), nil, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.MonthlyBudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/monthly-budgets?month=%s", currentMonth), nil, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().True(list.Data[0].Month.Equal(currentMonth))
}

func (suite *TestSuiteStandard) TestCategoryBudgetInsufficientBudget() {
	budget := suite.createTestBudget("Household")
	category := suite.createTestCategory(budget.ID, "Groceries")

	// No money was paid in, so nothing can be assigned
	categoryBudget := suite.categoryBudgetFor(category.ID)
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/category-budgets/%s", categoryBudget.ID), map[string]any{"assigned": 100000}, suite.authHeaders())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CategoryBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrInsufficientBudget.Error(), *response.Error)
}
