package ledger_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateAccountOpeningBalance() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.MonthOf(time.Now().UTC()), decimal.NewFromInt(100000))

	account, err := suite.ledger.CreateAccount(context.Background(), user.ID, ledger.AccountIntent{
		BudgetID: budget.ID,
		Name:     "Checking",
		Type:     models.AccountTypeCash,
		Balance:  decimal.NewFromInt(500000),
	})
	suite.Require().NoError(err)

	suite.Assert().True(account.Balance.Equal(decimal.NewFromInt(500000)), "balance is %s", account.Balance)

	// The opening balance is recorded as a transaction without changing the
	// balance again.
	var transaction models.Transaction
	suite.Require().NoError(models.DB.First(&transaction, "account_id = ?", account.ID).Error)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromInt(500000)), "amount is %s", transaction.Amount)
	suite.Assert().Equal("Opening balance", transaction.Memo)

	account = suite.reloadAccount(account)
	suite.Assert().True(account.Balance.Equal(decimal.NewFromInt(500000)), "balance is %s", account.Balance)

	// New cash money becomes budgetable in the current month.
	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(600000)), "total balance is %s", monthlyBudget.TotalBalance)
}

func (suite *TestSuiteStandard) TestCreateLoanAccountDoesNotTouchPool() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.MonthOf(time.Now().UTC()), decimal.NewFromInt(100000))

	_, err := suite.ledger.CreateAccount(context.Background(), user.ID, ledger.AccountIntent{
		BudgetID:              budget.ID,
		Name:                  "Bank Loan",
		Type:                  models.AccountTypeLoan,
		Balance:               decimal.NewFromInt(1000000),
		Interest:              decimal.NewFromInt(2),
		MinimumPaymentMonthly: decimal.NewFromInt(100000),
	})
	suite.Require().NoError(err)

	// Debt is not budgetable money.
	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(100000)), "total balance is %s", monthlyBudget.TotalBalance)
}

func (suite *TestSuiteStandard) TestUpdateAccountBalanceAdjustment() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	monthlyBudget := suite.createTestMonthlyBudget(budget, types.MonthOf(time.Now().UTC()), decimal.Zero)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash, Balance: decimal.NewFromInt(100000)})

	balance := decimal.NewFromInt(80000)
	updated, err := suite.ledger.UpdateAccount(context.Background(), user.ID, account.ID, ledger.AccountPatch{Balance: &balance})
	suite.Require().NoError(err)

	suite.Assert().True(updated.Balance.Equal(balance), "balance is %s", updated.Balance)

	// The difference is booked as an adjustment transaction.
	var transaction models.Transaction
	suite.Require().NoError(models.DB.First(&transaction, "account_id = ?", account.ID).Error)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromInt(-20000)), "amount is %s", transaction.Amount)
	suite.Assert().Equal(models.TransactionTypeExpense, transaction.Type)
	suite.Assert().Equal("Balance adjustment", transaction.Memo)

	monthlyBudget = suite.reloadMonthlyBudget(monthlyBudget)
	suite.Assert().True(monthlyBudget.TotalBalance.Equal(decimal.NewFromInt(-20000)), "total balance is %s", monthlyBudget.TotalBalance)
}

func (suite *TestSuiteStandard) TestUpdateAccountName() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash})

	name := "Cash"
	updated, err := suite.ledger.UpdateAccount(context.Background(), user.ID, account.ID, ledger.AccountPatch{Name: &name})
	suite.Require().NoError(err)
	suite.Assert().Equal("Cash", updated.Name)

	// No adjustment transaction without a balance change.
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestDeleteAccount() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash})

	suite.Require().NoError(suite.ledger.DeleteAccount(context.Background(), user.ID, account.ID))

	err := models.DB.First(&models.Account{}, "id = ?", account.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAccountWithTransactions() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash, Balance: decimal.NewFromInt(100000)})

	_, err := suite.ledger.CreateTransaction(context.Background(), user.ID, ledger.TransactionIntent{
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(100),
		AccountID: account.ID,
		Date:      date(2026, 2, 6),
	})
	suite.Require().NoError(err)

	err = suite.ledger.DeleteAccount(context.Background(), user.ID, account.ID)
	suite.Assert().ErrorIs(err, models.ErrAccountHasTransactions)
}

func (suite *TestSuiteStandard) TestLoanProjection() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	loan := suite.createTestAccount(models.Account{
		BudgetID:              budget.ID,
		Name:                  "Bank Loan",
		Type:                  models.AccountTypeLoan,
		Balance:               decimal.NewFromInt(1000000),
		Interest:              decimal.NewFromInt(2),
		MinimumPaymentMonthly: decimal.NewFromInt(100000),
	})

	entries, err := suite.ledger.LoanProjection(context.Background(), user.ID, loan.ID)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(entries)

	// First month: a full month of interest accrues, the rest of the
	// payment pays the balance down.
	suite.Assert().True(entries[0].Payment.Equal(decimal.NewFromInt(100000)), "payment is %s", entries[0].Payment)
	suite.Assert().True(entries[0].Interest.Equal(decimal.NewFromInt(20000)), "interest is %s", entries[0].Interest)
	suite.Assert().True(entries[0].Principal.Equal(decimal.NewFromInt(80000)), "principal is %s", entries[0].Principal)
	suite.Assert().True(entries[0].Balance.Equal(decimal.NewFromInt(920000)), "balance is %s", entries[0].Balance)

	// The projection ends when the loan is paid off.
	last := entries[len(entries)-1]
	suite.Assert().True(last.Balance.IsZero(), "last balance is %s", last.Balance)
	suite.Assert().LessOrEqual(len(entries), 24)

	balance := decimal.NewFromInt(1000000)
	for _, entry := range entries {
		balance = balance.Sub(entry.Principal)
		suite.Assert().True(entry.Balance.Equal(balance), "balance does not chain for month %s", entry.Month)
		suite.Assert().True(entry.Payment.Equal(entry.Principal.Add(entry.Interest)), "payment does not split for month %s", entry.Month)
	}
}

func (suite *TestSuiteStandard) TestLoanProjectionDefaultMinimum() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	loan := suite.createTestAccount(models.Account{
		BudgetID: budget.ID,
		Name:     "Bank Loan",
		Type:     models.AccountTypeLoan,
		Balance:  decimal.NewFromInt(1000000),
		Interest: decimal.NewFromInt(2),
	})

	// Without a configured minimum, five percent of the balance is paid
	// down each month.
	entries, err := suite.ledger.LoanProjection(context.Background(), user.ID, loan.ID)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(entries)
	suite.Assert().True(entries[0].Principal.Equal(decimal.NewFromInt(50000)), "principal is %s", entries[0].Principal)
	suite.Assert().True(entries[0].Interest.Equal(decimal.NewFromInt(20000)), "interest is %s", entries[0].Interest)
}

func (suite *TestSuiteStandard) TestLoanProjectionErrors() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)
	cash := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Wallet", Type: models.AccountTypeCash})

	_, err := suite.ledger.LoanProjection(context.Background(), user.ID, cash.ID)
	suite.Assert().ErrorIs(err, models.ErrLoanAccountRequired)

	// A paid off loan has nothing to project.
	loan := suite.createTestAccount(models.Account{BudgetID: budget.ID, Name: "Bank Loan", Type: models.AccountTypeLoan})
	entries, err := suite.ledger.LoanProjection(context.Background(), user.ID, loan.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(entries)
}

func (suite *TestSuiteStandard) TestCreateAccountForOtherUser() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user)

	other := models.User{Email: "other@example.com"}
	suite.Require().NoError(models.DB.Create(&other).Error)

	_, err := suite.ledger.CreateAccount(context.Background(), other.ID, ledger.AccountIntent{
		BudgetID: budget.ID,
		Name:     "Sneaky",
		Type:     models.AccountTypeCash,
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
