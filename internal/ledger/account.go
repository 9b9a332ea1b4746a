package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// AccountIntent is the payload for creating an account. Balance is the
// opening balance.
type AccountIntent struct {
	BudgetID              uuid.UUID
	Name                  string
	Type                  models.AccountType
	Balance               decimal.Decimal
	Interest              decimal.Decimal
	MinimumPaymentMonthly decimal.Decimal
}

// AccountPatch is a partial update of an account. Nil fields are left
// unchanged. A changed balance is booked as an adjustment transaction.
type AccountPatch struct {
	Name                  *string
	Balance               *decimal.Decimal
	Interest              *decimal.Decimal
	MinimumPaymentMonthly *decimal.Decimal
}

// CreateAccount creates an account. A non-zero opening balance is recorded
// as a transaction for the audit trail and, for cash accounts, added to the
// budgetable balance of the current month.
func (l *Ledger) CreateAccount(ctx context.Context, userID uuid.UUID, intent AccountIntent) (models.Account, error) {
	var account models.Account

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		budget, err := l.budgetForUser(tx, userID, intent.BudgetID)
		if err != nil {
			return err
		}

		account = models.Account{
			BudgetID:              budget.ID,
			Name:                  intent.Name,
			Type:                  intent.Type,
			Balance:               intent.Balance,
			Interest:              intent.Interest,
			MinimumPaymentMonthly: intent.MinimumPaymentMonthly,
		}
		err = tx.Create(&account).Error
		if err != nil {
			return err
		}

		if !intent.Balance.IsZero() {
			// The balance is already set on the account, so the row is
			// written directly instead of going through CreateTransaction.
			err = tx.Create(&models.Transaction{
				BudgetID:  budget.ID,
				AccountID: account.ID,
				Type:      typeForSign(intent.Balance),
				Kind:      models.TransactionKindPlain,
				Date:      time.Now().UTC(),
				Amount:    intent.Balance,
				Memo:      "Opening balance",
			}).Error
			if err != nil {
				return err
			}
		}

		if account.Type == models.AccountTypeCash {
			return l.syncBudgetPool(tx, budget.ID, intent.Balance)
		}

		return nil
	})

	return account, err
}

// UpdateAccount applies a patch to an account. A balance change creates an
// adjustment transaction over the difference and, for cash accounts, moves
// the difference in or out of the current month's budgetable balance.
func (l *Ledger) UpdateAccount(ctx context.Context, userID, id uuid.UUID, patch AccountPatch) (models.Account, error) {
	var account models.Account

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = l.accountForUser(tx, userID, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			account.Name = *patch.Name
		}
		if patch.Interest != nil {
			account.Interest = *patch.Interest
		}
		if patch.MinimumPaymentMonthly != nil {
			account.MinimumPaymentMonthly = *patch.MinimumPaymentMonthly
		}

		if patch.Balance != nil && !patch.Balance.Equal(account.Balance) {
			difference := patch.Balance.Sub(account.Balance)

			err = tx.Create(&models.Transaction{
				BudgetID:  account.BudgetID,
				AccountID: account.ID,
				Type:      typeForSign(difference),
				Kind:      models.TransactionKindPlain,
				Date:      time.Now().UTC(),
				Amount:    difference,
				Memo:      "Balance adjustment",
			}).Error
			if err != nil {
				return err
			}

			account.Balance = *patch.Balance

			if account.Type == models.AccountTypeCash {
				err = l.syncBudgetPool(tx, account.BudgetID, difference)
				if err != nil {
					return err
				}
			}
		}

		return tx.Save(&account).Error
	})

	return account, err
}

// DeleteAccount deletes an account. Accounts that transactions are booked
// against are refused, deleting them would break the ledger's balance
// reconstruction.
func (l *Ledger) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := l.accountForUser(tx, userID, id)
		if err != nil {
			return err
		}

		var count int64
		err = tx.Model(&models.Transaction{}).
			Where("account_id = ? OR counterpart_account_id = ?", account.ID, account.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrAccountHasTransactions
		}

		return tx.Delete(&account).Error
	})
}

// ProjectionEntry is one month of a loan payoff projection.
type ProjectionEntry struct {
	Month     types.Month     `json:"month" example:"2026-09"`
	Payment   decimal.Decimal `json:"payment" example:"100000"`
	Principal decimal.Decimal `json:"principal" example:"90000"`
	Interest  decimal.Decimal `json:"interest" example:"10000"`
	Balance   decimal.Decimal `json:"balance" example:"910000"`
}

// LoanProjection simulates monthly payments against the loan for up to 24
// months and returns one entry per simulated month, ending early at payoff.
//
// Each month accrues a full month of interest. The payment is the configured
// monthly minimum, but at least the interest plus five percent of the
// balance so the projection always makes principal progress. Without a
// configured minimum, five percent of the balance is assumed.
func (l *Ledger) LoanProjection(ctx context.Context, userID, id uuid.UUID) ([]ProjectionEntry, error) {
	account, err := l.accountForUser(l.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}
	if !account.IsLoan() {
		return nil, models.ErrLoanAccountRequired
	}

	entries := []ProjectionEntry{}
	balance := account.Balance
	month := types.MonthOf(time.Now().UTC()).AddDate(0, 1)

	for i := 0; i < 24 && balance.IsPositive(); i++ {
		interest := balance.Mul(account.Interest).Div(hundred)

		minimum := account.MinimumPaymentMonthly
		if !minimum.IsPositive() {
			minimum = balance.Mul(principalFloorShare)
		}

		payment := interest.Add(balance.Mul(principalFloorShare))
		if minimum.GreaterThan(payment) {
			payment = minimum
		}

		principal := payment.Sub(interest)
		if principal.GreaterThan(balance) {
			principal = balance
			payment = principal.Add(interest)
		}

		balance = balance.Sub(principal)
		entries = append(entries, ProjectionEntry{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})

		month = month.AddDate(0, 1)
	}

	return entries, nil
}

// syncBudgetPool keeps the budgetable balance of the current month in step
// with explicit cash balance changes. Without a monthly budget for the
// current month there is nothing to keep in step.
func (l *Ledger) syncBudgetPool(tx *gorm.DB, budgetID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	var monthlyBudget models.MonthlyBudget
	err := tx.First(&monthlyBudget, "budget_id = ? AND month = ?", budgetID, types.MonthOf(time.Now().UTC())).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		return err
	}

	monthlyBudget.TotalBalance = monthlyBudget.TotalBalance.Add(delta)
	return tx.Save(&monthlyBudget).Error
}

func typeForSign(amount decimal.Decimal) models.TransactionType {
	if amount.IsNegative() {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}
