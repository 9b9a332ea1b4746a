package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// TransactionIntent is what a caller wants to book. The amount is unsigned,
// the type decides the sign of the persisted row.
//
// AccountID names the account the user acted on. When CounterpartAccountID
// names a loan account the booking becomes a loan transfer: the row is stored
// on the loan with AccountID as the cash counterpart. A counterpart that is
// not a loan demotes the booking to a plain transaction on AccountID.
type TransactionIntent struct {
	Type                 models.TransactionType
	Amount               decimal.Decimal
	AccountID            uuid.UUID
	CounterpartAccountID *uuid.UUID
	CategoryID           *uuid.UUID
	Payee                string
	Memo                 string
	Date                 time.Time
}

// CreateTransaction books a transaction and mutates all affected balances
// and aggregates in one atomic unit.
func (l *Ledger) CreateTransaction(ctx context.Context, userID uuid.UUID, intent TransactionIntent) (models.Transaction, error) {
	var transaction models.Transaction

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		transaction, err = l.applyIntent(tx, userID, intent, nil)
		return err
	})

	return transaction, err
}

// UpdateTransaction reverses the stored effect of the transaction and applies
// the new intent in its place, atomically. Account reassignments reverse
// against the old accounts and apply against the new ones.
func (l *Ledger) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, intent TransactionIntent) (models.Transaction, error) {
	var transaction models.Transaction

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := l.transactionForUser(tx, userID, id)
		if err != nil {
			return err
		}

		err = l.reverseTransaction(tx, existing)
		if err != nil {
			return err
		}

		transaction, err = l.applyIntent(tx, userID, intent, &existing)
		return err
	})

	return transaction, err
}

// DeleteTransaction removes a transaction and restores the balances and
// aggregates it touched to their values before the booking.
func (l *Ledger) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := l.transactionForUser(tx, userID, id)
		if err != nil {
			return err
		}

		err = l.reverseTransaction(tx, transaction)
		if err != nil {
			return err
		}

		return tx.Delete(&transaction).Error
	})
}

// applyIntent validates the intent, performs the balance writes and persists
// the row. With an existing row its identity is kept, otherwise a new row is
// created. The caller is responsible for reversing the existing row's effect
// beforehand.
func (l *Ledger) applyIntent(tx *gorm.DB, userID uuid.UUID, intent TransactionIntent, existing *models.Transaction) (models.Transaction, error) {
	switch intent.Type {
	case models.TransactionTypeExpense, models.TransactionTypeIncome:
	default:
		return models.Transaction{}, models.ErrTransactionTypeInvalid
	}

	amount := intent.Amount.Abs()
	if amount.IsZero() {
		return models.Transaction{}, models.ErrTransactionAmountNotSet
	}

	signed := amount
	if intent.Type == models.TransactionTypeExpense {
		signed = amount.Neg()
	}

	account, err := l.accountForUser(tx, userID, intent.AccountID)
	if err != nil {
		return models.Transaction{}, err
	}

	var loan *models.Account
	if intent.CounterpartAccountID != nil {
		counterpart, err := l.accountForUser(tx, userID, *intent.CounterpartAccountID)
		if err != nil {
			return models.Transaction{}, err
		}
		if counterpart.ID == account.ID {
			return models.Transaction{}, models.ErrTransactionSameAccount
		}
		if counterpart.BudgetID != account.BudgetID {
			return models.Transaction{}, models.ErrAccountBudgetMismatch
		}
		if counterpart.IsLoan() {
			loan = &counterpart
		}
	}

	transaction := models.Transaction{
		BudgetID:   account.BudgetID,
		CategoryID: intent.CategoryID,
		Type:       intent.Type,
		Date:       intent.Date,
		Amount:     signed,
		Payee:      intent.Payee,
		Memo:       intent.Memo,
	}

	if intent.CategoryID != nil {
		category, err := l.categoryForUser(tx, userID, *intent.CategoryID)
		if err != nil {
			return models.Transaction{}, err
		}

		var group models.CategoryGroup
		err = tx.First(&group, "id = ?", category.CategoryGroupID).Error
		if err != nil {
			return models.Transaction{}, err
		}
		if group.BudgetID != account.BudgetID {
			return models.Transaction{}, models.ErrNotAuthorized
		}
	}

	if loan == nil {
		transaction.Kind = models.TransactionKindPlain
		transaction.AccountID = account.ID

		// A cash account must never go negative through an expense.
		if intent.Type == models.TransactionTypeExpense && !account.IsLoan() && account.Balance.Add(signed).IsNegative() {
			return models.Transaction{}, models.ErrInsufficientFunds
		}

		account.Balance = account.Balance.Add(signed)
		err = tx.Save(&account).Error
		if err != nil {
			return models.Transaction{}, err
		}
	} else {
		// The row is booked on the loan with the cash account as the
		// counterpart.
		transaction.Kind = models.TransactionKindLoanTransfer
		transaction.AccountID = loan.ID
		transaction.CounterpartAccountID = &account.ID

		switch intent.Type {
		case models.TransactionTypeIncome:
			// Drawing the loan: debt and cash both grow.
			loan.Balance = loan.Balance.Add(amount)
			account.Balance = account.Balance.Add(amount)
		case models.TransactionTypeExpense:
			// Paying the loan down. The full payment leaves the cash
			// account, only the principal reduces the debt.
			if account.Balance.Sub(amount).IsNegative() {
				return models.Transaction{}, models.ErrInsufficientFunds
			}

			var excludeID uuid.UUID
			if existing != nil {
				excludeID = existing.ID
			}
			lastPayment, err := l.lastLoanPaymentDate(tx, loan.ID, excludeID)
			if err != nil {
				return models.Transaction{}, err
			}

			split := SplitLoanPayment(loan.Balance, loan.Interest, amount, intent.Date, lastPayment)
			loan.Balance = loan.Balance.Sub(split.Principal)
			account.Balance = account.Balance.Sub(amount)

			transaction.Principal = split.Principal
			transaction.Interest = split.Interest
			if split.Overpayment.IsPositive() {
				transaction.Memo = annotateOverpayment(transaction.Memo, split.Overpayment)
			}
		}

		err = tx.Save(loan).Error
		if err != nil {
			return models.Transaction{}, err
		}
		err = tx.Save(&account).Error
		if err != nil {
			return models.Transaction{}, err
		}
	}

	if existing == nil {
		err = tx.Create(&transaction).Error
	} else {
		transaction.DefaultModel = existing.DefaultModel
		err = tx.Save(&transaction).Error
	}
	if err != nil {
		return models.Transaction{}, err
	}

	if transaction.CategoryID != nil {
		err = l.applyActivity(tx, transaction.BudgetID, *transaction.CategoryID, types.MonthOf(transaction.Date), transaction.Amount)
		if err != nil {
			return models.Transaction{}, err
		}
	}

	return transaction, nil
}

// reverseTransaction undoes the balance and aggregate effects of a stored
// row. The principal and interest portions are stored on the row itself, so
// no recomputation is needed to restore a loan balance.
func (l *Ledger) reverseTransaction(tx *gorm.DB, transaction models.Transaction) error {
	switch transaction.Kind {
	case models.TransactionKindLoanTransfer:
		var loan, cash models.Account
		err := tx.First(&loan, "id = ?", transaction.AccountID).Error
		if err != nil {
			return err
		}
		err = tx.First(&cash, "id = ?", *transaction.CounterpartAccountID).Error
		if err != nil {
			return err
		}

		if transaction.Type == models.TransactionTypeExpense {
			// The amount is negative. Restore the principal on the loan and
			// the full payment on the cash account.
			loan.Balance = loan.Balance.Add(transaction.Principal)
			cash.Balance = cash.Balance.Sub(transaction.Amount)
		} else {
			loan.Balance = loan.Balance.Sub(transaction.Amount)
			cash.Balance = cash.Balance.Sub(transaction.Amount)
		}

		err = tx.Save(&loan).Error
		if err != nil {
			return err
		}
		err = tx.Save(&cash).Error
		if err != nil {
			return err
		}

	default:
		var account models.Account
		err := tx.First(&account, "id = ?", transaction.AccountID).Error
		if err != nil {
			return err
		}

		account.Balance = account.Balance.Sub(transaction.Amount)
		err = tx.Save(&account).Error
		if err != nil {
			return err
		}
	}

	if transaction.CategoryID != nil {
		return l.applyActivity(tx, transaction.BudgetID, *transaction.CategoryID, types.MonthOf(transaction.Date), transaction.Amount.Neg())
	}

	return nil
}

// lastLoanPaymentDate returns the date of the most recent payment booked
// against the loan, or nil if there is none. excludeID skips the row that is
// currently being rewritten.
func (l *Ledger) lastLoanPaymentDate(tx *gorm.DB, loanID, excludeID uuid.UUID) (*time.Time, error) {
	var transaction models.Transaction

	query := tx.Where("account_id = ? AND type = ?", loanID, models.TransactionTypeExpense)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	err := query.Order("date DESC").First(&transaction).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &transaction.Date, nil
}

func annotateOverpayment(memo string, overpayment decimal.Decimal) string {
	note := fmt.Sprintf("overpayment of %s", overpayment)
	if memo == "" {
		return note
	}
	return fmt.Sprintf("%s (%s)", memo, note)
}
