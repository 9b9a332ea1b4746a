package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionKind distinguishes plain cash movements from loan transfers.
type TransactionKind string

const (
	TransactionKindPlain        TransactionKind = "plain"
	TransactionKindLoanTransfer TransactionKind = "loan_transfer"
)

// Transaction is a single ledger row.
//
// Amounts are stored signed: expenses are negative, income is positive. For a
// loan transfer the row is booked on the loan account with the cash account as
// counterpart, with the principal and interest portions stored separately.
type Transaction struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `json:"budgetId" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"`

	Account   Account   `json:"-"`
	AccountID uuid.UUID `json:"accountId" example:"7e65cbca-db30-4ba3-a10e-7fbc46b8cf34"`

	CounterpartAccount   *Account   `json:"-"`
	CounterpartAccountID *uuid.UUID `json:"counterpartAccountId" gorm:"check:account_counterpart_different,account_id != counterpart_account_id" example:"1982ee8c-c704-4b4e-973f-2b7f0e4a60cf"`

	Category   *Category  `json:"-"`
	CategoryID *uuid.UUID `json:"categoryId" example:"af072c06-0247-4a4c-a63d-3f88a69fa50c"`

	Type TransactionType `json:"type" example:"expense"`
	Kind TransactionKind `json:"kind" example:"plain"`

	Date time.Time `json:"date" example:"2026-02-06T00:00:00Z"`

	Amount    decimal.Decimal `json:"amount" gorm:"type:DECIMAL(19,4)" example:"-140000"`
	Principal decimal.Decimal `json:"principal" gorm:"type:DECIMAL(19,4)" example:"0"`
	Interest  decimal.Decimal `json:"interest" gorm:"type:DECIMAL(19,4)" example:"0"`

	Payee string `json:"payee" example:"Warung Bu Sari"`
	Memo  string `json:"memo" example:"Lunch with the team"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Payee = strings.TrimSpace(t.Payee)
	t.Memo = strings.TrimSpace(t.Memo)

	// The date is stored with second precision in UTC.
	t.Date = t.Date.UTC().Truncate(time.Second)

	if t.Kind == "" {
		t.Kind = TransactionKindPlain
	}

	switch t.Type {
	case TransactionTypeExpense, TransactionTypeIncome:
	default:
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsZero() {
		return ErrTransactionAmountNotSet
	}

	// The sign of the amount must agree with the type.
	if t.Type == TransactionTypeExpense && t.Amount.IsPositive() {
		return ErrTransactionAmountSign
	}
	if t.Type == TransactionTypeIncome && t.Amount.IsNegative() {
		return ErrTransactionAmountSign
	}

	if t.Kind == TransactionKindLoanTransfer && t.CounterpartAccountID == nil {
		return ErrCounterpartAccountRequired
	}

	return nil
}
