package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType is the type of an account.
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeLoan AccountType = "loan"
)

// Account represents an account of a budget.
//
// A cash account holds money, a loan account holds outstanding debt. The
// balance of a loan account is the remaining principal, a positive number
// meaning money is owed.
type Account struct {
	DefaultModel
	Budget   Budget          `json:"-"`
	BudgetID uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:account_name_budget_id" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"`
	Name     string          `json:"name" gorm:"uniqueIndex:account_name_budget_id" example:"Checking"`
	Type     AccountType     `json:"type" example:"cash"`
	Balance  decimal.Decimal `json:"balance" gorm:"type:DECIMAL(19,4)" example:"500000"`

	// Loan account fields. Interest is the monthly interest rate in percent.
	Interest              decimal.Decimal `json:"interest" gorm:"type:DECIMAL(19,4)" example:"2"`
	MinimumPaymentMonthly decimal.Decimal `json:"minimumPaymentMonthly" gorm:"type:DECIMAL(19,4)" example:"100000"`
}

// BeforeSave validates the account type and trims whitespace.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if a.Type == "" {
		a.Type = AccountTypeCash
	}

	if a.Type != AccountTypeCash && a.Type != AccountTypeLoan {
		return ErrAccountTypeInvalid
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// IsLoan reports whether the account is a loan account.
func (a Account) IsLoan() bool {
	return a.Type == AccountTypeLoan
}

// Transactions returns all transactions the account is involved in, as
// ledger account or as counterpart.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(Transaction{AccountID: a.ID}).
		Or("counterpart_account_id = ?", a.ID).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
