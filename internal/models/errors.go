package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrNotAuthorized    = errors.New("you are not allowed to access this resource")
)

// Ledger errors. These are the failures the balance mutation logic can
// surface; all of them are detected before anything is persisted.
var (
	ErrInsufficientFunds      = errors.New("the account balance is not sufficient for this transaction")
	ErrInsufficientBudget     = errors.New("the budget balance of this month is not sufficient for this assignment")
	ErrDuplicateMonth         = errors.New("a monthly budget for this month already exists")
	ErrAccountHasTransactions = errors.New("the account still has transactions and cannot be deleted")
	ErrAccountBudgetMismatch  = errors.New("both accounts must belong to the same budget")
	ErrLoanAccountRequired    = errors.New("this operation requires a loan account")
)

var (
	ErrAccountNameNotUnique       = errors.New("the account name must be unique for the budget")
	ErrAccountTypeInvalid         = errors.New("the account type must be cash or loan")
	ErrCategoryBudgetNotUnique    = errors.New("the category already has a budget for this month")
	ErrUserEmailNotUnique         = errors.New("a user with this email address already exists")
	ErrTransactionAmountNotSet    = errors.New("the transaction amount must be set and not be zero")
	ErrTransactionTypeInvalid     = errors.New("the transaction type must be expense or income")
	ErrTransactionAmountSign      = errors.New("the sign of the transaction amount does not match its type")
	ErrTransactionSameAccount     = errors.New("the counterpart account must be different from the account")
	ErrCounterpartAccountRequired = errors.New("loan transfer transactions need a counterpart account")
)
