package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// TransactionEditable represents all user configurable parameters.
//
// AccountID always names the account the user acted on. Booking against a
// loan counterpart stores the row on the loan account, see the ledger.
type TransactionEditable struct {
	Type   models.TransactionType `json:"type" example:"expense"`                   // Direction of the transaction, "expense" or "income"
	Amount decimal.Decimal        `json:"amount" example:"140000" minimum:"0.0001"` // Unsigned amount of the transaction

	AccountID            uuid.UUID  `json:"accountId" example:"7e65cbca-db30-4ba3-a10e-7fbc46b8cf34"`            // ID of the account the transaction was made with
	CounterpartAccountID *uuid.UUID `json:"counterpartAccountId" example:"1982ee8c-c704-4b4e-973f-2b7f0e4a60cf"` // ID of the counterpart account, set for loan payments and draws
	CategoryID           *uuid.UUID `json:"categoryId" example:"af072c06-0247-4a4c-a63d-3f88a69fa50c"`           // ID of the category

	Payee string    `json:"payee" example:"Warung Bu Sari" default:""`     // The payee
	Memo  string    `json:"memo" example:"Lunch with the team" default:""` // A memo
	Date  time.Time `json:"date" example:"2026-02-06T00:00:00Z"`           // Date of the transaction
}

func (editable TransactionEditable) intent() ledger.TransactionIntent {
	return ledger.TransactionIntent{
		Type:                 editable.Type,
		Amount:               editable.Amount,
		AccountID:            editable.AccountID,
		CounterpartAccountID: editable.CounterpartAccountID,
		CategoryID:           editable.CategoryID,
		Payee:                editable.Payee,
		Memo:                 editable.Memo,
		Date:                 editable.Date,
	}
}

// newTransactionEditable reconstructs the editable representation from a
// stored row. Loan transfer rows store the loan in AccountID and the cash
// account in CounterpartAccountID, the reverse of the request payload.
func newTransactionEditable(model models.Transaction) TransactionEditable {
	editable := TransactionEditable{
		Type:                 model.Type,
		Amount:               model.Amount.Abs(),
		AccountID:            model.AccountID,
		CounterpartAccountID: model.CounterpartAccountID,
		CategoryID:           model.CategoryID,
		Payee:                model.Payee,
		Memo:                 model.Memo,
		Date:                 model.Date,
	}

	if model.Kind == models.TransactionKindLoanTransfer && model.CounterpartAccountID != nil {
		loanID := model.AccountID
		editable.AccountID = *model.CounterpartAccountID
		editable.CounterpartAccountID = &loanID
	}

	return editable
}

type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`                                                          // List of transactions
	Error      *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination          `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                          // Data for the transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	BudgetID   kt_uuid.UUID           `form:"budget"`                      // By ID of the budget
	AccountID  kt_uuid.UUID           `form:"account" filterField:"false"` // By account, as ledger account or counterpart
	CategoryID kt_uuid.UUID           `form:"category"`                    // By ID of the category
	Type       models.TransactionType `form:"type"`                        // By type, "expense" or "income"
	Offset     uint                   `form:"offset" filterField:"false"`  // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`   // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// If the category is not set, use an actual nil, not uuid.Nil
	var categoryID *uuid.UUID
	if f.CategoryID != kt_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	return models.Transaction{
		BudgetID:   f.BudgetID.UUID,
		CategoryID: categoryID,
		Type:       f.Type,
	}
}
