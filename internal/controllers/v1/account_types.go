package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	BudgetID uuid.UUID          `json:"budgetId" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"` // ID of the budget the account belongs to
	Name     string             `json:"name" example:"Checking" default:""`                      // Name of the account
	Type     models.AccountType `json:"type" example:"cash" default:"cash"`                      // Type of the account, "cash" or "loan"
	Balance  decimal.Decimal    `json:"balance" example:"500000"`                                // Opening balance of the account

	Interest              decimal.Decimal `json:"interest" example:"2"`                   // Monthly interest rate in percent, loan accounts only
	MinimumPaymentMonthly decimal.Decimal `json:"minimumPaymentMonthly" example:"100000"` // Minimum monthly payment, loan accounts only
}

func (editable AccountEditable) intent() ledger.AccountIntent {
	return ledger.AccountIntent{
		BudgetID:              editable.BudgetID,
		Name:                  editable.Name,
		Type:                  editable.Type,
		Balance:               editable.Balance,
		Interest:              editable.Interest,
		MinimumPaymentMonthly: editable.MinimumPaymentMonthly,
	}
}

// AccountPatch is the payload for updating an account. Fields that are not
// set are left unchanged. A changed balance is recorded as an adjustment
// transaction.
type AccountPatch struct {
	Name                  *string          `json:"name" example:"Savings"`                 // Name of the account
	Balance               *decimal.Decimal `json:"balance" example:"480000"`               // Balance of the account
	Interest              *decimal.Decimal `json:"interest" example:"2"`                   // Monthly interest rate in percent
	MinimumPaymentMonthly *decimal.Decimal `json:"minimumPaymentMonthly" example:"100000"` // Minimum monthly payment
}

func (patch AccountPatch) model() ledger.AccountPatch {
	return ledger.AccountPatch{
		Name:                  patch.Name,
		Balance:               patch.Balance,
		Interest:              patch.Interest,
		MinimumPaymentMonthly: patch.MinimumPaymentMonthly,
	}
}

// Account is the API representation of an account. For loan accounts the
// detail endpoint adds the payoff projection.
type Account struct {
	models.Account
	Projection []ledger.ProjectionEntry `json:"projection,omitempty"` // Payoff projection, loan accounts only
}

type AccountListResponse struct {
	Data       []models.Account `json:"data"`                                                          // List of accounts
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	BudgetID kt_uuid.UUID       `form:"budget"`                     // By ID of the budget
	Name     string             `form:"name" filterField:"false"`   // By name
	Type     models.AccountType `form:"type"`                       // By type, "cash" or "loan"
	Offset   uint               `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		BudgetID: f.BudgetID.UUID,
		Type:     f.Type,
	}
}
