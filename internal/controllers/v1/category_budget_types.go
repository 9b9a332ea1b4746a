package v1

import (
	"github.com/shopspring/decimal"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// CategoryBudgetPatch is the payload for updating a category budget.
// Fields that are not set are left unchanged.
type CategoryBudgetPatch struct {
	Assigned  *decimal.Decimal `json:"assigned" example:"200000"` // Amount assigned to the category for the month
	Available *decimal.Decimal `json:"available" example:"60000"` // Amount available to spend, overrides the computed value
}

func (patch CategoryBudgetPatch) model() ledger.CategoryBudgetPatch {
	return ledger.CategoryBudgetPatch{
		Assigned:  patch.Assigned,
		Available: patch.Available,
	}
}

type CategoryBudgetListResponse struct {
	Data       []models.CategoryBudget `json:"data"`                                                          // List of category budgets
	Error      *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination             `json:"pagination"`                                                    // Pagination information
}

type CategoryBudgetResponse struct {
	Data  *models.CategoryBudget `json:"data"`                                                          // Data for the category budget
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryBudgetQueryFilter struct {
	MonthlyBudgetID kt_uuid.UUID `form:"monthlyBudget"`              // By ID of the monthly budget
	CategoryID      kt_uuid.UUID `form:"category"`                   // By ID of the category
	Offset          uint         `form:"offset" filterField:"false"` // The offset of the first category budget returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`  // Maximum number of category budgets to return. Defaults to 50.
}

func (f CategoryBudgetQueryFilter) model() models.CategoryBudget {
	return models.CategoryBudget{
		MonthlyBudgetID: f.MonthlyBudgetID.UUID,
		CategoryID:      f.CategoryID.UUID,
	}
}
