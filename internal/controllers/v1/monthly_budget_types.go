package v1

import (
	"github.com/google/uuid"

	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// MonthlyBudgetEditable represents all user configurable parameters
type MonthlyBudgetEditable struct {
	BudgetID uuid.UUID   `json:"budgetId" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"` // ID of the budget the month belongs to
	Month    types.Month `json:"month" example:"2026-09-01T00:00:00Z"`                    // The month to create

	// The month to roll over from. When it is not set, the new month
	// starts empty.
	ReferenceMonth types.Month `json:"referenceMonth" example:"2026-08-01T00:00:00Z"`
}

// MonthlyBudget is the API representation of a monthly budget. The detail
// endpoint adds the category budgets of the month.
type MonthlyBudget struct {
	models.MonthlyBudget
	CategoryBudgets []models.CategoryBudget `json:"categoryBudgets,omitempty"` // Category budgets of the month
}

type MonthlyBudgetListResponse struct {
	Data       []models.MonthlyBudget `json:"data"`                                                          // List of monthly budgets
	Error      *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination            `json:"pagination"`                                                    // Pagination information
}

type MonthlyBudgetResponse struct {
	Data  *MonthlyBudget `json:"data"`                                                          // Data for the monthly budget
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthlyBudgetQueryFilter struct {
	BudgetID kt_uuid.UUID `form:"budget"`                     // By ID of the budget
	Month    string       `form:"month" filterField:"false"`  // By month in YYYY-MM format
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first monthly budget returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of monthly budgets to return. Defaults to 50.
}

func (f MonthlyBudgetQueryFilter) model() models.MonthlyBudget {
	return models.MonthlyBudget{
		BudgetID: f.BudgetID.UUID,
	}
}
