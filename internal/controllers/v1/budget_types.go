package v1

import (
	"github.com/kantongku/backend/internal/models"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name string `json:"name" example:"Household" default:""`        // Name of the budget
	Note string `json:"note" example:"Our shared money" default:""` // Notes about the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type BudgetListResponse struct {
	Data       []models.Budget `json:"data"`                                                          // List of budgets
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                                          // Data for the budget
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}
