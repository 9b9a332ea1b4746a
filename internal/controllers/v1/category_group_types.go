package v1

import (
	"github.com/google/uuid"

	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// CategoryGroupEditable represents all user configurable parameters
type CategoryGroupEditable struct {
	BudgetID uuid.UUID `json:"budgetId" example:"53a3f2f2-d081-4857-97ce-aa1b129f8469"` // ID of the budget the category group belongs to
	Name     string    `json:"name" example:"Daily Life" default:""`                    // Name of the category group
}

func (editable CategoryGroupEditable) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
	}
}

type CategoryGroupListResponse struct {
	Data       []models.CategoryGroup `json:"data"`                                                          // List of category groups
	Error      *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination            `json:"pagination"`                                                    // Pagination information
}

type CategoryGroupResponse struct {
	Data  *models.CategoryGroup `json:"data"`                                                          // Data for the category group
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryGroupQueryFilter struct {
	BudgetID kt_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first category group returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of category groups to return. Defaults to 50.
}

func (f CategoryGroupQueryFilter) model() models.CategoryGroup {
	return models.CategoryGroup{
		BudgetID: f.BudgetID.UUID,
	}
}
