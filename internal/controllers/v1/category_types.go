package v1

import (
	"github.com/google/uuid"

	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	CategoryGroupID uuid.UUID `json:"categoryGroupId" example:"90d9d107-3acb-4e0f-9be2-a350af4b578c"` // ID of the category group the category belongs to
	Name            string    `json:"name" example:"Groceries" default:""`                            // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		CategoryGroupID: editable.CategoryGroupID,
		Name:            editable.Name,
	}
}

type CategoryListResponse struct {
	Data       []models.Category `json:"data"`                                                          // List of categories
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	CategoryGroupID kt_uuid.UUID `form:"categoryGroup"`              // By ID of the category group
	Name            string       `form:"name" filterField:"false"`   // By name
	Offset          uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit           int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		CategoryGroupID: f.CategoryGroupID.UUID,
	}
}
