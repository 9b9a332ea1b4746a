package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kantongku/backend/internal/ledger"
	"github.com/kantongku/backend/internal/models"
	kt_uuid "github.com/kantongku/backend/internal/uuid"
)

// ContextUser is the key under which the authentication middleware stores
// the authenticated user in the gin context.
const ContextUser = "user"

type URIID struct {
	ID kt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Total  int64 `json:"total" example:"827"` // The total number of records matching the query
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of records to return
}

// currentUser returns the authenticated user. The middleware guarantees it
// is set for every route registered under /v1.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(ContextUser).(models.User)
}

// engine returns the ledger bound to the database connection.
func engine() *ledger.Ledger {
	return ledger.New(models.DB)
}

// userBudgetIDs is a subquery for the IDs of all budgets the user owns.
// List and detail queries use it to scope results to the user.
func userBudgetIDs(userID uuid.UUID) *gorm.DB {
	return models.DB.Model(&models.Budget{}).Select("id").Where("user_id = ?", userID)
}

// userMonthlyBudgetIDs is a subquery for the IDs of all monthly budgets
// under budgets the user owns.
func userMonthlyBudgetIDs(userID uuid.UUID) *gorm.DB {
	return models.DB.Model(&models.MonthlyBudget{}).Select("id").Where("budget_id IN (?)", userBudgetIDs(userID))
}

// userCategoryGroupIDs is a subquery for the IDs of all category groups
// under budgets the user owns.
func userCategoryGroupIDs(userID uuid.UUID) *gorm.DB {
	return models.DB.Model(&models.CategoryGroup{}).Select("id").Where("budget_id IN (?)", userBudgetIDs(userID))
}
