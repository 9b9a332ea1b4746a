package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/kantongku/backend/internal/httputil"
	"github.com/kantongku/backend/internal/models"
)

// RegisterCategoryBudgetRoutes registers the routes for category budgets
// with the RouterGroup that is passed.
//
// Category budget rows are created and deleted by the ledger, so the only
// mutation exposed is PATCH.
func RegisterCategoryBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryBudgetList)
		r.GET("", GetCategoryBudgets)
	}

	// Category budget with ID
	{
		r.OPTIONS("/:id", OptionsCategoryBudgetDetail)
		r.GET("/:id", GetCategoryBudget)
		r.PATCH("/:id", UpdateCategoryBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryBudgets
// @Success		204
// @Router			/v1/category-budgets [options]
func OptionsCategoryBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-budgets/{id} [options]
func OptionsCategoryBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := currentUser(c)
	err = models.DB.
		Where("monthly_budget_id IN (?)", userMonthlyBudgetIDs(user.ID)).
		First(&models.CategoryBudget{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List category budgets
// @Description	Returns a list of category budgets
// @Tags			CategoryBudgets
// @Produce		json
// @Success		200	{object}	CategoryBudgetListResponse
// @Failure		400	{object}	CategoryBudgetListResponse
// @Failure		500	{object}	CategoryBudgetListResponse
// @Router			/v1/category-budgets [get]
// @Param			monthlyBudget	query	string	false	"Filter by monthly budget ID"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			offset			query	uint	false	"The offset of the first category budget returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of category budgets to return. Defaults to 50."
func GetCategoryBudgets(c *gin.Context) {
	var filter CategoryBudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := currentUser(c)

	q := models.DB.
		Where("monthly_budget_id IN (?)", userMonthlyBudgetIDs(user.ID)).
		Where(filter.model(), queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 category budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categoryBudgets []models.CategoryBudget
	err := q.Find(&categoryBudgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryBudgetListResponse{
			Error: &e,
		})
		return
	}

	if categoryBudgets == nil {
		categoryBudgets = make([]models.CategoryBudget, 0)
	}

	c.JSON(http.StatusOK, CategoryBudgetListResponse{
		Data: categoryBudgets,
		Pagination: &Pagination{
			Count:  len(categoryBudgets),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category budget
// @Description	Returns a specific category budget
// @Tags			CategoryBudgets
// @Produce		json
// @Success		200	{object}	CategoryBudgetResponse
// @Failure		400	{object}	CategoryBudgetResponse
// @Failure		404	{object}	CategoryBudgetResponse
// @Failure		500	{object}	CategoryBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-budgets/{id} [get]
func GetCategoryBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var categoryBudget models.CategoryBudget
	err = models.DB.
		Where("monthly_budget_id IN (?)", userMonthlyBudgetIDs(user.ID)).
		First(&categoryBudget, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryBudgetResponse{Data: &categoryBudget})
}

// @Summary		Update category budget
// @Description	Update the assignment of a category for a month. Assigning more than the month's unassigned balance is rejected.
// @Tags			CategoryBudgets
// @Accept			json
// @Produce		json
// @Success		200				{object}	CategoryBudgetResponse
// @Failure		400				{object}	CategoryBudgetResponse
// @Failure		404				{object}	CategoryBudgetResponse
// @Failure		500				{object}	CategoryBudgetResponse
// @Param			id				path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryBudget	body		CategoryBudgetPatch	true	"CategoryBudget"
// @Router			/v1/category-budgets/{id} [patch]
func UpdateCategoryBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetResponse{
			Error: &s,
		})
		return
	}

	var patch CategoryBudgetPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	categoryBudget, err := engine().UpdateCategoryBudget(c.Request.Context(), user.ID, uri.ID.UUID, patch.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryBudgetResponse{Data: &categoryBudget})
}
