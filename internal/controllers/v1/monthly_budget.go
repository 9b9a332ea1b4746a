package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/kantongku/backend/internal/httputil"
	"github.com/kantongku/backend/internal/models"
	"github.com/kantongku/backend/internal/types"
)

// RegisterMonthlyBudgetRoutes registers the routes for monthly budgets with
// the RouterGroup that is passed.
//
// Monthly budget totals are computed by the ledger, so months can only be
// created and read.
func RegisterMonthlyBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthlyBudgetList)
		r.GET("", GetMonthlyBudgets)
		r.POST("", CreateMonthlyBudget)
	}

	// Monthly budget with ID
	{
		r.OPTIONS("/:id", OptionsMonthlyBudgetDetail)
		r.GET("/:id", GetMonthlyBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBudgets
// @Success		204
// @Router			/v1/monthly-budgets [options]
func OptionsMonthlyBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MonthlyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-budgets/{id} [options]
func OptionsMonthlyBudgetDetail(c *gin.Context) {
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
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		First(&models.MonthlyBudget{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create monthly budget
// @Description	Creates a new monthly budget, optionally rolled over from a reference month. Rolling over copies the unassigned balance and carries the available amounts forward.
// @Tags			MonthlyBudgets
// @Accept			json
// @Produce		json
// @Success		201				{object}	MonthlyBudgetResponse
// @Failure		400				{object}	MonthlyBudgetResponse
// @Failure		404				{object}	MonthlyBudgetResponse
// @Failure		500				{object}	MonthlyBudgetResponse
// @Param			monthlyBudget	body		MonthlyBudgetEditable	true	"MonthlyBudget"
// @Router			/v1/monthly-budgets [post]
func CreateMonthlyBudget(c *gin.Context) {
	var editable MonthlyBudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	monthlyBudget, err := engine().CreateMonthlyBudget(c.Request.Context(), user.ID, editable.BudgetID, editable.Month, editable.ReferenceMonth)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &e,
		})
		return
	}

	data := MonthlyBudget{MonthlyBudget: monthlyBudget}
	data.CategoryBudgets, err = monthlyBudget.CategoryBudgets(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, MonthlyBudgetResponse{Data: &data})
}

// @Summary		List monthly budgets
// @Description	Returns a list of monthly budgets
// @Tags			MonthlyBudgets
// @Produce		json
// @Success		200	{object}	MonthlyBudgetListResponse
// @Failure		400	{object}	MonthlyBudgetListResponse
// @Failure		500	{object}	MonthlyBudgetListResponse
// @Router			/v1/monthly-budgets [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			month	query	string	false	"Filter by month in YYYY-MM format"
// @Param			offset	query	uint	false	"The offset of the first monthly budget returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of monthly budgets to return. Defaults to 50."
func GetMonthlyBudgets(c *gin.Context) {
	var filter MonthlyBudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := currentUser(c)

	// Sort newest month first
	q := models.DB.
		Order("month DESC").
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		Where(filter.model(), queryFields...)

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, MonthlyBudgetListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("month = ?", month)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 monthly budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var monthlyBudgets []models.MonthlyBudget
	err := q.Find(&monthlyBudgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyBudgetListResponse{
			Error: &e,
		})
		return
	}

	if monthlyBudgets == nil {
		monthlyBudgets = make([]models.MonthlyBudget, 0)
	}

	c.JSON(http.StatusOK, MonthlyBudgetListResponse{
		Data: monthlyBudgets,
		Pagination: &Pagination{
			Count:  len(monthlyBudgets),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get monthly budget
// @Description	Returns a specific monthly budget with its category budgets
// @Tags			MonthlyBudgets
// @Produce		json
// @Success		200	{object}	MonthlyBudgetResponse
// @Failure		400	{object}	MonthlyBudgetResponse
// @Failure		404	{object}	MonthlyBudgetResponse
// @Failure		500	{object}	MonthlyBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/monthly-budgets/{id} [get]
func GetMonthlyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var monthlyBudget models.MonthlyBudget
	err = models.DB.
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		First(&monthlyBudget, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	data := MonthlyBudget{MonthlyBudget: monthlyBudget}
	data.CategoryBudgets, err = monthlyBudget.CategoryBudgets(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyBudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyBudgetResponse{Data: &data})
}
