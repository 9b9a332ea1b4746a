package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/kantongku/backend/internal/httputil"
	"github.com/kantongku/backend/internal/models"
)

// RegisterCategoryGroupRoutes registers the routes for category groups with
// the RouterGroup that is passed.
func RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryGroupList)
		r.GET("", GetCategoryGroups)
		r.POST("", CreateCategoryGroup)
	}

	// Category group with ID
	{
		r.OPTIONS("/:id", OptionsCategoryGroupDetail)
		r.GET("/:id", GetCategoryGroup)
		r.PATCH("/:id", UpdateCategoryGroup)
		r.DELETE("/:id", DeleteCategoryGroup)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [options]
func OptionsCategoryGroupDetail(c *gin.Context) {
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
		First(&models.CategoryGroup{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category group
// @Description	Creates a new category group
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		201				{object}	CategoryGroupResponse
// @Failure		400				{object}	CategoryGroupResponse
// @Failure		404				{object}	CategoryGroupResponse
// @Failure		500				{object}	CategoryGroupResponse
// @Param			categoryGroup	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups [post]
func CreateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	// The budget must belong to the authenticated user
	err = models.DB.First(&models.Budget{}, "id = ? AND user_id = ?", editable.BudgetID, user.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &e,
		})
		return
	}

	group := editable.model()
	err = models.DB.Create(&group).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryGroupResponse{Data: &group})
}

// @Summary		List category groups
// @Description	Returns a list of category groups
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Failure		400	{object}	CategoryGroupListResponse
// @Failure		500	{object}	CategoryGroupListResponse
// @Router			/v1/category-groups [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			offset	query	uint	false	"The offset of the first category group returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of category groups to return. Defaults to 50."
func GetCategoryGroups(c *gin.Context) {
	var filter CategoryGroupQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := currentUser(c)

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 category groups and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var groups []models.CategoryGroup
	err := q.Find(&groups).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &e,
		})
		return
	}

	if groups == nil {
		groups = make([]models.CategoryGroup, 0)
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{
		Data: groups,
		Pagination: &Pagination{
			Count:  len(groups),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	CategoryGroupResponse
// @Failure		404	{object}	CategoryGroupResponse
// @Failure		500	{object}	CategoryGroupResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [get]
func GetCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var group models.CategoryGroup
	err = models.DB.
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		First(&group, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &group})
}

// @Summary		Update category group
// @Description	Update an existing category group. Only values to be updated need to be specified.
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		200				{object}	CategoryGroupResponse
// @Failure		400				{object}	CategoryGroupResponse
// @Failure		404				{object}	CategoryGroupResponse
// @Failure		500				{object}	CategoryGroupResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryGroup	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups/{id} [patch]
func UpdateCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var group models.CategoryGroup
	err = models.DB.
		Where("budget_id IN (?)", userBudgetIDs(user.ID)).
		First(&group, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var data CategoryGroupEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	// Moving the group to another budget requires that budget to belong
	// to the authenticated user
	if data.BudgetID != uuid.Nil {
		err = models.DB.First(&models.Budget{}, "id = ? AND user_id = ?", data.BudgetID, user.ID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryGroupResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&group).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &group})
}

// @Summary		Delete category group
// @Description	Deletes a category group with all its categories. Assigned money returns to the monthly budgets.
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [delete]
func DeleteCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := currentUser(c)
	err = engine().DeleteCategoryGroup(c.Request.Context(), user.ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
