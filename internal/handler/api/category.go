package api

import (
	"errors"
	"net/http"

	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryCommands commands.CategoryCommands
	categoryQueries  queries.CategoryQueries
}

func NewCategoryHandler(categoryCommands commands.CategoryCommands, categoryQueries queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{
		categoryCommands: categoryCommands,
		categoryQueries:  categoryQueries,
	}
}

// @Summary Create category
// @Description Approved provider publishes a laundry service category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} queries.CategoryView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	providerID, _, ok := userContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.categoryCommands.Create(c.Request.Context(), providerID, req)
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update category
// @Description Provider updates one of their own categories
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category"
// @Success 200 {object} queries.CategoryView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	providerID, _, ok := userContext(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.categoryCommands.Update(c.Request.Context(), providerID, categoryID, req)
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete category
// @Description Provider removes one of their own categories; categories with bookings cannot be removed
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	providerID, _, ok := userContext(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryCommands.Delete(c.Request.Context(), providerID, categoryID); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCategory):
			httperr.AbortWithError(c, http.StatusConflict, err, "Category is referenced by bookings", nil)
		default:
			abortCategoryError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List my categories
// @Description Provider lists their own categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /categories/mine [get]
func (h *CategoryHandler) ListMine(c *gin.Context) {
	providerID, _, ok := userContext(c)
	if !ok {
		return
	}

	views, err := h.categoryQueries.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List provider categories
// @Description List the categories a shop offers
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} queries.CategoryView
// @Failure 400 {object} httperr.Response
// @Router /providers/{id}/categories [get]
func (h *CategoryHandler) ListByProvider(c *gin.Context) {
	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	views, err := h.categoryQueries.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

func abortCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
	case errors.Is(err, commands.ErrNotCategoryOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Category belongs to another provider", nil)
	case errors.Is(err, commands.ErrProviderNotApproved):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Provider is not approved", nil)
	case errors.Is(err, commands.ErrNotProvider):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only providers can manage categories", nil)
	case errors.Is(err, commands.ErrInvalidCategory):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
