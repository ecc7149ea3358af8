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

type UserHandler struct {
	userCommands commands.UserCommands
	userQueries  queries.UserQueries
}

func NewUserHandler(userCommands commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
		userQueries:  userQueries,
	}
}

// @Summary Register customer
// @Description Create a customer account
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCustomerRequest true "Registration request"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/register [post]
func (h *UserHandler) RegisterCustomer(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		abortRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Register provider
// @Description Create a provider account; the shop stays hidden until an admin approves it
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterProviderRequest true "Registration request"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/register-provider [post]
func (h *UserHandler) RegisterProvider(c *gin.Context) {
	var req reqdto.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		abortRegistrationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update profile
// @Description Update contact details; providers edit shop fields, customers edit name and address
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile update"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid profile data", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Change password
// @Description Change the current user's password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/me/password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.userCommands.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongPassword):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Current password is incorrect", nil)
		case errors.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle availability
// @Description Provider toggles whether the shop accepts new bookings
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/me/availability [patch]
func (h *UserHandler) ToggleAvailability(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}

	view, err := h.userCommands.ToggleAvailability(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotProvider):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only providers can toggle availability", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List providers
// @Description List approved laundry shops, optionally filtered by shop name
// @Tags providers
// @Produce json
// @Param search query string false "Shop name filter"
// @Success 200 {array} queries.ProviderView
// @Router /providers [get]
func (h *UserHandler) ListProviders(c *gin.Context) {
	views, err := h.userQueries.ListProviders(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

func abortRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
	case errors.Is(err, commands.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
