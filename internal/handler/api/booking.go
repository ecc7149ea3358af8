package api

import (
	"context"
	"errors"
	"net/http"

	"laundryhub/internal/domain/user"
	reqdto "laundryhub/internal/handler/dto/request"
	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/handler/middleware"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a laundry service category; the total price is computed and locked in at creation
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), customerID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound), errors.Is(err, commands.ErrProviderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
		case errors.Is(err, commands.ErrProviderUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Provider is not accepting bookings", nil)
		case errors.Is(err, commands.ErrInvalidWeight):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid weight for this category", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	middleware.BookingTransitions.WithLabelValues(view.Status).Inc()
	c.JSON(http.StatusCreated, view)
}

// @Summary List my bookings
// @Description List bookings newest first; customers and providers see their own, admins see everything
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingView
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, role, ok := userContext(c)
	if !ok {
		return
	}

	var (
		views []*queries.BookingView
		err   error
	)
	switch role {
	case user.RoleAdmin:
		views, err = h.bookingQueries.ListAll(c.Request.Context())
	case user.RoleProvider:
		views, err = h.bookingQueries.ListByProvider(c.Request.Context(), userID)
	default:
		views, err = h.bookingQueries.ListByCustomer(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get booking
// @Description Get a single booking visible to its customer or provider
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}
	// Hide other people's bookings instead of revealing their existence
	if view.CustomerID != userID && view.ProviderID != userID {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("booking not visible to user"), "Booking not found", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Accept booking
// @Description Provider accepts a pending booking; the order and receipt are derived in the same transaction
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) Accept(c *gin.Context) {
	h.transition(c, h.bookingCommands.Accept)
}

// @Summary Reject booking
// @Description Provider declines a pending booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, h.bookingCommands.Reject)
}

// @Summary Confirm payment
// @Description Provider confirms the customer paid for an accepted booking, moving it to in_progress
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/confirm-payment [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	h.transition(c, h.bookingCommands.ConfirmPayment)
}

// @Summary Update booking status
// @Description Provider advances a booking along its lifecycle
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), userID, bookingID, req.Status)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	middleware.BookingTransitions.WithLabelValues(view.Status).Inc()
	c.JSON(http.StatusOK, view)
}

// @Summary Update booking details
// @Description Provider corrects the weight or notes of a live booking; the price and derived records resync
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingDetailsRequest true "New details"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/details [patch]
func (h *BookingHandler) UpdateDetails(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Weight == nil && req.Notes == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("empty update payload"), "Nothing to update", nil)
		return
	}

	view, err := h.bookingCommands.UpdateDetails(c.Request.Context(), userID, bookingID, req)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error)) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), userID, bookingID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	middleware.BookingTransitions.WithLabelValues(view.Status).Inc()
	c.JSON(http.StatusOK, view)
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, commands.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrNotBookingOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to someone else", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking status transition", nil)
	case errors.Is(err, commands.ErrInvalidWeight):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid weight for this category", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking was modified concurrently", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func userContext(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing role context"), "User not authenticated", nil)
		return uuid.Nil, "", false
	}
	return userID, role, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
