package api

import (
	"net/http"

	"laundryhub/internal/domain/user"
	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orderQueries: orderQueries}
}

// @Summary List my orders
// @Description List orders derived from the authenticated user's accepted bookings, newest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.OrderView
// @Failure 401 {object} httperr.Response
// @Router /orders/mine [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, role, ok := userContext(c)
	if !ok {
		return
	}

	var (
		views []*queries.OrderView
		err   error
	)
	if role == user.RoleProvider {
		views, err = h.orderQueries.ListByProvider(c.Request.Context(), userID)
	} else {
		views, err = h.orderQueries.ListByCustomer(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}
