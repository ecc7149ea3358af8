package api

import (
	"net/http"

	"laundryhub/internal/domain/user"
	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptQueries queries.ReceiptQueries
}

func NewReceiptHandler(receiptQueries queries.ReceiptQueries) *ReceiptHandler {
	return &ReceiptHandler{receiptQueries: receiptQueries}
}

// @Summary List my receipts
// @Description List receipts for the authenticated user, newest first
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ReceiptView
// @Failure 401 {object} httperr.Response
// @Router /receipts/mine [get]
func (h *ReceiptHandler) ListMine(c *gin.Context) {
	userID, role, ok := userContext(c)
	if !ok {
		return
	}

	var (
		views []*queries.ReceiptView
		err   error
	)
	if role == user.RoleProvider {
		views, err = h.receiptQueries.ListByProvider(c.Request.Context(), userID)
	} else {
		views, err = h.receiptQueries.ListByCustomer(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}
