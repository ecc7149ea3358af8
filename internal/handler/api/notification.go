package api

import (
	"errors"
	"net/http"

	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	userCommands        commands.UserCommands
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(userCommands commands.UserCommands, notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		userCommands:        userCommands,
		notificationQueries: notificationQueries,
	}
}

// @Summary List notifications
// @Description List in-app notifications for the authenticated user, newest first
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.NotificationView
// @Failure 401 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}

	views, err := h.notificationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Mark notification read
// @Description Mark one of the user's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, _, ok := userContext(c)
	if !ok {
		return
	}
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userCommands.MarkNotificationRead(c.Request.Context(), userID, notificationID); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
