package api

import (
	"context"
	"errors"
	"net/http"

	"laundryhub/internal/handler/httperr"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	userQueries   queries.UserQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, userQueries queries.UserQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		userQueries:   userQueries,
	}
}

// @Summary List users
// @Description Admin lists every account, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	views, err := h.userQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List pending providers
// @Description Admin lists provider applications awaiting review
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /admin/providers/pending [get]
func (h *AdminHandler) ListPendingProviders(c *gin.Context) {
	views, err := h.userQueries.ListPendingProviders(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Approve provider
// @Description Admin approves a provider application
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} queries.UserView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/providers/{id}/approve [post]
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	h.moderate(c, h.adminCommands.ApproveProvider)
}

// @Summary Reject provider
// @Description Admin rejects a provider application
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} queries.UserView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/providers/{id}/reject [post]
func (h *AdminHandler) RejectProvider(c *gin.Context) {
	h.moderate(c, h.adminCommands.RejectProvider)
}

// @Summary Ban user
// @Description Admin bans an account; banned providers are also delisted
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(c *gin.Context) {
	h.moderate(c, h.adminCommands.BanUser)
}

// @Summary Unban user
// @Description Admin reinstates a banned account
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/users/{id}/unban [post]
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.moderate(c, h.adminCommands.UnbanUser)
}

// @Summary Platform stats
// @Description Admin dashboard counters and completed revenue
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AdminStatsView
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.userQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) moderate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*queries.UserView, error)) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), targetID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrNotProvider):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Account is not a provider", nil)
		case errors.Is(err, commands.ErrCannotModerateAdmin):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Admin accounts cannot be moderated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
