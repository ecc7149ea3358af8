package components

import (
	"laundryhub/internal/handler"
	"laundryhub/internal/handler/api"
	"laundryhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewBookingHandler,
		api.NewCategoryHandler,
		api.NewOrderHandler,
		api.NewReceiptHandler,
		api.NewNotificationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	booking *api.BookingHandler,
	category *api.CategoryHandler,
	order *api.OrderHandler,
	receipt *api.ReceiptHandler,
	notification *api.NotificationHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		User:         user,
		Booking:      booking,
		Category:     category,
		Order:        order,
		Receipt:      receipt,
		Notification: notification,
		Admin:        admin,
	}
}
