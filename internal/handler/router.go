package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"laundryhub/internal/domain/user"
	"laundryhub/internal/handler/api"
	"laundryhub/internal/handler/middleware"
	"laundryhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	User         *api.UserHandler
	Booking      *api.BookingHandler
	Category     *api.CategoryHandler
	Order        *api.OrderHandler
	Receipt      *api.ReceiptHandler
	Notification *api.NotificationHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	provider := auth.RequireRole(user.RoleProvider)
	customer := auth.RequireRole(user.RoleCustomer)
	admin := auth.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			addRoutes(authGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := authGroup.Group("")
			authRequired.Use(auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.User.RegisterCustomer},
				{Method: http.MethodPost, Path: "/register-provider", Handler: h.User.RegisterProvider},
			})

			me := users.Group("/me")
			me.Use(auth.RequireAuth())
			addRoutes(me, []route{
				{Method: http.MethodPatch, Path: "", Handler: h.User.UpdateProfile},
				{Method: http.MethodPatch, Path: "/password", Handler: h.User.ChangePassword},
				{Method: http.MethodPatch, Path: "/availability", Handler: h.User.ToggleAvailability, Mw: []gin.HandlerFunc{provider}},
			})
		}

		providers := apiGroup.Group("/providers")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.ListProviders},
				{Method: http.MethodGet, Path: "/:id/categories", Handler: h.Category.ListByProvider},
			})
		}

		categories := apiGroup.Group("/categories")
		categories.Use(auth.RequireAuth(), provider)
		{
			addRoutes(categories, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Category.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Category.ListMine},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(auth.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{customer}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Booking.Accept, Mw: []gin.HandlerFunc{provider}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.Reject, Mw: []gin.HandlerFunc{provider}},
				{Method: http.MethodPost, Path: "/:id/confirm-payment", Handler: h.Booking.ConfirmPayment, Mw: []gin.HandlerFunc{provider}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{provider}},
				{Method: http.MethodPatch, Path: "/:id/details", Handler: h.Booking.UpdateDetails, Mw: []gin.HandlerFunc{provider}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(auth.RequireAuth())
		addRoutes(orders, []route{
			{Method: http.MethodGet, Path: "/mine", Handler: h.Order.ListMine},
		})

		receipts := apiGroup.Group("/receipts")
		receipts.Use(auth.RequireAuth())
		addRoutes(receipts, []route{
			{Method: http.MethodGet, Path: "/mine", Handler: h.Receipt.ListMine},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(auth.RequireAuth())
		addRoutes(notifications, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodPatch, Path: "/:id/read", Handler: h.Notification.MarkRead},
		})

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(auth.RequireAuth(), admin)
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodGet, Path: "/providers/pending", Handler: h.Admin.ListPendingProviders},
				{Method: http.MethodPost, Path: "/providers/:id/approve", Handler: h.Admin.ApproveProvider},
				{Method: http.MethodPost, Path: "/providers/:id/reject", Handler: h.Admin.RejectProvider},
				{Method: http.MethodPost, Path: "/users/:id/ban", Handler: h.Admin.BanUser},
				{Method: http.MethodPost, Path: "/users/:id/unban", Handler: h.Admin.UnbanUser},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
