package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	"marketplace-core/internal/handler/middleware"
	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	fx.In

	User        *api.UserHandler
	Listing     *api.ListingHandler
	Reservation *api.ReservationHandler
	Order       *api.OrderHandler
	Dispute     *api.DisputeHandler
	Review      *api.ReviewHandler
	Payment     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, auth *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	moderator := auth.RequireRoleAtLeast(user.RoleModerator)
	admin := auth.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")

	// public reads; a token, when present, widens visibility
	public := apiGroup.Group("")
	public.Use(auth.OptionalAuth())
	if cfg.RateLimit.Enabled {
		public.Use(middleware.RateLimit(limiter))
	}
	addRoutes(public, []route{
		{Method: http.MethodGet, Path: "/users/:id/reputation", Handler: h.User.Reputation},
		{Method: http.MethodGet, Path: "/users/:id/reviews", Handler: h.User.Reviews},
		{Method: http.MethodGet, Path: "/listings/:id", Handler: h.Listing.Get},
	})

	authed := apiGroup.Group("")
	authed.Use(auth.RequireAuth())
	if cfg.RateLimit.Enabled {
		authed.Use(middleware.RateLimit(limiter))
	}
	addRoutes(authed, []route{
		{Method: http.MethodPost, Path: "/users", Handler: h.User.Provision, Mw: []gin.HandlerFunc{admin}},

		{Method: http.MethodPost, Path: "/listings", Handler: h.Listing.Create},
		{Method: http.MethodPatch, Path: "/listings/:id", Handler: h.Listing.Edit},
		{Method: http.MethodPost, Path: "/listings/:id/submit", Handler: h.Listing.Submit},
		{Method: http.MethodPost, Path: "/listings/:id/moderation", Handler: h.Listing.Moderate, Mw: []gin.HandlerFunc{moderator}},
		{Method: http.MethodPost, Path: "/listings/:id/archive", Handler: h.Listing.Archive},
		{Method: http.MethodPost, Path: "/listings/:id/reservations", Handler: h.Reservation.Create},
		{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},

		{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Create},
		{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
		{Method: http.MethodPost, Path: "/orders/:id/payment", Handler: h.Order.InitiatePayment},
		{Method: http.MethodPost, Path: "/orders/:id/meetup", Handler: h.Order.ScheduleMeetup},
		{Method: http.MethodPost, Path: "/orders/:id/handover", Handler: h.Order.ConfirmHandover},
		{Method: http.MethodPost, Path: "/orders/:id/label", Handler: h.Order.MarkLabelReady},
		{Method: http.MethodPost, Path: "/orders/:id/ship", Handler: h.Order.Ship},
		{Method: http.MethodPost, Path: "/orders/:id/deliver", Handler: h.Order.MarkDelivered},
		{Method: http.MethodPost, Path: "/orders/:id/confirm", Handler: h.Order.ConfirmReceipt},
		{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.Order.Cancel},
		{Method: http.MethodGet, Path: "/orders/:id/disputes", Handler: h.Dispute.List},
		{Method: http.MethodPost, Path: "/orders/:id/disputes", Handler: h.Dispute.Open},
		{Method: http.MethodPost, Path: "/orders/:id/reviews", Handler: h.Review.Submit},

		{Method: http.MethodPost, Path: "/disputes/:id/resolve", Handler: h.Dispute.Resolve, Mw: []gin.HandlerFunc{admin}},
		{Method: http.MethodPost, Path: "/payments/events", Handler: h.Payment.ApplyEvent, Mw: []gin.HandlerFunc{admin}},
	})
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
