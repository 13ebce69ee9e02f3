package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekchain-capacity/internal/handler/api"
	"weekchain-capacity/internal/handler/middleware"
	"weekchain-capacity/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	capacityHandler *api.CapacityHandler,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	certificateHandler *api.CertificateHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, capacityHandler, catalogHandler, availabilityHandler, certificateHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	capacityHandler *api.CapacityHandler,
	catalogHandler *api.CatalogHandler,
	availabilityHandler *api.AvailabilityHandler,
	certificateHandler *api.CertificateHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/capacity/status", Handler: capacityHandler.Status},
			{Method: http.MethodGet, Path: "/products", Handler: catalogHandler.List},
			{Method: http.MethodGet, Path: "/products/recommend", Handler: catalogHandler.Recommend},
			{Method: http.MethodGet, Path: "/products/:id", Handler: catalogHandler.Get},
			{Method: http.MethodGet, Path: "/availability/products/:id", Handler: availabilityHandler.ByProduct},
			{Method: http.MethodGet, Path: "/availability/spec", Handler: availabilityHandler.BySpec},
			{Method: http.MethodGet, Path: "/availability/tiers/:stays", Handler: availabilityHandler.ByTier},
			{Method: http.MethodPost, Path: "/waitlist", Handler: availabilityHandler.JoinWaitlist},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/certificates/:id/eligibility", Handler: certificateHandler.Eligibility},
			{Method: http.MethodPost, Path: "/products/:id/record-sale", Handler: catalogHandler.RecordSale},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/capacity/recalculate", Handler: capacityHandler.Recalculate},
			{Method: http.MethodGet, Path: "/capacity/history", Handler: capacityHandler.History},
			{Method: http.MethodPost, Path: "/products/:id/sales", Handler: catalogHandler.SetSales},
			{Method: http.MethodPost, Path: "/certificates/expire", Handler: certificateHandler.Expire},
			{Method: http.MethodPost, Path: "/certificates/reset-annual", Handler: certificateHandler.ResetAnnual},
		})
	}
}

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
