package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"colpa-mia/internal/handler/api"
	"colpa-mia/internal/handler/middleware"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, logger *middleware.Logger, webhookHandler *api.WebhookHandler, ledgerHandler *api.LedgerHandler) {
	setupMiddleware(engine, logger)
	setupRoutes(engine, webhookHandler, ledgerHandler)
}

func setupMiddleware(engine *gin.Engine, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, webhookHandler *api.WebhookHandler, ledgerHandler *api.LedgerHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/stripe/webhook", Handler: webhookHandler.HandleStripeEvent},
			{Method: http.MethodGet, Path: "/balance", Handler: ledgerHandler.GetBalance},
			{Method: http.MethodGet, Path: "/ledger", Handler: ledgerHandler.GetLedger},
			{Method: http.MethodPost, Path: "/consume", Handler: ledgerHandler.ConsumeMinutes},
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
