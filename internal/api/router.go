package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thanhnp/eth-explorer-api/internal/api/handlers"
	"github.com/thanhnp/eth-explorer-api/internal/api/middleware"
	"github.com/thanhnp/eth-explorer-api/internal/config"
	"github.com/thanhnp/eth-explorer-api/internal/models"
)

// Router wraps the Gin router with handlers
type Router struct {
	engine         *gin.Engine
	log            logrus.FieldLogger
	accountHandler *handlers.AccountHandler
}

// NewRouter creates a new Router serving the configured account
func NewRouter(cfg config.EtherscanConfig, explorer handlers.Explorer, log logrus.FieldLogger) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:         gin.New(),
		log:            log,
		accountHandler: handlers.NewAccountHandler(cfg, explorer, log),
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// setupMiddleware configures middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS())
}

// setupRoutes configures API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Health{Status: "ok"})
	})

	eth := r.engine.Group("/eth")
	{
		eth.GET("/balance", r.accountHandler.GetBalance)
		eth.GET("/transactions", r.accountHandler.GetTransactions)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Routes lists the registered routes as "METHOD path"
func (r *Router) Routes() []string {
	var out []string
	for _, ri := range r.engine.Routes() {
		out = append(out, ri.Method+" "+ri.Path)
	}
	return out
}
