package router

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fintrack/internal/config"
	"github.com/polkiloo/fintrack/internal/server/http/handlers"
	"github.com/polkiloo/fintrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LedgerFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.Default())

	authHandler := handlers.NewAuthHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/health", healthHandler.Check)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("/expenses", transactionHandler.List)
	protected.POST("/expenses", transactionHandler.Create)
	protected.DELETE("/expenses/:id", transactionHandler.Delete)
	protected.GET("/summary", transactionHandler.Summary)

	if cfg.StaticDir != "" {
		engine.NoRoute(staticFallback(cfg.StaticDir))
	}

	return engine
}

// staticFallback serves built front-end assets for non-API GET requests,
// falling back to index.html so client-side routing keeps working.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Status(http.StatusNotFound)
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
