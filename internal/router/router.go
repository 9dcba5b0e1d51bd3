// Package router sets up the HTTP routes of the backend.
package router

import (
	"net/http"
	"os"

	"github.com/chitieu/backend/internal/config"
	"github.com/chitieu/backend/internal/controllers"
	"github.com/chitieu/backend/internal/httperrors"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and middlewares. The returned function
// cleans up global state and must be called when the router is no
// longer used.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	r := gin.New()

	// Client IPs are never used, so the X-Forwarded-For header is not
	// processed
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "Phương thức HTTP này không được hỗ trợ cho đường dẫn bạn gọi")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORS.AllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORS.AllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc: func(origin string) bool {
				for _, allowed := range cfg.CORS.AllowOrigins {
					if glob.Glob(allowed, origin) {
						return true
					}
				}
				return false
			},
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy since client IPs are not processed
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in. Separating this from Config allows tests to mount the
// API wherever they need it.
func AttachRoutes(group *gin.RouterGroup, cfg *config.Config) {
	group.GET("", GetRoot)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	v1 := group.Group("/v1")
	{
		v1.GET("", GetV1)
	}

	public := v1.Group("/auth")
	authed := v1.Group("/auth")
	authed.Use(AuthMiddleware(cfg))

	controllers.RegisterAuthRoutes(public, authed, cfg)
	controllers.RegisterOAuthRoutes(public, cfg)

	protected := v1.Group("")
	protected.Use(AuthMiddleware(cfg))

	controllers.RegisterCategoryRoutes(protected.Group("/categories"))
	controllers.RegisterExpenseRoutes(protected.Group("/expenses"))
	controllers.RegisterBudgetRoutes(protected.Group("/budgets"))
	controllers.RegisterStatsRoutes(protected.Group("/stats"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	V1 string `json:"v1"` // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root.
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			V1: "/api/v1",
		},
	})
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Auth       string `json:"auth"`       // URL of the auth endpoints
	Categories string `json:"categories"` // URL of the category list endpoint
	Expenses   string `json:"expenses"`   // URL of the expense list endpoint
	Budgets    string `json:"budgets"`    // URL of the budget list endpoint
	Stats      string `json:"stats"`      // URL of the statistics endpoints
}

// GetV1 returns the link list for v1.
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:       "/api/v1/auth",
			Categories: "/api/v1/categories",
			Expenses:   "/api/v1/expenses",
			Budgets:    "/api/v1/budgets",
			Stats:      "/api/v1/stats",
		},
	})
}
