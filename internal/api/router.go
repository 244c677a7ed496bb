package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/salonelidia/salon-system/internal/api/handler"
	"github.com/salonelidia/salon-system/internal/api/middleware"
	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	Auth           ports.AuthService
	Salon          ports.SalonService
	HealthChecks   map[string]handler.HealthCheck
	AllowedOrigins []string
	Log            zerolog.Logger
	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	httpMetrics, err := echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}.ToMiddleware()
	if err != nil {
		return nil, err
	}

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(httpMetrics)

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Log)
	adminHandler := handler.NewAdminHandler(deps.Salon)
	clientHandler := handler.NewClientHandler(deps.Salon)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)
	authMiddleware := middleware.Auth(deps.Auth)

	// --- Public API ---
	e.GET("/api/ping", healthHandler.Ping)
	e.POST("/api/auth/login", authHandler.Login)

	// Auth is attached per route rather than per group so that unknown paths
	// under these prefixes still answer 404.
	adminOnly := []echo.MiddlewareFunc{authMiddleware, middleware.RequireRole(domain.RoleAdmin)}
	clientOnly := []echo.MiddlewareFunc{authMiddleware, middleware.RequireRole(domain.RoleClient)}

	// --- Admin routes ---
	e.GET("/api/admin/stats", adminHandler.Stats, adminOnly...)
	e.GET("/api/admin/clients", adminHandler.Clients, adminOnly...)

	// --- Client routes ---
	e.GET("/api/client/profile", clientHandler.Profile, clientOnly...)
	e.GET("/api/client/appointments", clientHandler.Appointments, clientOnly...)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
