package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/edublog/blog-system/docs"
	"github.com/edublog/blog-system/internal/api/handler"
	"github.com/edublog/blog-system/internal/api/middleware"
	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
)

const rateLimitExpiry = 3 * time.Minute

// Deps groups everything the router needs. Services and the token verifier
// are required; the rest fall back to defaults.
type Deps struct {
	AuthService ports.AuthService
	PostService ports.PostService
	Tokens      ports.TokenVerifier
	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger

	SessionSecret string
	// RateLimitRPS <= 0 disables the per-IP limiter.
	RateLimitRPS   float64
	RateLimitBurst int

	Logger zerolog.Logger
	// Registerer and Gatherer back the HTTP metrics; nil means the default
	// Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "blog",
		Subsystem:  "http",
		Registerer: registerer,
	}))
	if deps.RateLimitRPS > 0 {
		e.Use(rateLimiter(deps.RateLimitRPS, deps.RateLimitBurst))
	}
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(deps.SessionSecret))))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	postHandler := handler.NewPostHandler(deps.PostService)
	healthHandler := handler.NewHealthHandler(deps.Health)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Posts (bearer token required) ---
	// Static segments are registered ahead of /:id; echo prefers them anyway.
	posts := e.Group("/posts", middleware.Authenticate(deps.Tokens))
	posts.GET("", postHandler.List)
	posts.GET("/admin", postHandler.AdminList, middleware.Authorize(domain.RoleTeacher))
	posts.GET("/search", postHandler.Search)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request once the error handler
// has set the final status.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// rateLimiter bounds requests per client IP with an in-memory token bucket.
func rateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: rateLimitExpiry,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})
}
