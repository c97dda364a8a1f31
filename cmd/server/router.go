package main

import (
	"net/http"
	"time"

	"github.com/benvon/smart-calendar/internal/handlers"
	"github.com/benvon/smart-calendar/internal/middleware"
	"github.com/benvon/smart-calendar/internal/telemetry"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type routerDeps struct {
	calendar    *handlers.CalendarHandler
	health      *handlers.HealthChecker
	rateLimit   func(http.Handler) http.Handler
	logger      *zap.Logger
	frontendURL string
	enableHSTS  bool
	timeout     time.Duration
	tracing     bool
}

// newRouter wires routes and the middleware chain. CORS wraps the router so
// preflights are answered before route matching.
func newRouter(d routerDeps) http.Handler {
	r := mux.NewRouter()

	// gorilla/mux runs middleware in registration order, first registered outermost.
	if d.tracing {
		r.Use(telemetry.Middleware(telemetry.ServiceName))
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(d.logger))
	r.Use(middleware.ErrorHandler(d.logger))
	r.Use(middleware.SecurityHeaders(d.enableHSTS))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize, d.logger))
	r.Use(middleware.ContentType(d.logger))
	r.Use(middleware.Timeout(d.timeout))

	r.HandleFunc("/healthz", d.health.HealthCheck).Methods("GET")
	r.HandleFunc("/version", handlers.Version(version)).Methods("GET")

	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	calendarRouter := apiRouter.PathPrefix("/calendar").Subrouter()
	if d.rateLimit != nil {
		calendarRouter.Use(d.rateLimit)
	}
	d.calendar.RegisterRoutes(calendarRouter)

	return middleware.CORSFromEnv(d.frontendURL, d.logger)(r)
}
