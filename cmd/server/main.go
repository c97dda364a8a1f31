package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benvon/smart-calendar/internal/config"
	"github.com/benvon/smart-calendar/internal/handlers"
	"github.com/benvon/smart-calendar/internal/holidays"
	"github.com/benvon/smart-calendar/internal/logger"
	"github.com/benvon/smart-calendar/internal/middleware"
	"github.com/benvon/smart-calendar/internal/redisclient"
	"github.com/benvon/smart-calendar/internal/session"
	"github.com/benvon/smart-calendar/internal/telemetry"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag
	zapLogger, err := logger.New(cfg.LogDevelopment, debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync(zapLogger) }()

	zapLogger.Info("starting_server",
		zap.String("version", version),
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("holiday_country", cfg.HolidayCountry),
		zap.String("timezone", cfg.Timezone.String()),
		zap.Duration("filter_debounce", cfg.FilterDebounce),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	var tracerProvider *sdktrace.TracerProvider
	if cfg.OTELEnabled {
		tracerProvider, err = telemetry.InitTracer(context.Background(), telemetry.Config{
			Endpoint: cfg.OTELEndpoint,
			Version:  version,
			Insecure: true,
		})
		if err != nil {
			zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		} else {
			zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := telemetry.Shutdown(ctx, tracerProvider); err != nil {
					zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
				}
			}()
		}
	}

	// Redis is optional: without it the holiday cache and rate limit
	// counters stay in process memory.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redisclient.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			zapLogger.Fatal("failed_to_connect_to_redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				zapLogger.Warn("failed_to_close_redis_connection", zap.Error(err))
			}
		}()
		zapLogger.Info("connected_to_redis")
	}

	provider := holidays.NewProvider(holidays.Options{
		BaseURL:  cfg.HolidayAPIURL,
		Country:  cfg.HolidayCountry,
		CacheTTL: cfg.HolidayCacheTTL,
		Timeout:  cfg.HolidayTimeout,
		Redis:    redisClient,
	}, zapLogger)

	sess := session.New(time.Now().In(cfg.Timezone), provider,
		session.WithDebounce(cfg.FilterDebounce),
		session.WithHolidayTimeout(cfg.HolidayTimeout),
		session.WithLogger(zapLogger.Named("session")),
	)
	defer sess.Close()

	go func() {
		// Failures are logged by the session; the calendar works without holidays.
		_ = sess.LoadHolidays(context.Background())
	}()

	calendarHandler := handlers.NewCalendarHandler(sess, provider, cfg.Timezone, zapLogger)
	checks := map[string]handlers.Check{
		"holiday_api": func(ctx context.Context) error {
			_, err := provider.PublicHolidays(ctx, time.Now().In(cfg.Timezone).Year())
			return err
		},
	}
	if redisClient != nil {
		checks["redis"] = redisclient.Check(redisClient)
	}
	healthChecker := handlers.NewHealthChecker(checks, zapLogger)

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit, redisClient, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}

	srv := &http.Server{
		Addr: ":" + cfg.ServerPort,
		Handler: newRouter(routerDeps{
			calendar:    calendarHandler,
			health:      healthChecker,
			rateLimit:   rateLimitMW,
			logger:      zapLogger,
			frontendURL: cfg.FrontendURL,
			enableHSTS:  cfg.EnableHSTS,
			timeout:     cfg.RequestTimeout,
			tracing:     tracerProvider != nil,
		}),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server_forced_to_shutdown", zap.Error(err))
	}
	calendarHandler.Wait()

	zapLogger.Info("server_exited")
}
