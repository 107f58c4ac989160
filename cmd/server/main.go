package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payvessel-bridge/internal/config"
	"payvessel-bridge/internal/handler"
	"payvessel-bridge/internal/logger"
	"payvessel-bridge/internal/middleware"
	"payvessel-bridge/internal/payment"
	"payvessel-bridge/internal/verify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	if cfg.BridgeSecret == "" {
		log.Warn("BRIDGE_SECRET is empty, signatures will only cover reference and amount")
	}

	gateway := payment.NewPayvesselGateway(cfg.Payvessel)
	svc := verify.NewService(gateway, verify.Secrets{
		GatewayAPIKey:    cfg.Payvessel.APIKey,
		GatewaySecretKey: cfg.Payvessel.SecretKey,
		BridgeSecret:     cfg.BridgeSecret,
	})
	verifyHandler := handler.NewVerifyHandler(svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      setupRouter(verifyHandler, limiter, cfg.TrustProxy),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Payvessel.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.AppPort),
			zap.String("environment", cfg.AppEnv),
			zap.String("gateway", cfg.Payvessel.BaseURL),
			zap.Bool("trust_proxy", cfg.TrustProxy),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// setupRouter mounts the verify endpoint behind CORS, request ids, access
// logging, panic recovery and the rate limiter. Forwarded-for headers are
// honoured only with trustProxy, since the limiter keys on RemoteAddr.
func setupRouter(verifyHandler http.Handler, limiter *middleware.RateLimiter, trustProxy bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(logger.RequestIDMiddleware)
	if trustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Method(http.MethodGet, "/api/verify", verifyHandler)
		r.Method(http.MethodPost, "/api/verify", verifyHandler)
	})

	return r
}
