package main

import (
	"context"
	"log"
	"net/http"

	"payment-gateway/internal/config"
	"payment-gateway/internal/logger"
	"payment-gateway/internal/metrics"
	"payment-gateway/internal/middleware"
	"payment-gateway/internal/payment"
	"payment-gateway/internal/payment/handler"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var startServerFunc = func(addr string, h http.Handler) error {
	return http.ListenAndServe(addr, h)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newServer(ctx, cfg)

	logger.L().Info("payment gateway running",
		zap.String("port", cfg.AppPort),
		zap.String("bank_url", cfg.BankSimulatorURL),
	)
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires the payment stack. Background routines stop when ctx is done.
func newServer(ctx context.Context, cfg *config.Config) http.Handler {
	m := metrics.NewPaymentMetrics()

	store := payment.NewMemoryStore()
	gateway := payment.NewBankGateway(cfg.BankSimulatorURL)
	paymentSvc := payment.NewService(store, gateway, payment.NewRequestValidator(), m)

	return setupRouter(
		handler.NewPaymentHandler(paymentSvc),
		m,
		middleware.NewRateLimiter(ctx, cfg.InternalSecretKey),
	)
}

func setupRouter(paymentHandler *handler.Handler, m *metrics.PaymentMetrics, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Recover)
	r.Use(limiter.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/metrics", m.Handler())

	r.Route("/api/v1", paymentHandler.Routes)

	return r
}
