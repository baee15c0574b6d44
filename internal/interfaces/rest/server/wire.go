package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-proxy/internal/api"
	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/config"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
	"github.com/DanielPopoola/checkout-proxy/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/checkout-proxy/internal/observability"
)

// NewFromConfig wires the processor client, services and handlers described
// by cfg into a ready-to-serve handler.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (http.Handler, error) {
	spec, err := api.LoadSpec()
	if err != nil {
		return nil, err
	}

	client := paypal.NewClient(cfg.PayPal, metrics)

	var tokens application.TokenProvider = client
	if cfg.PayPal.TokenCache {
		tokens = paypal.NewCachingTokenProvider(client, cfg.PayPal.ClientID, cfg.PayPal.ClientSecret)
	}

	merchant, err := services.NewMerchantProfile(cfg.Merchant)
	if err != nil {
		return nil, fmt.Errorf("building merchant profile: %w", err)
	}

	createService := services.NewCreateOrderService(tokens, client, merchant, logger)
	captureService := services.NewCaptureOrderService(tokens, client, metrics, logger)
	queryService := services.NewQueryService(tokens, client, logger)

	h := handlers.NewHandlers(createService, captureService, queryService, logger)

	return NewHandler(Options{
		Handlers:       h,
		Spec:           spec,
		Metrics:        metrics,
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
		StaticDir:      cfg.Server.StaticDir,
	}), nil
}
