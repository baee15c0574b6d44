package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/config"
	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
)

// MerchantProfile is the fixed checkout configuration every order is built from.
type MerchantProfile struct {
	Amount     domain.Money
	ReturnURL  string
	CancelURL  string
	PayerEmail string
	ReturnFlow string
}

func NewMerchantProfile(cfg config.MerchantConfig) (MerchantProfile, error) {
	amount, err := domain.NewMoney(cfg.Amount, cfg.Currency)
	if err != nil {
		return MerchantProfile{}, fmt.Errorf("merchant amount: %w", err)
	}

	returnFlow := cfg.ReturnFlow
	if returnFlow == "" {
		returnFlow = paypal.ReturnFlowAuto
	}

	return MerchantProfile{
		Amount:     amount,
		ReturnURL:  cfg.ReturnURL,
		CancelURL:  cfg.CancelURL,
		PayerEmail: cfg.PayerEmail,
		ReturnFlow: returnFlow,
	}, nil
}

type CreateOrderService struct {
	tokens   application.TokenProvider
	gateway  application.OrderGateway
	merchant MerchantProfile
	logger   *slog.Logger
}

func NewCreateOrderService(
	tokens application.TokenProvider,
	gateway application.OrderGateway,
	merchant MerchantProfile,
	logger *slog.Logger,
) *CreateOrderService {
	return &CreateOrderService{
		tokens:   tokens,
		gateway:  gateway,
		merchant: merchant,
		logger:   logger,
	}
}

func (s *CreateOrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderResult, error) {
	token, err := acquireToken(ctx, s.tokens, s.logger, "create_order")
	if err != nil {
		return nil, err
	}

	req := s.buildRequest(cmd.UserAgent)

	resp, err := s.gateway.CreateOrder(ctx, token, req)
	if err != nil {
		invalidateOnUnauthorized(s.tokens, err)
		svcErr := application.NewUpstreamError(application.MsgCreateFailed, err)
		s.logger.ErrorContext(ctx, "order creation failed",
			"event", "create_order",
			"status", svcErr.HTTPStatus,
			"category", application.CategorizeError(err),
			"error", err,
		)
		return nil, svcErr
	}

	logAttrs := []any{"event", "create_order", "status", resp.StatusCode}
	if order, err := domain.ParseOrder(resp.Body); err == nil {
		logAttrs = append(logAttrs, "order_id", order.ID, "observed_status", order.Status)
	}
	s.logger.InfoContext(ctx, "order created", logAttrs...)

	return &OrderResult{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

func (s *CreateOrderService) buildRequest(userAgent string) paypal.CreateOrderRequest {
	experience := paypal.ExperienceContext{
		UserAction: paypal.UserActionPayNow,
		ReturnURL:  s.merchant.ReturnURL,
		CancelURL:  s.merchant.CancelURL,
	}
	if isMobileUserAgent(userAgent) {
		experience.AppSwitchContext = &paypal.AppSwitchContext{
			MobileWeb: paypal.MobileWebContext{
				ReturnFlow:     s.merchant.ReturnFlow,
				BuyerUserAgent: userAgent,
			},
		}
	}

	return paypal.CreateOrderRequest{
		Intent: paypal.IntentCapture,
		PaymentSource: paypal.PaymentSource{
			PayPal: paypal.PayPalSource{
				EmailAddress:      s.merchant.PayerEmail,
				ExperienceContext: experience,
			},
		},
		PurchaseUnits: []paypal.PurchaseUnit{
			{
				Amount: paypal.Amount{
					CurrencyCode: s.merchant.Amount.Currency,
					Value:        s.merchant.Amount.FormattedValue(),
				},
			},
		},
	}
}
