package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
	"github.com/go-playground/validator"
)

var validate = validator.New()

// parseOrderID trims the raw id and rejects blanks. A failure here means no
// outbound call may be made.
func parseOrderID(cmd interface{}, raw string) (domain.OrderID, error) {
	if err := validate.Struct(cmd); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return "", domain.ErrMissingOrderID
		}
		return "", err
	}
	return domain.NewOrderID(raw)
}

// acquireToken runs the credential exchange for one request.
func acquireToken(ctx context.Context, tokens application.TokenProvider, logger *slog.Logger, event string) (string, error) {
	token, err := tokens.GetAccessToken(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "access token exchange failed",
			"event", event,
			"category", application.CategorizeError(err),
			"error", err,
		)
		return "", application.NewAuthError(err)
	}
	return token.Value, nil
}

// invalidateOnUnauthorized drops a cached token the processor no longer accepts.
func invalidateOnUnauthorized(tokens application.TokenProvider, err error) {
	apiErr, ok := paypal.IsAPIError(err)
	if !ok || !apiErr.IsUnauthorized() {
		return
	}
	if inv, ok := tokens.(application.TokenInvalidator); ok {
		inv.Invalidate()
	}
}

func trimCommandID(id string) string {
	return strings.TrimSpace(id)
}
