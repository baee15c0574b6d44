package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
)

type CaptureOrderService struct {
	tokens   application.TokenProvider
	gateway  application.OrderGateway
	outcomes application.OutcomeRecorder
	logger   *slog.Logger
}

func NewCaptureOrderService(
	tokens application.TokenProvider,
	gateway application.OrderGateway,
	outcomes application.OutcomeRecorder,
	logger *slog.Logger,
) *CaptureOrderService {
	return &CaptureOrderService{
		tokens:   tokens,
		gateway:  gateway,
		outcomes: outcomes,
		logger:   logger,
	}
}

// captureSequence carries one request through the capture states.
type captureSequence struct {
	state   domain.CaptureState
	orderID domain.OrderID
	logger  *slog.Logger
}

func (c *captureSequence) moveTo(target domain.CaptureState) error {
	if err := c.state.CanTransitionTo(target); err != nil {
		return err
	}
	c.logger.Debug("capture state changed", "from", c.state, "to", target)
	c.state = target
	return nil
}

// Capture validates the order id, confirms the buyer approved the order and
// only then forwards the capture. Each step runs strictly after the previous
// one; any failure ends the sequence.
func (s *CaptureOrderService) Capture(ctx context.Context, cmd CaptureOrderCommand) (*OrderResult, error) {
	cmd.OrderID = trimCommandID(cmd.OrderID)

	orderID, err := parseOrderID(cmd, cmd.OrderID)
	if err != nil {
		s.logger.WarnContext(ctx, "capture rejected: invalid input", "event", "capture_order", "error", err)
		return nil, application.NewValidationError(err)
	}

	seq := &captureSequence{
		state:   domain.CaptureStateUnvalidated,
		orderID: orderID,
		logger:  s.logger.With("event", "capture_order", "order_id", orderID),
	}

	token, err := acquireToken(ctx, s.tokens, seq.logger, "capture_order")
	if err != nil {
		return nil, err
	}

	order, err := s.fetchOrder(ctx, seq, token)
	if err != nil {
		return nil, err
	}

	if err := seq.moveTo(domain.CaptureStateChecked); err != nil {
		return nil, application.NewInternalError(err)
	}
	seq.logger = seq.logger.With("observed_status", order.Status)

	if !order.IsCapturable() {
		if err := seq.moveTo(domain.CaptureStateRejected); err != nil {
			return nil, application.NewInternalError(err)
		}
		s.recordOutcome(seq.state)
		seq.logger.InfoContext(ctx, "capture rejected: order not approved")
		return nil, application.NewPreconditionError(order)
	}

	if err := seq.moveTo(domain.CaptureStateCapturing); err != nil {
		return nil, application.NewInternalError(err)
	}

	captureReq := domain.NewCaptureRequest(orderID)

	resp, err := s.gateway.CaptureOrder(ctx, token, captureReq)
	if err != nil {
		invalidateOnUnauthorized(s.tokens, err)
		_ = seq.moveTo(domain.CaptureStateFailed)
		s.recordOutcome(seq.state)

		svcErr := application.NewCaptureError(err)
		seq.logger.ErrorContext(ctx, "capture failed",
			"status", svcErr.HTTPStatus,
			"category", application.CategorizeError(err),
			"error", err,
		)
		return nil, svcErr
	}

	_ = seq.moveTo(domain.CaptureStateCaptured)
	s.recordOutcome(seq.state)

	captured, err := domain.ParseOrder(resp.Body)
	if err != nil {
		seq.logger.WarnContext(ctx, "order captured, unreadable body", "status", resp.StatusCode, "error", err)
	} else {
		seq.logger.InfoContext(ctx, "order captured", "status", resp.StatusCode, "capture_status", captured.Status)
	}

	return &OrderResult{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}

// fetchOrder reads the current order. Failing to read the status is reported
// separately from reading a status that does not allow capture.
func (s *CaptureOrderService) fetchOrder(ctx context.Context, seq *captureSequence, token string) (*domain.Order, error) {
	resp, err := s.gateway.GetOrder(ctx, token, seq.orderID)
	if err != nil {
		invalidateOnUnauthorized(s.tokens, err)
		svcErr := application.NewStatusUnavailableError(err)
		seq.logger.ErrorContext(ctx, "order status fetch failed",
			"status", svcErr.HTTPStatus,
			"retryable", application.IsRetryable(err),
			"error", err,
		)
		return nil, svcErr
	}

	order, err := domain.ParseOrder(resp.Body)
	if err != nil {
		err = fmt.Errorf("%w: %v", paypal.ErrMalformedResponse, err)
		seq.logger.ErrorContext(ctx, "order status unreadable", "error", err)
		return nil, application.NewStatusUnavailableError(err)
	}

	return order, nil
}

func (s *CaptureOrderService) recordOutcome(state domain.CaptureState) {
	if s.outcomes != nil {
		s.outcomes.ObserveCaptureOutcome(string(state))
	}
}
