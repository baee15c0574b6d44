package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	t.Run("extracts id and status", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"5O190127TN364715T","status":"APPROVED","links":[]}`)

		order, err := domain.ParseOrder(raw)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderID("5O190127TN364715T"), order.ID)
		assert.Equal(t, domain.OrderStatusApproved, order.Status)
		assert.JSONEq(t, string(raw), string(order.Raw))
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		_, err := domain.ParseOrder(json.RawMessage(`not-json`))
		assert.Error(t, err)
	})

	t.Run("rejects body without status", func(t *testing.T) {
		_, err := domain.ParseOrder(json.RawMessage(`{"id":"ORDER-1"}`))
		assert.ErrorIs(t, err, domain.ErrMissingOrderStatus)
	})
}

func TestOrder_IsCapturable(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusCreated,
		domain.OrderStatusSaved,
		domain.OrderStatusVoided,
		domain.OrderStatusCompleted,
		domain.OrderStatusPayerActionRequired,
		"approved",
	}
	for _, status := range statuses {
		order := &domain.Order{Status: status}
		assert.False(t, order.IsCapturable(), status)
	}

	assert.True(t, (&domain.Order{Status: domain.OrderStatusApproved}).IsCapturable())
}

func TestNewOrderID(t *testing.T) {
	id, err := domain.NewOrderID("  ORDER-1 ")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderID("ORDER-1"), id)

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := domain.NewOrderID(raw)
		assert.ErrorIs(t, err, domain.ErrMissingOrderID)
	}
}

func TestNewCaptureRequest_KeyIsStablePerOrder(t *testing.T) {
	first := domain.NewCaptureRequest("ORDER-1")
	second := domain.NewCaptureRequest("ORDER-1")
	other := domain.NewCaptureRequest("ORDER-2")

	assert.Equal(t, first.IdempotencyKey, second.IdempotencyKey)
	assert.NotEqual(t, first.IdempotencyKey, other.IdempotencyKey)
	assert.Len(t, first.IdempotencyKey, 36)
}

func TestNewMoney(t *testing.T) {
	t.Run("formats two fraction digits", func(t *testing.T) {
		money, err := domain.NewMoney("64", "usd")
		require.NoError(t, err)
		assert.Equal(t, "64.00", money.FormattedValue())
		assert.Equal(t, "USD", money.Currency)
	})

	t.Run("rejects non positive amounts", func(t *testing.T) {
		for _, value := range []string{"0", "-1.00", "abc", ""} {
			_, err := domain.NewMoney(value, "USD")
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, value)
		}
	})

	t.Run("rejects bad currency", func(t *testing.T) {
		_, err := domain.NewMoney("10.00", "US")
		assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
	})
}

func TestCaptureState_CanTransitionTo(t *testing.T) {
	valid := [][2]domain.CaptureState{
		{domain.CaptureStateUnvalidated, domain.CaptureStateChecked},
		{domain.CaptureStateChecked, domain.CaptureStateRejected},
		{domain.CaptureStateChecked, domain.CaptureStateCapturing},
		{domain.CaptureStateCapturing, domain.CaptureStateCaptured},
		{domain.CaptureStateCapturing, domain.CaptureStateFailed},
	}
	for _, tr := range valid {
		assert.NoError(t, tr[0].CanTransitionTo(tr[1]), "%s -> %s", tr[0], tr[1])
	}

	invalid := [][2]domain.CaptureState{
		{domain.CaptureStateUnvalidated, domain.CaptureStateCapturing},
		{domain.CaptureStateChecked, domain.CaptureStateCaptured},
		{domain.CaptureStateRejected, domain.CaptureStateCapturing},
		{domain.CaptureStateCaptured, domain.CaptureStateCapturing},
		{domain.CaptureStateFailed, domain.CaptureStateCapturing},
	}
	for _, tr := range invalid {
		assert.ErrorIs(t, tr[0].CanTransitionTo(tr[1]), domain.ErrInvalidTransition)
	}

	assert.True(t, domain.CaptureStateRejected.IsTerminal())
	assert.True(t, domain.CaptureStateCaptured.IsTerminal())
	assert.True(t, domain.CaptureStateFailed.IsTerminal())
	assert.False(t, domain.CaptureStateCapturing.IsTerminal())
}

func TestAccessToken_Valid(t *testing.T) {
	now := time.Now()

	var missing *domain.AccessToken
	assert.False(t, missing.Valid(now, 0))
	assert.False(t, (&domain.AccessToken{Value: "tok"}).Valid(now, 0))
	assert.True(t, (&domain.AccessToken{Value: "tok", ExpiresAt: now.Add(time.Hour)}).Valid(now, time.Minute))
	assert.False(t, (&domain.AccessToken{Value: "tok", ExpiresAt: now.Add(30 * time.Second)}).Valid(now, time.Minute))
	assert.Equal(t, "[REDACTED]", (&domain.AccessToken{Value: "secret"}).String())
}
