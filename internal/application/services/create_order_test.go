package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/DanielPopoola/checkout-proxy/internal/application"
	"github.com/DanielPopoola/checkout-proxy/internal/application/mocks"
	"github.com/DanielPopoola/checkout-proxy/internal/application/services"
	"github.com/DanielPopoola/checkout-proxy/internal/config"
	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
)

func defaultMerchant(t *testing.T) services.MerchantProfile {
	t.Helper()
	merchant, err := services.NewMerchantProfile(config.MerchantConfig{
		Currency:   "USD",
		Amount:     "64",
		ReturnURL:  "http://localhost:3000/#return",
		CancelURL:  "http://localhost:3000/#cancel",
		PayerEmail: "buyer@example.com",
		ReturnFlow: paypal.ReturnFlowAuto,
	})
	require.NoError(t, err)
	return merchant
}

func TestNewMerchantProfile(t *testing.T) {
	t.Run("formats amount with two decimals", func(t *testing.T) {
		merchant := defaultMerchant(t)
		assert.Equal(t, "64.00", merchant.Amount.FormattedValue())
		assert.Equal(t, "USD", merchant.Amount.Currency)
	})

	t.Run("rejects a non-numeric amount", func(t *testing.T) {
		_, err := services.NewMerchantProfile(config.MerchantConfig{Currency: "USD", Amount: "sixty"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("defaults return flow", func(t *testing.T) {
		merchant, err := services.NewMerchantProfile(config.MerchantConfig{Currency: "EUR", Amount: "10.5"})
		require.NoError(t, err)
		assert.Equal(t, paypal.ReturnFlowAuto, merchant.ReturnFlow)
	})
}

func TestCreateOrderService_DesktopPayload(t *testing.T) {
	tokens := mocks.NewMockTokenProvider(t)
	gateway := mocks.NewMockOrderGateway(t)
	service := services.NewCreateOrderService(tokens, gateway, defaultMerchant(t), discardLogger())

	created := orderBody("5O190127TN364715T", domain.OrderStatusPayerActionRequired)

	var sent paypal.CreateOrderRequest
	tokens.EXPECT().GetAccessToken(mock.Anything).Return(validToken(), nil).Once()
	gateway.EXPECT().
		CreateOrder(mock.Anything, testToken, mock.Anything).
		Run(func(_ context.Context, _ string, req paypal.CreateOrderRequest) {
			sent = req
		}).
		Return(&paypal.Response{StatusCode: http.StatusOK, Body: created}, nil).
		Once()

	result, err := service.CreateOrder(context.Background(), services.CreateOrderCommand{UserAgent: desktopUA})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, string(created), string(result.Body))

	assert.Equal(t, paypal.IntentCapture, sent.Intent)
	require.Len(t, sent.PurchaseUnits, 1)
	assert.Equal(t, "USD", sent.PurchaseUnits[0].Amount.CurrencyCode)
	assert.Equal(t, "64.00", sent.PurchaseUnits[0].Amount.Value)

	experience := sent.PaymentSource.PayPal.ExperienceContext
	assert.Equal(t, paypal.UserActionPayNow, experience.UserAction)
	assert.Equal(t, "http://localhost:3000/#return", experience.ReturnURL)
	assert.Equal(t, "http://localhost:3000/#cancel", experience.CancelURL)
	assert.Nil(t, experience.AppSwitchContext)
	assert.Equal(t, "buyer@example.com", sent.PaymentSource.PayPal.EmailAddress)
}

func TestCreateOrderService_MobilePayloadCarriesAppSwitch(t *testing.T) {
	tokens := mocks.NewMockTokenProvider(t)
	gateway := mocks.NewMockOrderGateway(t)
	service := services.NewCreateOrderService(tokens, gateway, defaultMerchant(t), discardLogger())

	var sent paypal.CreateOrderRequest
	tokens.EXPECT().GetAccessToken(mock.Anything).Return(validToken(), nil).Once()
	gateway.EXPECT().
		CreateOrder(mock.Anything, testToken, mock.Anything).
		Run(func(_ context.Context, _ string, req paypal.CreateOrderRequest) {
			sent = req
		}).
		Return(&paypal.Response{StatusCode: http.StatusOK, Body: orderBody("ORDER-M", domain.OrderStatusPayerActionRequired)}, nil).
		Once()

	_, err := service.CreateOrder(context.Background(), services.CreateOrderCommand{UserAgent: mobileUA})
	require.NoError(t, err)

	appSwitch := sent.PaymentSource.PayPal.ExperienceContext.AppSwitchContext
	require.NotNil(t, appSwitch)
	assert.Equal(t, paypal.ReturnFlowAuto, appSwitch.MobileWeb.ReturnFlow)
	assert.Equal(t, mobileUA, appSwitch.MobileWeb.BuyerUserAgent)

	encoded, err := json.Marshal(sent)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"app_switch_context":{"mobile_web":{"return_flow":"AUTO"`)
}

func TestCreateOrderService_TokenFailure(t *testing.T) {
	tokens := mocks.NewMockTokenProvider(t)
	gateway := mocks.NewMockOrderGateway(t)
	service := services.NewCreateOrderService(tokens, gateway, defaultMerchant(t), discardLogger())

	tokens.EXPECT().GetAccessToken(mock.Anything).Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	result, err := service.CreateOrder(context.Background(), services.CreateOrderCommand{UserAgent: desktopUA})

	require.Error(t, err)
	assert.Nil(t, result)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.KindAuth, svcErr.Kind)
	assert.Equal(t, http.StatusBadGateway, svcErr.HTTPStatus)
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderService_UpstreamRejection(t *testing.T) {
	tokens := &invalidatingTokens{MockTokenProvider: mocks.NewMockTokenProvider(t)}
	gateway := mocks.NewMockOrderGateway(t)
	service := services.NewCreateOrderService(tokens, gateway, defaultMerchant(t), discardLogger())

	body := `{"name":"INVALID_REQUEST","message":"Request is not well-formed"}`
	tokens.EXPECT().GetAccessToken(mock.Anything).Return(validToken(), nil).Once()
	gateway.EXPECT().
		CreateOrder(mock.Anything, testToken, mock.Anything).
		Return(nil, &paypal.APIError{
			Operation:  paypal.OperationCreate,
			StatusCode: http.StatusBadRequest,
			Body:       json.RawMessage(body),
		}).
		Once()

	_, err := service.CreateOrder(context.Background(), services.CreateOrderCommand{})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.KindUpstream, svcErr.Kind)
	assert.Equal(t, application.MsgCreateFailed, svcErr.Message)
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus)
	assert.JSONEq(t, body, string(svcErr.Details))
	assert.Zero(t, tokens.invalidated)
}
