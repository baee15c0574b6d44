package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/config"
	"github.com/DanielPopoola/checkout-proxy/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/DanielPopoola/checkout-proxy/internal/infrastructure/paypal"

const (
	OperationToken   = "get_access_token"
	OperationCreate  = "create_order"
	OperationGet     = "get_order"
	OperationCapture = "capture_order"
)

// Recorder receives one observation per processor call.
type Recorder interface {
	ObserveUpstream(operation, outcome string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveUpstream(string, string, time.Duration) {}

type HTTPClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	metrics      Recorder
	tracer       trace.Tracer
}

func NewClient(cfg config.PayPalConfig, metrics Recorder) *HTTPClient {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &HTTPClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

// GetAccessToken exchanges the client credentials for a bearer token. Every call
// is one round trip; caching is left to CachingTokenProvider.
func (c *HTTPClient) GetAccessToken(ctx context.Context) (*domain.AccessToken, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	resp, err := c.send(ctx, OperationToken, request{
		method:      http.MethodPost,
		path:        "/v1/oauth2/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		basicAuth:   true,
	})
	if err != nil {
		return nil, err
	}

	var token tokenResponse
	if err := json.Unmarshal(resp.Body, &token); err != nil {
		return nil, fmt.Errorf("%w: decoding token: %v", ErrMalformedResponse, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response has no access_token", ErrMalformedResponse)
	}

	accessToken := &domain.AccessToken{Value: token.AccessToken}
	if token.ExpiresIn > 0 {
		accessToken.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	return accessToken, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, accessToken string, req CreateOrderRequest) (*Response, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	return c.send(ctx, OperationCreate, request{
		method:      http.MethodPost,
		path:        "/v2/checkout/orders",
		body:        bytes.NewReader(jsonData),
		contentType: "application/json",
		bearer:      accessToken,
	})
}

func (c *HTTPClient) GetOrder(ctx context.Context, accessToken string, orderID domain.OrderID) (*Response, error) {
	return c.send(ctx, OperationGet, request{
		method: http.MethodGet,
		path:   "/v2/checkout/orders/" + url.PathEscape(orderID.String()),
		bearer: accessToken,
	})
}

// CaptureOrder sends the capture with PayPal-Request-Id set to the request's
// idempotency key; the processor replays the first result for a repeated key.
// A 2xx reply is returned even when its body is not JSON, since the buyer may
// already have been charged.
func (c *HTTPClient) CaptureOrder(ctx context.Context, accessToken string, req domain.CaptureRequest) (*Response, error) {
	return c.send(ctx, OperationCapture, request{
		method:         http.MethodPost,
		path:           "/v2/checkout/orders/" + url.PathEscape(req.OrderID.String()) + "/capture",
		contentType:    "application/json",
		bearer:         accessToken,
		idempotencyKey: req.IdempotencyKey,
		opaqueSuccess:  true,
	})
}

type request struct {
	method         string
	path           string
	body           io.Reader
	contentType    string
	bearer         string
	basicAuth      bool
	idempotencyKey string
	// opaqueSuccess skips the JSON check on 2xx bodies.
	opaqueSuccess bool
}

func (c *HTTPClient) send(ctx context.Context, operation string, r request) (resp *Response, err error) {
	ctx, span := c.tracer.Start(ctx, "paypal."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("paypal.operation", operation),
			attribute.String("http.request.method", r.method),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		c.metrics.ObserveUpstream(operation, outcome, time.Since(start))
		span.End()
	}()

	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		httpReq.Header.Set("Content-Type", r.contentType)
	}
	if r.basicAuth {
		httpReq.SetBasicAuth(c.clientID, c.clientSecret)
	}
	if r.bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.bearer)
	}
	if r.idempotencyKey != "" {
		httpReq.Header.Set(requestIDHeader, r.idempotencyKey)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer httpResp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", httpResp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseLength))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, newAPIError(operation, httpResp.StatusCode, body)
	}

	if !r.opaqueSuccess && !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned non-JSON body", ErrMalformedResponse, operation)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       json.RawMessage(body),
	}, nil
}
